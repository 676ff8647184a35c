package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ServiceName string `envconfig:"SERVICE_NAME" default:"catalog"`
	ServerPort  int    `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	DBDriver    string `envconfig:"DB_DRIVER" default:"postgres"`
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	JWTSecret string        `envconfig:"JWT_SECRET" required:"true"`
	JWTTTL    time.Duration `envconfig:"JWT_TTL" default:"24h"`

	KafkaBrokers []string `envconfig:"KAFKA_BROKERS"`

	RedisURL         string        `envconfig:"REDIS_URL"`
	CategoryCacheTTL time.Duration `envconfig:"CATEGORY_CACHE_TTL" default:"60s"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := mustNonEmpty(cfg.DatabaseURL, "DATABASE_URL"); err != nil {
		return nil, err
	}
	if err := mustNonEmpty(cfg.JWTSecret, "JWT_SECRET"); err != nil {
		return nil, err
	}
	cfg.KafkaBrokers = compact(cfg.KafkaBrokers)
	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))
	return &cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.ServerPort)
}

func mustNonEmpty(value, envName string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("config: missing required env %s", envName)
	}
	return nil
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
