package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/Skotchmaster/clothing_store/internal/cache"
	"github.com/Skotchmaster/clothing_store/internal/config"
	"github.com/Skotchmaster/clothing_store/internal/db"
	"github.com/Skotchmaster/clothing_store/internal/httpserver"
	"github.com/Skotchmaster/clothing_store/internal/logging"
	loggingmw "github.com/Skotchmaster/clothing_store/internal/middleware/logging"
	"github.com/Skotchmaster/clothing_store/internal/mykafka"
	"github.com/Skotchmaster/clothing_store/internal/repo"
	"github.com/Skotchmaster/clothing_store/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	gdb, err := db.Open(ctx, cfg.DBDriver, cfg.DatabaseURL)
	if err == nil {
		err = db.Migrate(ctx, gdb)
	}
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	var events service.Publisher = service.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := mykafka.NewProducer(cfg.KafkaBrokers)
		if err != nil {
			log.Fatalf("kafka producer: %v", err)
		}
		defer producer.Close()
		events = producer
	} else {
		logger.Info("kafka_disabled", "reason", "KAFKA_BROKERS is empty")
	}

	var categoryCache service.CategoryCache
	if cfg.RedisURL != "" {
		rctx, rcancel := context.WithTimeout(context.Background(), 5*time.Second)
		client, err := cache.Config{URL: cfg.RedisURL}.New(rctx)
		rcancel()
		if err != nil {
			logger.Warn("redis_unavailable", "error", err)
		} else {
			defer client.Close()
			categoryCache = cache.NewCategoryCache(client, cfg.CategoryCacheTTL)
		}
	}

	r := &repo.GormRepo{DB: gdb}

	e := echo.New()
	e.HideBanner = true
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{
		Goods:      &httpserver.GoodsHTTP{Svc: &service.CatalogService{Repo: r, Events: events, Cache: categoryCache}},
		Categories: &httpserver.CategoriesHTTP{Svc: &service.CategoryService{Repo: r, Cache: categoryCache}},
		Feedbacks:  &httpserver.FeedbacksHTTP{Svc: &service.FeedbackService{Repo: r, Events: events}},
		Cart:       &httpserver.CartHTTP{Svc: &service.CartService{Repo: r}},
		Orders:     &httpserver.OrdersHTTP{Svc: &service.OrderService{Repo: r, Events: events}},
		Auth:       &httpserver.AuthHTTP{Svc: &service.AuthService{Repo: r, JWTSecret: []byte(cfg.JWTSecret), TokenTTL: cfg.JWTTTL}},
		JWTSecret:  []byte(cfg.JWTSecret),
		Ready: func(c echo.Context) error {
			sqlDB, err := gdb.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(c.Request().Context())
		},
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		logger.Info("server_started", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)

	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("server_stopped")
}
