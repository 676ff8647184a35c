package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Skotchmaster/clothing_store/internal/config"
	"github.com/Skotchmaster/clothing_store/internal/db"
	"github.com/Skotchmaster/clothing_store/internal/hash"
	"github.com/Skotchmaster/clothing_store/internal/logging"
	"github.com/Skotchmaster/clothing_store/internal/models"
	"github.com/Skotchmaster/clothing_store/internal/repo"
)

type seedGood struct {
	Name        string
	Price       int64
	Sizes       models.SizeSet
	Gender      models.Gender
	Description string
}

var catalog = map[string][]seedGood{
	"T-Shirts": {
		{Name: "Basic Tee", Price: 499, Sizes: models.SizeSet{"S", "M", "L"}, Gender: models.GenderUnisex, Description: "A simple cotton t-shirt"},
		{Name: "Striped Tee", Price: 649, Sizes: models.SizeSet{"M", "L", "XL"}, Gender: models.GenderMale, Description: "Navy stripes on white"},
	},
	"Hoodies": {
		{Name: "Zip Hoodie", Price: 1299, Sizes: models.SizeSet{"S", "M"}, Gender: models.GenderFemale, Description: "Fleece hoodie with a full zip"},
	},
	"Jeans": {
		{Name: "Slim Jeans", Price: 1499, Sizes: models.SizeSet{"M", "L"}, Gender: models.GenderMale, Description: "Dark wash, slim fit"},
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := logging.New(cfg.LogLevel, "seed")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	gdb, err := db.Open(ctx, cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	if err := db.Migrate(ctx, gdb); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	r := &repo.GormRepo{DB: gdb}
	if err := seedCatalog(ctx, r, logger); err != nil {
		log.Fatalf("seed catalog: %v", err)
	}
	if err := seedUser(ctx, r, logger, "admin@example.com", envOr("SEED_ADMIN_PASSWORD", "admin12345"), models.RoleAdmin); err != nil {
		log.Fatalf("seed admin: %v", err)
	}
	if err := seedUser(ctx, r, logger, "demo@example.com", envOr("SEED_DEMO_PASSWORD", "demo12345"), models.RoleUser); err != nil {
		log.Fatalf("seed demo user: %v", err)
	}

	logger.Info("seed_done")
}

// seedCatalog creates missing categories and fills only the ones it created,
// so repeated runs do not duplicate goods.
func seedCatalog(ctx context.Context, r *repo.GormRepo, l *slog.Logger) error {
	for name, goods := range catalog {
		_, err := r.FindCategoryByName(ctx, name)
		if err == nil {
			l.Info("category_exists", "name", name)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		cat, err := r.CreateCategory(ctx, &models.Category{Name: name})
		if err != nil {
			return err
		}
		for _, g := range goods {
			_, err := r.CreateGood(ctx, &models.Good{
				Name:            g.Name,
				CategoryID:      &cat.ID,
				Image:           "/images/" + slug(g.Name) + ".jpg",
				Price:           models.Price{Value: decimal.NewFromInt(g.Price), Currency: models.DefaultCurrency},
				Size:            g.Sizes,
				Description:     g.Description,
				Gender:          g.Gender,
				Characteristics: []string{},
				Feedbacks:       []uuid.UUID{},
			})
			if err != nil {
				return err
			}
		}
		l.Info("category_seeded", "name", name, "goods", len(goods))
	}
	return nil
}

func seedUser(ctx context.Context, r *repo.GormRepo, l *slog.Logger, email, password string, role models.Role) error {
	_, err := r.GetUserByEmail(ctx, email)
	if err == nil {
		l.Info("user_exists", "email", email)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	pw, err := hash.HashPassword(password)
	if err != nil {
		return err
	}
	if _, err := r.CreateUser(ctx, &models.User{Email: email, PasswordHash: pw, Role: role}); err != nil {
		return err
	}
	l.Info("user_seeded", "email", email, "role", role)
	return nil
}

func slug(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
			out = append(out, r+'a'-'A')
		case r == ' ':
			out = append(out, '-')
		default:
			out = append(out, r)
		}
	}
	return string(out)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
