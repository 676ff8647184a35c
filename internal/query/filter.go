package query

import (
	"net/url"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Skotchmaster/clothing_store/internal/models"
	"github.com/Skotchmaster/clothing_store/internal/validate"
)

type GoodsFilter struct {
	CategoryID *uuid.UUID
	Sizes      []string
	Gender     models.Gender
	MinPrice   *float64
	MaxPrice   *float64
}

// ParseGoods builds the goods predicate and page from raw query values.
// Malformed category, size, gender or price values are validation errors.
func ParseGoods(values url.Values) (GoodsFilter, Page, error) {
	errs := validate.Errors{}
	var f GoodsFilter

	if raw := strings.TrimSpace(values.Get("category")); raw != "" {
		id, err := validate.ID("category", raw)
		if err != nil {
			errs.Add("category", "Invalid id format")
		} else {
			f.CategoryID = &id
		}
	}

	sizes, ok := validate.Sizes(values["size"])
	if !ok {
		errs.Add("size", validate.SizeMessage())
	}
	f.Sizes = sizes

	if raw := strings.TrimSpace(values.Get("gender")); raw != "" {
		g, ok := validate.Gender(raw)
		if !ok {
			errs.Add("gender", validate.GenderMessage())
		}
		f.Gender = g
	}

	minPrice, ok := validate.NonNegative(values.Get("minPrice"))
	if !ok {
		errs.Add("minPrice", "minPrice must be a number >= 0")
	}
	f.MinPrice = minPrice

	maxPrice, ok := validate.NonNegative(values.Get("maxPrice"))
	if !ok {
		errs.Add("maxPrice", "maxPrice must be a number >= 0")
	}
	f.MaxPrice = maxPrice

	if err := errs.Err(); err != nil {
		return GoodsFilter{}, Page{}, err
	}
	return f, ParsePage(values, GoodsPolicy), nil
}

func (f GoodsFilter) IsEmpty() bool {
	return f.CategoryID == nil && len(f.Sizes) == 0 && f.Gender == "" && f.MinPrice == nil && f.MaxPrice == nil
}

// Scope applies every present predicate with AND semantics.
func (f GoodsFilter) Scope(db *gorm.DB) *gorm.DB {
	if f.CategoryID != nil {
		db = db.Where("category_id = ?", *f.CategoryID)
	}
	if len(f.Sizes) > 0 {
		if mask, err := models.SizeMask(f.Sizes); err == nil {
			db = db.Where("(size_mask & ?) <> 0", mask)
		}
	}
	if f.Gender != "" {
		db = db.Where("gender = ?", string(f.Gender))
	}
	if f.MinPrice != nil {
		db = db.Where("price_value >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		db = db.Where("price_value <= ?", *f.MaxPrice)
	}
	return db
}

type FeedbackFilter struct {
	ProductID *uuid.UUID
}

func ParseFeedbacks(values url.Values) (FeedbackFilter, Page, error) {
	var f FeedbackFilter
	if raw := strings.TrimSpace(values.Get("productId")); raw != "" {
		id, err := validate.ID("productId", raw)
		if err != nil {
			return FeedbackFilter{}, Page{}, err
		}
		f.ProductID = &id
	}
	return f, ParsePage(values, FeedbacksPolicy), nil
}

func (f FeedbackFilter) Scope(db *gorm.DB) *gorm.DB {
	if f.ProductID != nil {
		db = db.Where("product_id = ?", *f.ProductID)
	}
	return db
}
