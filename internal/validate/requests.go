package validate

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/clothing_store/internal/hash"
	"github.com/Skotchmaster/clothing_store/internal/models"
	"github.com/Skotchmaster/clothing_store/internal/transport"
)

func requiredID(errs Errors, field, raw string) *uuid.UUID {
	if strings.TrimSpace(raw) == "" {
		errs.Add(field, field+" is required")
		return nil
	}
	id, err := ID(field, raw)
	if err != nil {
		errs.Add(field, "Invalid id format")
		return nil
	}
	return &id
}

func CreateFeedback(req transport.CreateFeedbackRequest) (*models.Feedback, error) {
	errs := Errors{}

	productID := requiredID(errs, "productId", req.ProductID)
	minLen(errs, "author", req.Author, 3)
	minLen(errs, "description", req.Description, 5)

	switch {
	case req.Rate == nil:
		errs.Add("rate", "rate is required")
	case *req.Rate < 1 || *req.Rate > 5:
		errs.Add("rate", "rate must be between 1 and 5")
	}

	date := strings.TrimSpace(req.Date)
	if date != "" && !Date(date) {
		errs.Add("date", "date must be formatted as YYYY-MM-DD")
	}

	if err := errs.Err(); err != nil {
		return nil, err
	}

	return &models.Feedback{
		ProductID:   *productID,
		Category:    strings.TrimSpace(req.Category),
		Author:      strings.TrimSpace(req.Author),
		Rate:        *req.Rate,
		Description: strings.TrimSpace(req.Description),
		Date:        date,
	}, nil
}

// Prices are stored as numeric(12,2).
const (
	priceScale = 2
	priceLimit = 1e10
)

func price(errs Errors, req transport.PriceRequest) (decimal.Decimal, string) {
	switch {
	case req.Value == nil:
		errs.Add("price.value", "price.value is required")
	case *req.Value < 0:
		errs.Add("price.value", "price.value must be >= 0")
	case *req.Value >= priceLimit:
		errs.Add("price.value", "price.value must be less than 10000000000")
	case decimal.NewFromFloat(*req.Value).Exponent() < -priceScale:
		errs.Add("price.value", "price.value must have at most 2 decimal places")
	}
	currency := strings.TrimSpace(req.Currency)
	if currency == "" {
		currency = models.DefaultCurrency
	}
	if !slices.Contains(models.Currencies, currency) {
		errs.Add("price.currency", "Currency must be one of: "+strings.Join(models.Currencies, ", "))
	}
	if req.Value == nil {
		return decimal.Zero, currency
	}
	return decimal.NewFromFloat(*req.Value), currency
}

func sizeSet(errs Errors, values []string) models.SizeSet {
	sizes, ok := Sizes(values)
	if !ok {
		errs.Add("size", SizeMessage())
		return nil
	}
	if sizes == nil {
		sizes = []string{}
	}
	return sizes
}

func CreateGood(req transport.CreateGoodRequest) (*models.Good, error) {
	errs := Errors{}

	if strings.TrimSpace(req.Name) == "" {
		errs.Add("name", "name is required")
	}
	if strings.TrimSpace(req.Image) == "" {
		errs.Add("image", "image is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		errs.Add("description", "description is required")
	}
	categoryID := requiredID(errs, "category", req.Category)
	value, currency := price(errs, req.Price)
	size := sizeSet(errs, req.Size)

	gender := models.GenderUnisex
	if strings.TrimSpace(req.Gender) != "" {
		g, ok := Gender(req.Gender)
		if !ok {
			errs.Add("gender", GenderMessage())
		}
		gender = g
	}

	if err := errs.Err(); err != nil {
		return nil, err
	}

	characteristics := req.Characteristics
	if characteristics == nil {
		characteristics = []string{}
	}

	return &models.Good{
		Name:            strings.TrimSpace(req.Name),
		CategoryID:      categoryID,
		Image:           strings.TrimSpace(req.Image),
		Price:           models.Price{Value: value, Currency: currency},
		Size:            size,
		Description:     strings.TrimSpace(req.Description),
		Gender:          gender,
		Characteristics: characteristics,
		Feedbacks:       []uuid.UUID{},
	}, nil
}

func PatchGood(req transport.PatchGoodRequest) (models.GoodPatch, error) {
	errs := Errors{}
	var patch models.GoodPatch

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			errs.Add("name", "name must not be empty")
		}
		patch.Name = &name
	}
	if req.Category != nil {
		patch.CategoryID = requiredID(errs, "category", *req.Category)
	}
	if req.Image != nil {
		image := strings.TrimSpace(*req.Image)
		if image == "" {
			errs.Add("image", "image must not be empty")
		}
		patch.Image = &image
	}
	if req.Price != nil {
		value, currency := price(errs, *req.Price)
		patch.PriceValue = &value
		patch.Currency = &currency
	}
	if req.Size != nil {
		patch.Size = sizeSet(errs, req.Size)
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if description == "" {
			errs.Add("description", "description must not be empty")
		}
		patch.Description = &description
	}
	if req.Gender != nil {
		g, ok := Gender(*req.Gender)
		if !ok {
			errs.Add("gender", GenderMessage())
		}
		patch.Gender = &g
	}
	patch.Characteristics = req.Characteristics

	if err := errs.Err(); err != nil {
		return models.GoodPatch{}, err
	}
	return patch, nil
}

type CartItemInput struct {
	ProductID  uuid.UUID
	VariantKey string
	Qty        int
}

func AddCartItem(req transport.AddCartItemRequest) (CartItemInput, error) {
	errs := Errors{}

	productID := requiredID(errs, "productId", req.ProductID)
	variant := strings.TrimSpace(req.VariantKey)
	if variant != "" && !models.IsSize(variant) {
		errs.Add("variantKey", SizeMessage())
	}
	if req.Qty < 1 {
		errs.Add("qty", "qty must be at least 1")
	}

	if err := errs.Err(); err != nil {
		return CartItemInput{}, err
	}
	return CartItemInput{ProductID: *productID, VariantKey: variant, Qty: req.Qty}, nil
}

func Register(req transport.RegisterRequest) error {
	errs := Errors{}
	if !Email(strings.TrimSpace(req.Email)) {
		errs.Add("email", "email must be a valid address")
	}
	switch {
	case len(req.Password) < 8:
		errs.Add("password", "password should have at least 8 characters")
	case len(req.Password) > hash.MaxPasswordBytes:
		errs.Add("password", fmt.Sprintf("password must be at most %d bytes", hash.MaxPasswordBytes))
	}
	return errs.Err()
}

func Login(req transport.LoginRequest) error {
	errs := Errors{}
	if strings.TrimSpace(req.Email) == "" {
		errs.Add("email", "email is required")
	}
	if req.Password == "" {
		errs.Add("password", "password is required")
	}
	return errs.Err()
}
