package transport

import (
	"github.com/Skotchmaster/clothing_store/internal/aggregate"
	"github.com/Skotchmaster/clothing_store/internal/models"
)

// HeaderSessionID identifies an anonymous cart.
const HeaderSessionID = "X-Session-Id"

type PriceRequest struct {
	Value    *float64 `json:"value"`
	Currency string   `json:"currency"`
}

type CreateGoodRequest struct {
	Name            string       `json:"name"`
	Category        string       `json:"category"`
	Image           string       `json:"image"`
	Price           PriceRequest `json:"price"`
	Size            []string     `json:"size"`
	Description     string       `json:"description"`
	Gender          string       `json:"gender"`
	Characteristics []string     `json:"characteristics"`
}

type PatchGoodRequest struct {
	Name            *string       `json:"name"`
	Category        *string       `json:"category"`
	Image           *string       `json:"image"`
	Price           *PriceRequest `json:"price"`
	Size            []string      `json:"size"`
	Description     *string       `json:"description"`
	Gender          *string       `json:"gender"`
	Characteristics []string      `json:"characteristics"`
}

type CreateFeedbackRequest struct {
	ProductID   string `json:"productId"`
	Author      string `json:"author"`
	Rate        *int   `json:"rate"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Date        string `json:"date"`
}

type AddCartItemRequest struct {
	ProductID  string `json:"productId"`
	VariantKey string `json:"variantKey"`
	Qty        int    `json:"qty"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresAt   int64  `json:"expiresAt"`
}

type ErrorResponse struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

type GoodsPage struct {
	Page       int           `json:"page"`
	PerPage    int           `json:"perPage"`
	TotalGoods int64         `json:"totalGoods"`
	TotalPages int           `json:"totalPages"`
	Data       []models.Good `json:"data"`
}

type CategoriesPage struct {
	Page       int                 `json:"page"`
	PerPage    int                 `json:"perPage"`
	Total      int64               `json:"total"`
	TotalPages int                 `json:"totalPages"`
	Data       []aggregate.Summary `json:"data"`
}

type FeedbacksPage struct {
	Page           int               `json:"page"`
	PerPage        int               `json:"perPage"`
	TotalFeedbacks int64             `json:"totalFeedbacks"`
	TotalPages     int               `json:"totalPages"`
	Feedbacks      []models.Feedback `json:"feedbacks"`
}

type DataResponse[T any] struct {
	Data T `json:"data"`
}
