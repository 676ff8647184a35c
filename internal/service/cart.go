package service

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/Skotchmaster/clothing_store/internal/apperr"
	"github.com/Skotchmaster/clothing_store/internal/models"
	"github.com/Skotchmaster/clothing_store/internal/validate"
)

type CartStore interface {
	FindCart(ctx context.Context, userID *uuid.UUID, sessionID string) (*models.Cart, error)
	CreateCart(ctx context.Context, cart *models.Cart) (*models.Cart, error)
	AddCartItem(ctx context.Context, cartID uuid.UUID, item *models.CartItem) error
	GetGood(ctx context.Context, id uuid.UUID) (*models.Good, error)
}

type CartService struct {
	Repo CartStore
}

func requireOwner(userID *uuid.UUID, sessionID string) error {
	if userID == nil && sessionID == "" {
		return apperr.Validation("Validation failed", map[string]string{
			"X-Session-Id": "X-Session-Id header or bearer token is required",
		})
	}
	return nil
}

// GetCart returns the caller's cart, or an unsaved empty cart when there is none yet.
func (s *CartService) GetCart(ctx context.Context, userID *uuid.UUID, sessionID string) (*models.Cart, error) {
	if err := requireOwner(userID, sessionID); err != nil {
		return nil, err
	}

	cart, err := s.Repo.FindCart(ctx, userID, sessionID)
	if isNotFound(err) {
		return emptyCart(userID, sessionID), nil
	}
	if err != nil {
		return nil, apperr.Internal("failed to load cart", err)
	}
	return cart, nil
}

func (s *CartService) AddItem(ctx context.Context, userID *uuid.UUID, sessionID string, in validate.CartItemInput) (*models.Cart, error) {
	if err := requireOwner(userID, sessionID); err != nil {
		return nil, err
	}

	good, err := s.Repo.GetGood(ctx, in.ProductID)
	if err != nil {
		return nil, storeErr(err, "Good not found")
	}
	if in.VariantKey != "" && !slices.Contains(good.Size, in.VariantKey) {
		return nil, apperr.Validation("Validation failed", map[string]string{
			"variantKey": "Size is not available for this good",
		})
	}

	cart, err := s.Repo.FindCart(ctx, userID, sessionID)
	if isNotFound(err) {
		cart, err = s.Repo.CreateCart(ctx, emptyCart(userID, sessionID))
	}
	if err != nil {
		return nil, apperr.Internal("failed to load cart", err)
	}

	item := &models.CartItem{
		ProductID:  good.ID,
		VariantKey: in.VariantKey,
		Qty:        in.Qty,
		Price:      good.Price.Value,
	}
	if err := s.Repo.AddCartItem(ctx, cart.ID, item); err != nil {
		return nil, apperr.Internal("failed to add cart item", err)
	}

	updated, err := s.Repo.FindCart(ctx, userID, sessionID)
	if err != nil {
		return nil, apperr.Internal("failed to load cart", err)
	}
	return updated, nil
}

func emptyCart(userID *uuid.UUID, sessionID string) *models.Cart {
	cart := &models.Cart{UserID: userID, Items: []models.CartItem{}}
	if sessionID != "" {
		cart.SessionID = &sessionID
	}
	return cart
}
