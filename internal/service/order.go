package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/clothing_store/internal/apperr"
	"github.com/Skotchmaster/clothing_store/internal/logging"
	"github.com/Skotchmaster/clothing_store/internal/models"
)

type OrderStore interface {
	FindCart(ctx context.Context, userID *uuid.UUID, sessionID string) (*models.Cart, error)
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	ClearCart(ctx context.Context, cartID uuid.UUID) error
}

type OrderService struct {
	Repo   OrderStore
	Events Publisher
}

// Materialize freezes cart lines into order lines and computes the totals.
// Shipping is always zero.
func Materialize(items []models.CartItem) ([]models.OrderItem, models.Totals) {
	out := make([]models.OrderItem, 0, len(items))
	subtotal := decimal.Zero
	for i, it := range items {
		out = append(out, models.OrderItem{
			Position:   i,
			ProductID:  it.ProductID,
			VariantKey: it.VariantKey,
			Qty:        it.Qty,
			Price:      it.Price,
		})
		subtotal = subtotal.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Qty))))
	}
	shipping := decimal.Zero
	return out, models.Totals{Subtotal: subtotal, Shipping: shipping, Total: subtotal.Add(shipping)}
}

// CreateOrder turns the caller's cart into an order and then empties the cart.
// The two writes are separate; a failure while clearing leaves the order in place.
func (s *OrderService) CreateOrder(ctx context.Context, userID *uuid.UUID, sessionID string) (*models.Order, error) {
	if userID == nil && sessionID == "" {
		return nil, apperr.Precondition("Cart empty")
	}

	cart, err := s.Repo.FindCart(ctx, userID, sessionID)
	if isNotFound(err) {
		return nil, apperr.Precondition("Cart empty")
	}
	if err != nil {
		return nil, apperr.Internal("failed to load cart", err)
	}
	if len(cart.Items) == 0 {
		return nil, apperr.Precondition("Cart empty")
	}

	items, totals := Materialize(cart.Items)
	owner := userID
	if owner == nil {
		owner = cart.UserID
	}

	order, err := s.Repo.CreateOrder(ctx, &models.Order{
		UserID: owner,
		Items:  items,
		Totals: totals,
		Status: models.OrderStatusCreated,
	})
	if err != nil {
		return nil, apperr.Internal("failed to create order", err)
	}

	if err := s.Repo.ClearCart(ctx, cart.ID); err != nil {
		logging.FromContext(ctx).Error("cart_clear_failed", "cart_id", cart.ID, "order_id", order.ID, "error", err)
		return nil, apperr.Internal("failed to clear cart", err)
	}

	publish(ctx, s.Events, TopicOrderEvents, EventOrderCreated, order.ID.String(), order)
	return order, nil
}
