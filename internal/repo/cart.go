package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Skotchmaster/clothing_store/internal/models"
)

func (r *GormRepo) cartQuery(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	})
}

// FindCart looks up the user's cart and the session cart, in that order, and
// returns the first one holding items. When both are empty the user's cart wins.
// It returns gorm.ErrRecordNotFound when neither exists.
func (r *GormRepo) FindCart(ctx context.Context, userID *uuid.UUID, sessionID string) (*models.Cart, error) {
	var fallback *models.Cart

	if userID != nil {
		cart, err := r.findCartBy(ctx, "user_id", *userID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if cart != nil && len(cart.Items) > 0 {
			return cart, nil
		}
		fallback = cart
	}

	if sessionID != "" {
		cart, err := r.findCartBy(ctx, "session_id", sessionID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if cart != nil && (len(cart.Items) > 0 || fallback == nil) {
			return cart, nil
		}
	}

	if fallback != nil {
		return fallback, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *GormRepo) findCartBy(ctx context.Context, column string, value any) (*models.Cart, error) {
	var cart models.Cart
	if err := r.cartQuery(ctx).Where(column+" = ?", value).Order("created_at ASC").First(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *GormRepo) CreateCart(ctx context.Context, cart *models.Cart) (*models.Cart, error) {
	if err := r.DB.WithContext(ctx).Create(cart).Error; err != nil {
		return nil, err
	}
	return cart, nil
}

// AddCartItem bumps the quantity of a matching product/variant line or appends a new line.
func (r *GormRepo) AddCartItem(ctx context.Context, cartID uuid.UUID, item *models.CartItem) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.CartItem{}).
			Where("cart_id = ? AND product_id = ? AND variant_key = ?", cartID, item.ProductID, item.VariantKey).
			Update("qty", gorm.Expr("qty + ?", item.Qty))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return tx.Where("cart_id = ? AND product_id = ? AND variant_key = ?", cartID, item.ProductID, item.VariantKey).First(item).Error
		}

		var lines int64
		if err := tx.Model(&models.CartItem{}).Where("cart_id = ?", cartID).Count(&lines).Error; err != nil {
			return err
		}
		item.CartID = cartID
		item.Position = int(lines)
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		return tx.Model(&models.Cart{}).Where("id = ?", cartID).Update("updated_at", tx.NowFunc()).Error
	})
}

func (r *GormRepo) ClearCart(ctx context.Context, cartID uuid.UUID) error {
	return r.DB.WithContext(ctx).Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}
