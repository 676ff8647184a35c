package repo

import (
	"context"

	"github.com/Skotchmaster/clothing_store/internal/models"
)

func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := r.DB.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}
