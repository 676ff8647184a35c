package repo

import (
	"context"

	"github.com/google/uuid"

	"github.com/Skotchmaster/clothing_store/internal/models"
	"github.com/Skotchmaster/clothing_store/internal/query"
)

// ListGoods runs the count and the window over the same filter scope.
func (r *GormRepo) ListGoods(ctx context.Context, f query.GoodsFilter, p query.Page) (query.Result[models.Good], error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Good{}).Scopes(f.Scope).Count(&total).Error; err != nil {
		return query.Result[models.Good]{}, err
	}

	items := make([]models.Good, 0, windowCap(p.Limit(), total))
	if err := r.DB.WithContext(ctx).
		Model(&models.Good{}).
		Scopes(f.Scope).
		Order("created_at DESC").
		Order("id ASC").
		Offset(p.Offset()).
		Limit(p.Limit()).
		Find(&items).Error; err != nil {
		return query.Result[models.Good]{}, err
	}

	return query.Result[models.Good]{Total: total, Items: items}, nil
}

func (r *GormRepo) GetGood(ctx context.Context, id uuid.UUID) (*models.Good, error) {
	var good models.Good
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&good).Error; err != nil {
		return nil, err
	}
	return &good, nil
}

func (r *GormRepo) CreateGood(ctx context.Context, good *models.Good) (*models.Good, error) {
	if err := r.DB.WithContext(ctx).Create(good).Error; err != nil {
		return nil, err
	}
	return good, nil
}

// PatchGood loads the good, applies the patch and saves every column back.
func (r *GormRepo) PatchGood(ctx context.Context, id uuid.UUID, patch models.GoodPatch) (*models.Good, error) {
	var good models.Good
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&good).Error; err != nil {
		return nil, err
	}

	patch.Apply(&good)

	if err := r.DB.WithContext(ctx).Save(&good).Error; err != nil {
		return nil, err
	}
	return &good, nil
}
