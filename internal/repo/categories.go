package repo

import (
	"context"

	"github.com/google/uuid"

	"github.com/Skotchmaster/clothing_store/internal/aggregate"
	"github.com/Skotchmaster/clothing_store/internal/models"
)

// CategoryGoodRefs is the single projection read behind the category summary:
// every categorised good with its image, creation time and joined category name.
// The name is NULL when the referenced category no longer exists.
func (r *GormRepo) CategoryGoodRefs(ctx context.Context) ([]aggregate.GoodRef, error) {
	var refs []aggregate.GoodRef
	if err := r.DB.WithContext(ctx).
		Table("goods").
		Select("goods.id, goods.category_id, categories.name AS category_name, goods.image, goods.created_at").
		Joins("LEFT JOIN categories ON categories.id = goods.category_id").
		Where("goods.category_id IS NOT NULL").
		Scan(&refs).Error; err != nil {
		return nil, err
	}
	return refs, nil
}

func (r *GormRepo) GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *GormRepo) CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	if err := r.DB.WithContext(ctx).Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func (r *GormRepo) FindCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	if err := r.DB.WithContext(ctx).Where("name = ?", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}
