package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Skotchmaster/clothing_store/internal/models"
	"github.com/Skotchmaster/clothing_store/internal/query"
)

func (r *GormRepo) ListFeedbacks(ctx context.Context, f query.FeedbackFilter, p query.Page) (query.Result[models.Feedback], error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Feedback{}).Scopes(f.Scope).Count(&total).Error; err != nil {
		return query.Result[models.Feedback]{}, err
	}

	items := make([]models.Feedback, 0, windowCap(p.Limit(), total))
	if err := r.DB.WithContext(ctx).
		Model(&models.Feedback{}).
		Scopes(f.Scope).
		Order("created_at DESC").
		Order("id ASC").
		Offset(p.Offset()).
		Limit(p.Limit()).
		Find(&items).Error; err != nil {
		return query.Result[models.Feedback]{}, err
	}

	return query.Result[models.Feedback]{Total: total, Items: items}, nil
}

// CreateFeedback inserts the feedback and appends its id to the good's feedback
// list in one transaction. A feedback for an unknown good is still stored.
func (r *GormRepo) CreateFeedback(ctx context.Context, fb *models.Feedback) (*models.Feedback, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(fb).Error; err != nil {
			return err
		}

		var good models.Good
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", fb.ProductID).First(&good).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		good.Feedbacks = append(good.Feedbacks, fb.ID)
		return tx.Save(&good).Error
	})
	if err != nil {
		return nil, err
	}
	return fb, nil
}
