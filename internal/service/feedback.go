package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Skotchmaster/clothing_store/internal/apperr"
	"github.com/Skotchmaster/clothing_store/internal/models"
	"github.com/Skotchmaster/clothing_store/internal/query"
	"github.com/Skotchmaster/clothing_store/internal/validate"
)

type FeedbackStore interface {
	ListFeedbacks(ctx context.Context, f query.FeedbackFilter, p query.Page) (query.Result[models.Feedback], error)
	CreateFeedback(ctx context.Context, fb *models.Feedback) (*models.Feedback, error)
	GetGood(ctx context.Context, id uuid.UUID) (*models.Good, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error)
}

type FeedbackService struct {
	Repo   FeedbackStore
	Events Publisher
	Now    func() time.Time
}

func (s *FeedbackService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *FeedbackService) ListFeedbacks(ctx context.Context, f query.FeedbackFilter, p query.Page) (query.Result[models.Feedback], error) {
	res, err := s.Repo.ListFeedbacks(ctx, f, p)
	if err != nil {
		return query.Result[models.Feedback]{}, apperr.Internal("failed to list feedbacks", err)
	}
	return res, nil
}

// Enrich fills the derived fields of a feedback before it is stored. An empty
// category becomes the name of the reviewed good's category, and an empty date
// becomes today's local date. Values supplied by the caller are kept.
func (s *FeedbackService) Enrich(ctx context.Context, fb *models.Feedback) error {
	if strings.TrimSpace(fb.Category) == "" {
		name, err := s.categoryName(ctx, fb.ProductID)
		if err != nil {
			return apperr.Internal("failed to resolve feedback category", err)
		}
		fb.Category = name
	}
	if strings.TrimSpace(fb.Date) == "" {
		fb.Date = s.now().Format(validate.DateLayout)
	}
	return nil
}

// categoryName is empty when the good, its category reference or the category is missing.
func (s *FeedbackService) categoryName(ctx context.Context, productID uuid.UUID) (string, error) {
	good, err := s.Repo.GetGood(ctx, productID)
	if isNotFound(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if good.CategoryID == nil {
		return "", nil
	}

	category, err := s.Repo.GetCategory(ctx, *good.CategoryID)
	if isNotFound(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return category.Name, nil
}

func (s *FeedbackService) CreateFeedback(ctx context.Context, fb *models.Feedback) (*models.Feedback, error) {
	if err := s.Enrich(ctx, fb); err != nil {
		return nil, err
	}

	created, err := s.Repo.CreateFeedback(ctx, fb)
	if err != nil {
		return nil, apperr.Internal("failed to create feedback", err)
	}

	publish(ctx, s.Events, TopicFeedbackEvents, EventFeedbackCreated, created.ID.String(), created)
	return created, nil
}
