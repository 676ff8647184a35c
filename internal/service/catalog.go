package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Skotchmaster/clothing_store/internal/apperr"
	"github.com/Skotchmaster/clothing_store/internal/logging"
	"github.com/Skotchmaster/clothing_store/internal/models"
	"github.com/Skotchmaster/clothing_store/internal/query"
)

type GoodsStore interface {
	ListGoods(ctx context.Context, f query.GoodsFilter, p query.Page) (query.Result[models.Good], error)
	GetGood(ctx context.Context, id uuid.UUID) (*models.Good, error)
	CreateGood(ctx context.Context, good *models.Good) (*models.Good, error)
	PatchGood(ctx context.Context, id uuid.UUID, patch models.GoodPatch) (*models.Good, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error)
}

type CatalogService struct {
	Repo   GoodsStore
	Events Publisher
	Cache  CategoryCache
}

func (s *CatalogService) ListGoods(ctx context.Context, f query.GoodsFilter, p query.Page) (query.Result[models.Good], error) {
	res, err := s.Repo.ListGoods(ctx, f, p)
	if err != nil {
		return query.Result[models.Good]{}, apperr.Internal("failed to list goods", err)
	}
	return res, nil
}

func (s *CatalogService) GetGood(ctx context.Context, id uuid.UUID) (*models.Good, error) {
	good, err := s.Repo.GetGood(ctx, id)
	if err != nil {
		return nil, storeErr(err, "Good not found")
	}
	return good, nil
}

func (s *CatalogService) CreateGood(ctx context.Context, good *models.Good) (*models.Good, error) {
	if err := s.ensureCategory(ctx, good.CategoryID); err != nil {
		return nil, err
	}

	created, err := s.Repo.CreateGood(ctx, good)
	if err != nil {
		return nil, apperr.Internal("failed to create good", err)
	}

	s.invalidateCategories(ctx)
	publish(ctx, s.Events, TopicGoodEvents, EventGoodCreated, created.ID.String(), created)
	return created, nil
}

func (s *CatalogService) PatchGood(ctx context.Context, id uuid.UUID, patch models.GoodPatch) (*models.Good, error) {
	if err := s.ensureCategory(ctx, patch.CategoryID); err != nil {
		return nil, err
	}

	updated, err := s.Repo.PatchGood(ctx, id, patch)
	if err != nil {
		return nil, storeErr(err, "Good not found")
	}

	s.invalidateCategories(ctx)
	publish(ctx, s.Events, TopicGoodEvents, EventGoodUpdated, updated.ID.String(), updated)
	return updated, nil
}

func (s *CatalogService) ensureCategory(ctx context.Context, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	if _, err := s.Repo.GetCategory(ctx, *id); err != nil {
		if isNotFound(err) {
			return apperr.Validation("Validation failed", map[string]string{"category": "Category not found"})
		}
		return apperr.Internal("failed to load category", err)
	}
	return nil
}

func (s *CatalogService) invalidateCategories(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Invalidate(ctx); err != nil {
		logging.FromContext(ctx).Warn("category_cache_invalidate_failed", "error", err)
	}
}
