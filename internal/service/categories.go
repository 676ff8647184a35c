package service

import (
	"context"

	"github.com/Skotchmaster/clothing_store/internal/aggregate"
	"github.com/Skotchmaster/clothing_store/internal/apperr"
	"github.com/Skotchmaster/clothing_store/internal/logging"
	"github.com/Skotchmaster/clothing_store/internal/query"
)

type CategoryStore interface {
	CategoryGoodRefs(ctx context.Context) ([]aggregate.GoodRef, error)
}

type CategoryCache interface {
	Get(ctx context.Context, p query.Page) (*aggregate.Facet, bool, error)
	Set(ctx context.Context, p query.Page, facet aggregate.Facet) error
	Invalidate(ctx context.Context) error
}

type CategoryService struct {
	Repo  CategoryStore
	Cache CategoryCache
}

// ListCategories returns one summary row per category that has at least one good.
// Cache errors degrade to a direct read.
func (s *CategoryService) ListCategories(ctx context.Context, p query.Page) (aggregate.Facet, error) {
	l := logging.FromContext(ctx)

	if s.Cache != nil {
		facet, ok, err := s.Cache.Get(ctx, p)
		if err != nil {
			l.Warn("category_cache_get_failed", "error", err)
		} else if ok {
			return *facet, nil
		}
	}

	refs, err := s.Repo.CategoryGoodRefs(ctx)
	if err != nil {
		return aggregate.Facet{}, apperr.Internal("failed to list categories", err)
	}
	facet := aggregate.Summarize(refs, p.Offset(), p.Limit())

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, p, facet); err != nil {
			l.Warn("category_cache_set_failed", "error", err)
		}
	}
	return facet, nil
}
