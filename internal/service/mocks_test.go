package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Skotchmaster/clothing_store/internal/aggregate"
	"github.com/Skotchmaster/clothing_store/internal/models"
	"github.com/Skotchmaster/clothing_store/internal/query"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) ListGoods(ctx context.Context, f query.GoodsFilter, p query.Page) (query.Result[models.Good], error) {
	args := m.Called(ctx, f, p)
	return args.Get(0).(query.Result[models.Good]), args.Error(1)
}

func (m *mockRepo) GetGood(ctx context.Context, id uuid.UUID) (*models.Good, error) {
	args := m.Called(ctx, id)
	if g := args.Get(0); g != nil {
		return g.(*models.Good), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) CreateGood(ctx context.Context, good *models.Good) (*models.Good, error) {
	args := m.Called(ctx, good)
	if args.Error(0) == nil && good.ID == uuid.Nil {
		good.ID = uuid.New()
	}
	return good, args.Error(0)
}

func (m *mockRepo) PatchGood(ctx context.Context, id uuid.UUID, patch models.GoodPatch) (*models.Good, error) {
	args := m.Called(ctx, id, patch)
	if g := args.Get(0); g != nil {
		return g.(*models.Good), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*models.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) CategoryGoodRefs(ctx context.Context) ([]aggregate.GoodRef, error) {
	args := m.Called(ctx)
	if refs := args.Get(0); refs != nil {
		return refs.([]aggregate.GoodRef), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) ListFeedbacks(ctx context.Context, f query.FeedbackFilter, p query.Page) (query.Result[models.Feedback], error) {
	args := m.Called(ctx, f, p)
	return args.Get(0).(query.Result[models.Feedback]), args.Error(1)
}

func (m *mockRepo) CreateFeedback(ctx context.Context, fb *models.Feedback) (*models.Feedback, error) {
	args := m.Called(ctx, fb)
	if args.Error(0) == nil && fb.ID == uuid.Nil {
		fb.ID = uuid.New()
	}
	return fb, args.Error(0)
}

func (m *mockRepo) FindCart(ctx context.Context, userID *uuid.UUID, sessionID string) (*models.Cart, error) {
	args := m.Called(ctx, userID, sessionID)
	if c := args.Get(0); c != nil {
		return c.(*models.Cart), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) CreateCart(ctx context.Context, cart *models.Cart) (*models.Cart, error) {
	args := m.Called(ctx, cart)
	if args.Error(0) == nil && cart.ID == uuid.Nil {
		cart.ID = uuid.New()
	}
	return cart, args.Error(0)
}

func (m *mockRepo) AddCartItem(ctx context.Context, cartID uuid.UUID, item *models.CartItem) error {
	args := m.Called(ctx, cartID, item)
	return args.Error(0)
}

func (m *mockRepo) ClearCart(ctx context.Context, cartID uuid.UUID) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

func (m *mockRepo) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	args := m.Called(ctx, order)
	if args.Error(0) == nil && order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	return order, args.Error(0)
}

func (m *mockRepo) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	if args.Error(0) == nil && user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	return user, args.Error(0)
}

func (m *mockRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishEvent(ctx context.Context, topic, key string, event any) error {
	args := m.Called(ctx, topic, key, event)
	return args.Error(0)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, p query.Page) (*aggregate.Facet, bool, error) {
	args := m.Called(ctx, p)
	if f := args.Get(0); f != nil {
		return f.(*aggregate.Facet), args.Bool(1), args.Error(2)
	}
	return nil, args.Bool(1), args.Error(2)
}

func (m *mockCache) Set(ctx context.Context, p query.Page, facet aggregate.Facet) error {
	args := m.Called(ctx, p, facet)
	return args.Error(0)
}

func (m *mockCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var (
	_ GoodsStore    = (*mockRepo)(nil)
	_ CategoryStore = (*mockRepo)(nil)
	_ FeedbackStore = (*mockRepo)(nil)
	_ CartStore     = (*mockRepo)(nil)
	_ OrderStore    = (*mockRepo)(nil)
	_ UserStore     = (*mockRepo)(nil)
	_ Publisher     = (*mockPublisher)(nil)
	_ CategoryCache = (*mockCache)(nil)
)
