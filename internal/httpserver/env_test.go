package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/clothing_store/internal/db/dbtest"
	"github.com/Skotchmaster/clothing_store/internal/hash"
	"github.com/Skotchmaster/clothing_store/internal/models"
	"github.com/Skotchmaster/clothing_store/internal/repo"
	"github.com/Skotchmaster/clothing_store/internal/service"
	"github.com/Skotchmaster/clothing_store/internal/tokens"
)

var testSecret = []byte("test-jwt-secret")

type testEnv struct {
	T    *testing.T
	E    *echo.Echo
	Repo *repo.GormRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	r := &repo.GormRepo{DB: dbtest.New(t)}
	now := func() time.Time { return time.Date(2024, 7, 9, 12, 0, 0, 0, time.Local) }

	e := echo.New()
	Register(e, &Deps{
		Goods:      &GoodsHTTP{Svc: &service.CatalogService{Repo: r, Events: service.NopPublisher{}}},
		Categories: &CategoriesHTTP{Svc: &service.CategoryService{Repo: r}},
		Feedbacks:  &FeedbacksHTTP{Svc: &service.FeedbackService{Repo: r, Events: service.NopPublisher{}, Now: now}},
		Cart:       &CartHTTP{Svc: &service.CartService{Repo: r}},
		Orders:     &OrdersHTTP{Svc: &service.OrderService{Repo: r, Events: service.NopPublisher{}}},
		Auth:       &AuthHTTP{Svc: &service.AuthService{Repo: r, JWTSecret: testSecret, TokenTTL: time.Hour}},
		JWTSecret:  testSecret,
	})

	return &testEnv{T: t, E: e, Repo: r}
}

func (env *testEnv) do(method, target string, body any, headers map[string]string) *httptest.ResponseRecorder {
	env.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func (env *testEnv) category(name string) *models.Category {
	env.T.Helper()
	c, err := env.Repo.CreateCategory(context.Background(), &models.Category{Name: name})
	require.NoError(env.T, err)
	return c
}

func (env *testEnv) good(name string, price int64, gender models.Gender, category *uuid.UUID, createdAt time.Time) *models.Good {
	env.T.Helper()
	g, err := env.Repo.CreateGood(context.Background(), &models.Good{
		Name:            name,
		CategoryID:      category,
		Image:           name + ".jpg",
		Price:           models.Price{Value: decimal.NewFromInt(price), Currency: models.DefaultCurrency},
		Size:            models.SizeSet{"M"},
		Description:     name,
		Gender:          gender,
		Characteristics: []string{},
		Feedbacks:       []uuid.UUID{},
		CreatedAt:       createdAt,
	})
	require.NoError(env.T, err)
	return g
}

func (env *testEnv) token(role models.Role) (string, uuid.UUID) {
	env.T.Helper()
	pw, err := hash.HashPassword("password123")
	require.NoError(env.T, err)
	u, err := env.Repo.CreateUser(context.Background(), &models.User{
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: pw,
		Role:         role,
	})
	require.NoError(env.T, err)
	tok, err := tokens.CreateAccessToken(testSecret, u.ID.String(), string(role), time.Now().Add(time.Hour))
	require.NoError(env.T, err)
	return tok, u.ID
}

func bearer(token string) map[string]string {
	return map[string]string{echo.HeaderAuthorization: "Bearer " + token}
}
