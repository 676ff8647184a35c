package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/clothing_store/internal/apperr"
	"github.com/Skotchmaster/clothing_store/internal/hash"
	"github.com/Skotchmaster/clothing_store/internal/models"
	"github.com/Skotchmaster/clothing_store/internal/tokens"
	"github.com/Skotchmaster/clothing_store/internal/transport"
)

func newTestAuthService(r UserStore) *AuthService {
	return &AuthService{Repo: r, JWTSecret: []byte("test-jwt-secret"), TokenTTL: time.Hour}
}

func TestRegister_CreatesUserWithHashedPassword(t *testing.T) {
	r := new(mockRepo)
	svc := newTestAuthService(r)
	ctx := context.Background()

	r.On("GetUserByEmail", ctx, "ann@example.com").Return(nil, gorm.ErrRecordNotFound).Once()
	r.On("CreateUser", ctx, mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "ann@example.com" && u.Role == models.RoleUser && hash.CheckPassword(u.PasswordHash, "password123")
	})).Return(nil).Once()

	user, err := svc.Register(ctx, transport.RegisterRequest{Email: " Ann@Example.com", Password: "password123", Name: "Ann"})
	require.NoError(t, err)
	assert.Equal(t, "Ann", user.Name)
	r.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	r := new(mockRepo)
	svc := newTestAuthService(r)
	ctx := context.Background()

	r.On("GetUserByEmail", ctx, "ann@example.com").Return(&models.User{}, nil).Once()

	_, err := svc.Register(ctx, transport.RegisterRequest{Email: "ann@example.com", Password: "password123"})
	assert.True(t, errors.Is(err, apperr.ErrConflict))
}

func TestLogin(t *testing.T) {
	r := new(mockRepo)
	svc := newTestAuthService(r)
	ctx := context.Background()

	pw, err := hash.HashPassword("password123")
	require.NoError(t, err)
	user := &models.User{ID: uuid.New(), Email: "ann@example.com", PasswordHash: pw, Role: models.RoleAdmin}
	r.On("GetUserByEmail", ctx, "ann@example.com").Return(user, nil)
	r.On("GetUserByEmail", ctx, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

	resp, err := svc.Login(ctx, transport.LoginRequest{Email: "ann@example.com", Password: "password123"})
	require.NoError(t, err)

	claims, err := tokens.AccessClaimsFromToken(resp.AccessToken, svc.JWTSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, claims.ExpiresAt.Unix(), resp.ExpiresAt)

	_, err = svc.Login(ctx, transport.LoginRequest{Email: "ann@example.com", Password: "wrong-password"})
	assert.True(t, errors.Is(err, apperr.ErrUnauthorized))

	_, err = svc.Login(ctx, transport.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.True(t, errors.Is(err, apperr.ErrUnauthorized))
}

func TestMe_NotFound(t *testing.T) {
	r := new(mockRepo)
	svc := newTestAuthService(r)
	ctx := context.Background()
	id := uuid.New()

	r.On("GetUserByID", ctx, id).Return(nil, gorm.ErrRecordNotFound).Once()

	_, err := svc.Me(ctx, id)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}
