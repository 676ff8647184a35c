package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Skotchmaster/clothing_store/internal/apperr"
	"github.com/Skotchmaster/clothing_store/internal/hash"
	"github.com/Skotchmaster/clothing_store/internal/models"
	"github.com/Skotchmaster/clothing_store/internal/tokens"
	"github.com/Skotchmaster/clothing_store/internal/transport"
)

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type AuthService struct {
	Repo      UserStore
	JWTSecret []byte
	TokenTTL  time.Duration
	Now       func() time.Time
}

func (s *AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *AuthService) Register(ctx context.Context, req transport.RegisterRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	_, err := s.Repo.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, apperr.Conflict("Email already registered")
	}
	if !isNotFound(err) {
		return nil, apperr.Internal("failed to look up user", err)
	}

	passwordHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, apperr.Internal("failed to hash password", err)
	}

	user, err := s.Repo.CreateUser(ctx, &models.User{
		Email:        email,
		PasswordHash: passwordHash,
		Name:         strings.TrimSpace(req.Name),
		Role:         models.RoleUser,
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, apperr.Conflict("Email already registered")
	}
	if err != nil {
		return nil, apperr.Internal("failed to create user", err)
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, req transport.LoginRequest) (*transport.LoginResponse, error) {
	user, err := s.Repo.GetUserByEmail(ctx, req.Email)
	if isNotFound(err) {
		return nil, apperr.Unauthorized("Invalid email or password")
	}
	if err != nil {
		return nil, apperr.Internal("failed to look up user", err)
	}
	if !hash.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperr.Unauthorized("Invalid email or password")
	}

	exp := s.now().Add(s.TokenTTL)
	token, err := tokens.CreateAccessToken(s.JWTSecret, user.ID.String(), string(user.Role), exp)
	if err != nil {
		return nil, apperr.Internal("failed to issue token", err)
	}
	return &transport.LoginResponse{AccessToken: token, ExpiresAt: exp.Unix()}, nil
}

func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.Repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, storeErr(err, "User not found")
	}
	return user, nil
}
