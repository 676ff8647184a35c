package auth

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/clothing_store/internal/logging"
	"github.com/Skotchmaster/clothing_store/internal/models"
	"github.com/Skotchmaster/clothing_store/internal/tokens"
)

const (
	CtxUserID = "user_id"
	CtxRole   = "role"
)

type Auth struct {
	JWTSecret []byte
}

func New(secret []byte) *Auth {
	return &Auth{JWTSecret: secret}
}

func bearer(c echo.Context) string {
	h := c.Request().Header.Get(echo.HeaderAuthorization)
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func (m *Auth) claims(c echo.Context) (*tokens.AccessClaims, error) {
	raw := bearer(c)
	if raw == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing access token")
	}
	claims, err := tokens.AccessClaimsFromToken(raw, m.JWTSecret)
	if err != nil || claims == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "token has no subject")
	}
	return claims, nil
}

func (m *Auth) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := m.claims(c)
		if err != nil {
			return err
		}
		setUserContext(c, claims)
		return next(c)
	}
}

func (m *Auth) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return m.RequireAuth(func(c echo.Context) error {
		if role, _ := c.Get(CtxRole).(string); role != string(models.RoleAdmin) {
			return echo.NewHTTPError(http.StatusForbidden, "admin access required")
		}
		return next(c)
	})
}

// OptionalAuth sets the user identity when a valid bearer token is present.
// A missing header passes through anonymously; a bad token is still rejected.
func (m *Auth) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if bearer(c) == "" {
			return next(c)
		}
		claims, err := m.claims(c)
		if err != nil {
			return err
		}
		setUserContext(c, claims)
		return next(c)
	}
}

func setUserContext(c echo.Context, claims *tokens.AccessClaims) {
	c.Set(CtxUserID, claims.Subject)
	c.Set(CtxRole, claims.Role)

	ctx := logging.With(c.Request().Context(), CtxUserID, claims.Subject, CtxRole, claims.Role)
	c.SetRequest(c.Request().WithContext(ctx))
}

// UserID returns the authenticated user, or nil for anonymous requests.
func UserID(c echo.Context) *uuid.UUID {
	raw, _ := c.Get(CtxUserID).(string)
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}
