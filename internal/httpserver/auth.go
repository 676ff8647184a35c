package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/clothing_store/internal/apperr"
	"github.com/Skotchmaster/clothing_store/internal/logging"
	"github.com/Skotchmaster/clothing_store/internal/middleware/auth"
	"github.com/Skotchmaster/clothing_store/internal/models"
	"github.com/Skotchmaster/clothing_store/internal/service"
	"github.com/Skotchmaster/clothing_store/internal/transport"
	"github.com/Skotchmaster/clothing_store/internal/validate"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req transport.RegisterRequest
	if err := bind(c, &req); err != nil {
		return fail(l, "register_error", err)
	}
	if err := validate.Register(req); err != nil {
		return fail(l, "register_error", err)
	}

	user, err := h.Svc.Register(ctx, req)
	if err != nil {
		return fail(l, "register_error", err)
	}

	l.Info("register_success", "user_id", user.ID)
	return c.JSON(http.StatusCreated, transport.DataResponse[*models.User]{Data: user})
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := bind(c, &req); err != nil {
		return fail(l, "login_error", err)
	}
	if err := validate.Login(req); err != nil {
		return fail(l, "login_error", err)
	}

	resp, err := h.Svc.Login(ctx, req)
	if err != nil {
		return fail(l, "login_error", err)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *AuthHTTP) Me(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "users.me")

	userID := auth.UserID(c)
	if userID == nil {
		return fail(l, "me_error", apperr.Unauthorized("missing access token"))
	}

	user, err := h.Svc.Me(ctx, *userID)
	if err != nil {
		return fail(l, "me_error", err)
	}

	return c.JSON(http.StatusOK, transport.DataResponse[*models.User]{Data: user})
}
