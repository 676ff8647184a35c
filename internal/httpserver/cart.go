package httpserver

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/clothing_store/internal/logging"
	"github.com/Skotchmaster/clothing_store/internal/middleware/auth"
	"github.com/Skotchmaster/clothing_store/internal/models"
	"github.com/Skotchmaster/clothing_store/internal/service"
	"github.com/Skotchmaster/clothing_store/internal/transport"
	"github.com/Skotchmaster/clothing_store/internal/validate"
)

const HeaderSessionID = transport.HeaderSessionID

func sessionID(c echo.Context) string {
	return strings.TrimSpace(c.Request().Header.Get(HeaderSessionID))
}

type CartHTTP struct {
	Svc *service.CartService
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get")

	cart, err := h.Svc.GetCart(ctx, auth.UserID(c), sessionID(c))
	if err != nil {
		return fail(l, "get_cart_error", err)
	}

	return c.JSON(http.StatusOK, transport.DataResponse[*models.Cart]{Data: cart})
}

func (h *CartHTTP) AddItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add_item")

	var req transport.AddCartItemRequest
	if err := bind(c, &req); err != nil {
		return fail(l, "add_cart_item_error", err)
	}

	in, err := validate.AddCartItem(req)
	if err != nil {
		return fail(l, "add_cart_item_error", err)
	}

	cart, err := h.Svc.AddItem(ctx, auth.UserID(c), sessionID(c), in)
	if err != nil {
		return fail(l, "add_cart_item_error", err)
	}

	return c.JSON(http.StatusOK, transport.DataResponse[*models.Cart]{Data: cart})
}
