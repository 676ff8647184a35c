package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/clothing_store/internal/logging"
	"github.com/Skotchmaster/clothing_store/internal/middleware/auth"
	"github.com/Skotchmaster/clothing_store/internal/models"
	"github.com/Skotchmaster/clothing_store/internal/service"
	"github.com/Skotchmaster/clothing_store/internal/transport"
)

type OrdersHTTP struct {
	Svc *service.OrderService
}

func (h *OrdersHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "orders.create")

	order, err := h.Svc.CreateOrder(ctx, auth.UserID(c), sessionID(c))
	if err != nil {
		return fail(l, "create_order_error", err)
	}

	l.Info("create_order_success", "order_id", order.ID, "total", order.Totals.Total.String())
	return c.JSON(http.StatusCreated, transport.DataResponse[*models.Order]{Data: order})
}
