package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/clothing_store/internal/logging"
	"github.com/Skotchmaster/clothing_store/internal/query"
	"github.com/Skotchmaster/clothing_store/internal/service"
	"github.com/Skotchmaster/clothing_store/internal/transport"
	"github.com/Skotchmaster/clothing_store/internal/validate"
)

type GoodsHTTP struct {
	Svc *service.CatalogService
}

func (h *GoodsHTTP) ListGoods(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "goods.list")

	f, p, err := query.ParseGoods(c.QueryParams())
	if err != nil {
		return fail(l, "list_goods_error", err)
	}

	res, err := h.Svc.ListGoods(ctx, f, p)
	if err != nil {
		return fail(l, "list_goods_error", err)
	}

	return c.JSON(http.StatusOK, transport.GoodsPage{
		Page:       p.Page,
		PerPage:    p.PerPage,
		TotalGoods: res.Total,
		TotalPages: p.TotalPages(res.Total),
		Data:       res.Items,
	})
}

func (h *GoodsHTTP) GetGood(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "goods.get")

	id, err := validate.ID("goodId", c.Param("goodId"))
	if err != nil {
		return fail(l, "get_good_error", err)
	}

	good, err := h.Svc.GetGood(ctx, id)
	if err != nil {
		return fail(l, "get_good_error", err)
	}

	return c.JSON(http.StatusOK, good)
}

func (h *GoodsHTTP) CreateGood(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "goods.create")

	var req transport.CreateGoodRequest
	if err := bind(c, &req); err != nil {
		return fail(l, "create_good_error", err)
	}

	good, err := validate.CreateGood(req)
	if err != nil {
		return fail(l, "create_good_error", err)
	}

	created, err := h.Svc.CreateGood(ctx, good)
	if err != nil {
		return fail(l, "create_good_error", err)
	}

	l.Info("create_good_success", "good_id", created.ID)
	return c.JSON(http.StatusCreated, created)
}

func (h *GoodsHTTP) PatchGood(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "goods.patch")

	id, err := validate.ID("goodId", c.Param("goodId"))
	if err != nil {
		return fail(l, "patch_good_error", err)
	}

	var req transport.PatchGoodRequest
	if err := bind(c, &req); err != nil {
		return fail(l, "patch_good_error", err)
	}

	patch, err := validate.PatchGood(req)
	if err != nil {
		return fail(l, "patch_good_error", err)
	}

	updated, err := h.Svc.PatchGood(ctx, id, patch)
	if err != nil {
		return fail(l, "patch_good_error", err)
	}

	l.Info("patch_good_success", "good_id", updated.ID)
	return c.JSON(http.StatusOK, updated)
}
