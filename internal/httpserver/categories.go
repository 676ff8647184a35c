package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/clothing_store/internal/logging"
	"github.com/Skotchmaster/clothing_store/internal/query"
	"github.com/Skotchmaster/clothing_store/internal/service"
	"github.com/Skotchmaster/clothing_store/internal/transport"
)

type CategoriesHTTP struct {
	Svc *service.CategoryService
}

func (h *CategoriesHTTP) ListCategories(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "categories.list")

	p := query.ParsePage(c.QueryParams(), query.CategoriesPolicy)

	facet, err := h.Svc.ListCategories(ctx, p)
	if err != nil {
		return fail(l, "list_categories_error", err)
	}

	return c.JSON(http.StatusOK, transport.CategoriesPage{
		Page:       p.Page,
		PerPage:    p.PerPage,
		Total:      facet.Total,
		TotalPages: p.TotalPages(facet.Total),
		Data:       facet.Data,
	})
}
