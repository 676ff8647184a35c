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

type FeedbacksHTTP struct {
	Svc *service.FeedbackService
}

func (h *FeedbacksHTTP) ListFeedbacks(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "feedbacks.list")

	f, p, err := query.ParseFeedbacks(c.QueryParams())
	if err != nil {
		return fail(l, "list_feedbacks_error", err)
	}

	res, err := h.Svc.ListFeedbacks(ctx, f, p)
	if err != nil {
		return fail(l, "list_feedbacks_error", err)
	}

	return c.JSON(http.StatusOK, transport.FeedbacksPage{
		Page:           p.Page,
		PerPage:        p.PerPage,
		TotalFeedbacks: res.Total,
		TotalPages:     p.TotalPages(res.Total),
		Feedbacks:      res.Items,
	})
}

func (h *FeedbacksHTTP) CreateFeedback(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "feedbacks.create")

	var req transport.CreateFeedbackRequest
	if err := bind(c, &req); err != nil {
		return fail(l, "create_feedback_error", err)
	}

	fb, err := validate.CreateFeedback(req)
	if err != nil {
		return fail(l, "create_feedback_error", err)
	}

	created, err := h.Svc.CreateFeedback(ctx, fb)
	if err != nil {
		return fail(l, "create_feedback_error", err)
	}

	l.Info("create_feedback_success", "feedback_id", created.ID, "product_id", created.ProductID)
	return c.JSON(http.StatusCreated, created)
}
