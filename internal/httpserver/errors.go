package httpserver

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/clothing_store/internal/apperr"
	"github.com/Skotchmaster/clothing_store/internal/transport"
)

// ErrorHandler renders every error, including echo's own routing errors, as
// {status, message, details?}.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	resp := errorResponse(err)
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(resp.Status)
	} else {
		err = c.JSON(resp.Status, resp)
	}
	if err != nil {
		slog.Default().Error("error_response_failed", "error", err)
	}
}

func errorResponse(err error) transport.ErrorResponse {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg := http.StatusText(he.Code)
		if he.Message != nil {
			msg = fmt.Sprint(he.Message)
		}
		return transport.ErrorResponse{Status: he.Code, Message: msg}
	}

	ae := apperr.From(err)
	status := ae.Kind.Status()
	msg := ae.Message
	if status == http.StatusInternalServerError {
		msg = "Internal server error"
	}
	return transport.ErrorResponse{Status: status, Message: msg, Details: ae.Details}
}

// fail logs err at a level matching its status and hands it back for the error handler.
func fail(l *slog.Logger, event string, err error) error {
	status := errorResponse(err).Status
	if status >= http.StatusInternalServerError {
		l.Error(event, "status", status, "reason", apperr.From(err).Message, "error", err)
	} else {
		l.Warn(event, "status", status, "reason", apperr.From(err).Message, "error", err)
	}
	return err
}

func bind(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return apperr.Validation("Invalid request body", nil)
	}
	return nil
}
