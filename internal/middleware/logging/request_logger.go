package loggingmw

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/clothing_store/internal/logging"
	"github.com/Skotchmaster/clothing_store/internal/middleware/auth"
	"github.com/Skotchmaster/clothing_store/internal/transport"
)

// RequestLogger puts a request-scoped logger into the request context and writes
// one "request completed" line per request. Handler errors are rendered here so
// the logged status is the one the client saw.
func RequestLogger(base *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			rid := req.Header.Get(echo.HeaderXRequestID)
			if rid == "" {
				rid = c.Response().Header().Get(echo.HeaderXRequestID)
			}

			l := base.With(
				"method", req.Method,
				"route", c.Path(),
				"url", req.URL.Path,
				"remote_ip", c.RealIP(),
			)
			if rid != "" {
				l = l.With("request_id", rid)
				c.Response().Header().Set(echo.HeaderXRequestID, rid)
			}
			if sid := req.Header.Get(transport.HeaderSessionID); sid != "" {
				l = l.With("session_id", sid)
			}

			c.SetRequest(req.WithContext(logging.IntoContext(req.Context(), l)))

			start := time.Now()
			err := next(c)
			dur := time.Since(start)

			if err != nil {
				c.Echo().HTTPErrorHandler(err, c)
			}

			// Identity is only known once route-level auth has run.
			if uid, _ := c.Get(auth.CtxUserID).(string); uid != "" {
				l = l.With("user_id", uid, "role", c.Get(auth.CtxRole))
			}

			status := c.Response().Status
			attrs := []any{"status", status, "duration_ms", dur.Milliseconds(), "bytes_out", c.Response().Size}
			switch {
			case status >= 500:
				l.Error("request completed", append(attrs, "error", errStr(err))...)
			case status >= 400:
				l.Warn("request completed", append(attrs, "error", errStr(err))...)
			default:
				l.Info("request completed", attrs...)
			}
			return nil
		}
	}
}

func errStr(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
