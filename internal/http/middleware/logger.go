package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
)

// Logger logs each HTTP request as one JSON line and exposes a request-scoped
// logger to handlers through zerolog.Ctx(c.UserContext()).
//
// Fields: request_id, trace_id (when a span is active), method, path, status,
// latency (milliseconds, float). The ts field comes from base. 5xx logs at
// error, 4xx at warn.
func Logger(base zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		reqLog := base.With().Str("request_id", RequestIDFromCtx(c)).Logger()
		if sc := trace.SpanContextFromContext(c.UserContext()); sc.HasTraceID() {
			reqLog = reqLog.With().Str("trace_id", sc.TraceID().String()).Logger()
		}
		c.SetUserContext(reqLog.WithContext(c.UserContext()))

		err := c.Next()

		status := c.Response().StatusCode()
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}

		var e *zerolog.Event
		switch {
		case status >= fiber.StatusInternalServerError:
			e = reqLog.Error().Err(err)
		case status >= fiber.StatusBadRequest:
			e = reqLog.Warn()
		default:
			e = reqLog.Info()
		}

		e.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Float64("latency", float64(time.Since(start).Microseconds())/1000).
			Msg("http_request")

		return err
	}
}
