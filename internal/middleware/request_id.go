package middleware

import (
	"github.com/google/uuid"
	"github.com/grachmannico95/rent-recon/pkg/logger"
	"github.com/labstack/echo/v4"
)

const (
	HeaderTraceID   = "X-Trace-ID"
	HeaderRequestID = "X-Request-ID"
)

// RequestID puts a trace id on the request context, taken from X-Trace-ID or
// X-Request-ID when the caller sent one.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(HeaderTraceID)
			if traceID == "" {
				traceID = c.Request().Header.Get(HeaderRequestID)
			}
			if traceID == "" {
				traceID = uuid.New().String()
			}

			ctx := logger.WithTraceID(c.Request().Context(), traceID)
			c.SetRequest(c.Request().WithContext(ctx))

			c.Response().Header().Set(HeaderTraceID, traceID)

			return next(c)
		}
	}
}
