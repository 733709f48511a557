package middleware

import (
	"log/slog"

	delctx "smachna/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestID assigns each request an ID, honoring an inbound X-Request-Id header,
// and propagates it through both the echo context and the request context. A
// request-scoped logger carrying the ID is stored alongside for downstream use.
func RequestID(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(delctx.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			delctx.SetRequestID(c, requestID)
			c.Response().Header().Set(delctx.HeaderXRequestID, requestID)

			ctx := delctx.WithRequestID(c.Request().Context(), requestID)
			ctx = delctx.WithLogger(ctx, logger.With(slog.String("requestID", requestID)))
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
