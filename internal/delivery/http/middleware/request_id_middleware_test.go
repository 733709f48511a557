package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	delctx "smachna/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID_PropagatesInboundHeader(t *testing.T) {
	e := echo.New()
	e.Use(RequestID(slog.New(slog.NewTextHandler(io.Discard, nil))))

	var seen string
	e.GET("/", func(c echo.Context) error {
		seen = delctx.GetRequestIDFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(delctx.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", seen)
	assert.Equal(t, "req-123", rec.Header().Get(delctx.HeaderXRequestID))
}

func TestRequestID_GeneratesWhenAbsent(t *testing.T) {
	e := echo.New()
	e.Use(RequestID(slog.New(slog.NewTextHandler(io.Discard, nil))))
	e.GET("/", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, rec.Header().Get(delctx.HeaderXRequestID))
}

func TestHandleHTTPError_InternalErrorCarriesRequestID(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Use(RequestID(logger))
	e.HTTPErrorHandler = NewErrorMiddleware(logger).HandleHTTPError
	e.GET("/boom", func(c echo.Context) error {
		return errors.New("connection reset")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set(delctx.HeaderXRequestID, "req-500")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"INTERNAL_ERROR"`)
	assert.Contains(t, rec.Body.String(), `"req-500"`)
}
