package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mw "autoprofit/internal/api/middleware"
)

func newTestContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, http.NoBody)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestRecovery_NoPanic(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	c, rec := newTestContext(http.MethodGet, "/api/v1/listings")
	handler := mw.Recovery(log)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, buf.String())
}

func TestRecovery_PanicString(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	c, rec := newTestContext(http.MethodPost, "/api/v1/rescore")
	handler := mw.Recovery(log)(func(echo.Context) error {
		panic("scorer config snapshot missing")
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal server error")

	out := buf.String()
	assert.Contains(t, out, "handler panicked")
	assert.Contains(t, out, "scorer config snapshot missing")
	assert.Contains(t, out, "path=/api/v1/rescore")
}

func TestRecovery_PanicValue(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	c, rec := newTestContext(http.MethodPost, "/api/v1/ingest")
	handler := mw.Recovery(log)(func(echo.Context) error {
		panic(42)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	out := buf.String()
	assert.Contains(t, out, "panic=42")
	assert.Contains(t, out, "method=POST")
}

func TestRecovery_LogsRequestID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	c, _ := newTestContext(http.MethodGet, "/api/v1/matches")
	c.Set("request_id", "req-abc-123")
	handler := mw.Recovery(log)(func(echo.Context) error {
		panic("boom")
	})

	require.NoError(t, handler(c))
	assert.Contains(t, buf.String(), "request_id=req-abc-123")
}
