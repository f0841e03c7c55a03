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

func TestRequestLog(t *testing.T) {
	t.Parallel()

	t.Run("generates request id and logs fields", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		c, rec := newTestContext(http.MethodGet, "/api/v1/listings")
		handler := mw.RequestLog(log)(func(c echo.Context) error {
			return c.JSON(http.StatusOK, map[string]string{"ok": "true"})
		})

		require.NoError(t, handler(c))

		reqID := rec.Header().Get("X-Request-ID")
		assert.NotEmpty(t, reqID)
		assert.Equal(t, reqID, c.Get("request_id"))

		out := buf.String()
		assert.Contains(t, out, "method=GET")
		assert.Contains(t, out, "path=/api/v1/listings")
		assert.Contains(t, out, "status=200")
		assert.Contains(t, out, "request_id="+reqID)
	})

	t.Run("propagates provided request id", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/ingest", http.NoBody)
		req.Header.Set("X-Request-ID", "custom-req-id-123")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := mw.RequestLog(log)(func(c echo.Context) error {
			return c.NoContent(http.StatusAccepted)
		})

		require.NoError(t, handler(c))

		assert.Equal(t, "custom-req-id-123", rec.Header().Get("X-Request-ID"))
		assert.Equal(t, "custom-req-id-123", c.Get("request_id"))

		out := buf.String()
		assert.Contains(t, out, "request_id=custom-req-id-123")
		assert.Contains(t, out, "status=202")
	})
}

func TestRequestLog_HealthzRepeatSuccessSuppressed(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	reqlog := mw.RequestLog(log)

	ok := func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}

	c, _ := newTestContext(http.MethodGet, "/healthz")
	require.NoError(t, reqlog(ok)(c))
	first := buf.Len()
	assert.Positive(t, first)
	assert.Contains(t, buf.String(), "path=/healthz")

	c, _ = newTestContext(http.MethodGet, "/healthz")
	require.NoError(t, reqlog(ok)(c))
	assert.Equal(t, first, buf.Len())
}

func TestRequestLog_HealthzFailureAlwaysLogged(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	reqlog := mw.RequestLog(log)

	fail := func(c echo.Context) error {
		return c.JSON(
			http.StatusServiceUnavailable,
			map[string]string{"status": "unavailable"},
		)
	}

	c, _ := newTestContext(http.MethodGet, "/healthz")
	require.NoError(t, reqlog(fail)(c))
	first := buf.Len()
	assert.Positive(t, first)

	c, _ = newTestContext(http.MethodGet, "/healthz")
	require.NoError(t, reqlog(fail)(c))
	assert.Greater(t, buf.Len(), first)

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "status=503")
}

func TestRequestLog_ReadyzSuccessAfterFailureLogged(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	reqlog := mw.RequestLog(log)

	ok := func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
	}
	fail := func(c echo.Context) error {
		return c.JSON(
			http.StatusServiceUnavailable,
			map[string]string{"status": "unavailable"},
		)
	}

	c, _ := newTestContext(http.MethodGet, "/readyz")
	require.NoError(t, reqlog(ok)(c))
	afterFirst := buf.Len()
	assert.Positive(t, afterFirst)

	c, _ = newTestContext(http.MethodGet, "/readyz")
	require.NoError(t, reqlog(ok)(c))
	assert.Equal(t, afterFirst, buf.Len())

	c, _ = newTestContext(http.MethodGet, "/readyz")
	require.NoError(t, reqlog(fail)(c))
	afterFailure := buf.Len()
	assert.Greater(t, afterFailure, afterFirst)
	assert.Contains(t, buf.String(), "level=WARN")

	c, _ = newTestContext(http.MethodGet, "/readyz")
	require.NoError(t, reqlog(ok)(c))
	assert.Greater(t, buf.Len(), afterFailure)
}

func TestRequestLog_OtherPathsAlwaysLogged(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	reqlog := mw.RequestLog(log)

	ok := func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"ok": "true"})
	}

	c, _ := newTestContext(http.MethodGet, "/api/v1/matches")
	require.NoError(t, reqlog(ok)(c))
	first := buf.Len()
	assert.Positive(t, first)

	c, _ = newTestContext(http.MethodGet, "/api/v1/matches")
	require.NoError(t, reqlog(ok)(c))
	assert.Greater(t, buf.Len(), first)
}
