package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"board/config"
	deliverycontext "board/internal/delivery/context"
	"board/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_PropagatesHeader(t *testing.T) {
	e := echo.New()
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	err := mw.Process(func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return nil
	})(c)
	require.NoError(t, err)

	assert.Equal(t, "req-123", seen)
	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_GeneratesWhenMissingOrTooLong(t *testing.T) {
	e := echo.New()
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	for _, header := range []string{"", strings.Repeat("x", maxRequestIDLength+1)} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set(deliverycontext.HeaderXRequestID, header)
		}
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, mw.Process(func(echo.Context) error { return nil })(c))

		_, err := uuid.Parse(rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.NoError(t, err)
	}
}

func TestLoggerMiddleware_LogsFailuresOutsideDebug(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, nil))
	mw := NewLoggerMiddleware(logger, &config.Config{})

	e := echo.New()

	okCtx := e.NewContext(httptest.NewRequest(http.MethodGet, "/ok", nil), httptest.NewRecorder())
	require.NoError(t, mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(okCtx))
	assert.Empty(t, buf.String())

	failCtx := e.NewContext(httptest.NewRequest(http.MethodGet, "/fail", nil), httptest.NewRecorder())
	identity := &entity.Identity{UserID: uuid.New(), TokenID: uuid.New()}
	deliverycontext.SetIdentity(failCtx, identity)
	require.NoError(t, mw.Handle(func(echo.Context) error { return echo.ErrNotFound })(failCtx))

	assert.Equal(t, http.StatusNotFound, failCtx.Response().Status)
	assert.Contains(t, buf.String(), "HTTP Request")
	assert.Contains(t, buf.String(), "status=404")
	assert.Contains(t, buf.String(), identity.UserID.String())
}

func TestLoggerMiddleware_LogsEverythingInDebug(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := &config.Config{}
	cfg.Env.Debug = true
	mw := NewLoggerMiddleware(slog.New(slog.NewTextHandler(buf, nil)), cfg)

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/ok?x=1", nil), httptest.NewRecorder())
	require.NoError(t, mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c))

	assert.Contains(t, buf.String(), "status=200")
	assert.Contains(t, buf.String(), `query="x=1"`)
}
