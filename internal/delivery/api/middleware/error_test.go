package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"board/internal/delivery/api/response"
	domainerrors "board/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, response.ErrorResponse) {
	t.Helper()

	mw := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	mw.HandleHTTPError(err, c)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestErrorMiddleware_ValidationErrorKeepsFields(t *testing.T) {
	err := errors.Wrap(domainerrors.ErrValidationFailed.WithFields(map[string]string{
		"email": "The email field is required.",
	}), "register")

	rec, body := handleError(t, err)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Equal(t, map[string]any{"email": "The email field is required."}, body.Error.Details)
	assert.NotEmpty(t, body.Meta.RequestID)
}

func TestErrorMiddleware_UnauthorizedHidesDetails(t *testing.T) {
	rec, body := handleError(t, domainerrors.ErrInvalidCredentials.WithDetails("user not found"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", body.Error.Code)
	assert.Nil(t, body.Error.Details)
}

func TestErrorMiddleware_DatabaseErrorIsGeneric(t *testing.T) {
	rec, body := handleError(t, domainerrors.NewDatabaseExecuteError(errors.New("pq: relation missing"), "insert"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", body.Error.Code)
	assert.Nil(t, body.Error.Details)
	assert.NotContains(t, rec.Body.String(), "relation missing")
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	rec, body := handleError(t, echo.NewHTTPError(http.StatusRequestEntityTooLarge))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "PAYLOAD_TOO_LARGE", body.Error.Code)
}

func TestErrorMiddleware_UnknownError(t *testing.T) {
	rec, body := handleError(t, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
}
