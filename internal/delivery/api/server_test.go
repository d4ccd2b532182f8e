package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"board/config"
	apimiddleware "board/internal/delivery/api/middleware"
	"board/internal/delivery/api/router"
	"board/internal/delivery/api/router/handler"
	deliverycontext "board/internal/delivery/context"
	"board/internal/domain/entity"
	domainerrors "board/internal/domain/errors"
	"board/internal/infra/validation"
	mockService "board/internal/mocks/service"
	mockUsecase "board/internal/mocks/usecase"
	"board/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverFixtures struct {
	echo      *echo.Echo
	tokens    *mockService.MockTokenService
	authUC    *mockUsecase.MockAuthUsecase
	commentUC *mockUsecase.MockCommentUsecase
}

func createTestServer(t *testing.T) serverFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fx := serverFixtures{
		tokens:    mockService.NewMockTokenService(t),
		authUC:    mockUsecase.NewMockAuthUsecase(t),
		commentUC: mockUsecase.NewMockCommentUsecase(t),
	}

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	validator, err := validation.New()
	require.NoError(t, err)

	fx.echo = newEcho(cfg, logger, validator, router.RouterParams{
		AuthHandler:    handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: fx.authUC, Logger: logger}),
		CommentHandler: handler.NewCommentHandler(handler.CommentHandlerParams{CommentUC: fx.commentUC, Logger: logger}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(fx.tokens),
	})

	return fx
}

func (fx serverFixtures) do(method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func TestServer_HealthCheck(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
	assert.Equal(t, rec.Header().Get(deliverycontext.HeaderXRequestID), env.Meta.RequestID)
}

func TestServer_UnknownRoute(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(http.MethodGet, "/nothing-here", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decode(t, rec).Error.Code)
}

func TestServer_ProtectedRoutesRequireToken(t *testing.T) {
	routes := []struct {
		method string
		target string
	}{
		{http.MethodPost, "/api/v1/auth/logout"},
		{http.MethodGet, "/api/v1/user_information"},
		{http.MethodPost, "/api/v1/user_information"},
		{http.MethodGet, "/api/v1/comments/1"},
		{http.MethodPost, "/api/v1/comments/1"},
		{http.MethodPost, "/api/v1/comments/1/replies"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.target, func(t *testing.T) {
			fx := createTestServer(t)

			rec := fx.do(route.method, route.target, "", "")

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			env := decode(t, rec)
			assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
			assert.Nil(t, env.Error.Details)
		})
	}
}

func TestServer_RevokedTokenRejected(t *testing.T) {
	fx := createTestServer(t)
	fx.tokens.EXPECT().Resolve(mock.Anything, "revoked-token").Return(nil, domainerrors.ErrTokenRevoked)

	rec := fx.do(http.MethodGet, "/api/v1/user_information", "revoked-token", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "TOKEN_REVOKED", decode(t, rec).Error.Code)
}

func TestServer_RegisterValidationError(t *testing.T) {
	fx := createTestServer(t)
	fx.authUC.EXPECT().Register(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrUserAlreadyExists.WithFields(map[string]string{"email": "The email has already been taken."}))

	rec := fx.do(http.MethodPost, "/api/v1/auth/register", "", `{"email":"a@x.com","name":"A","password":"secret"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "USER_ALREADY_EXISTS", env.Error.Code)
	assert.Equal(t, "The email has already been taken.", env.Error.Details["email"])
}

func TestServer_ReplyRouteResolvesCommentID(t *testing.T) {
	fx := createTestServer(t)

	identity := &entity.Identity{UserID: uuid.New(), TokenID: uuid.New()}
	parentID := int64(5)
	fx.tokens.EXPECT().Resolve(mock.Anything, "good-token").Return(identity, nil)
	fx.commentUC.EXPECT().CreateReply(mock.Anything, &usecase.CreateReplyInput{
		ParentID: 5,
		AuthorID: identity.UserID,
		Body:     "yo",
	}).Return(&entity.Comment{ID: 6, TaskID: 1, UserID: identity.UserID, Body: "yo", Depth: entity.DepthReply, ParentID: &parentID}, nil)

	rec := fx.do(http.MethodPost, "/api/v1/comments/5/replies", "good-token", `{"comment":"yo"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestServer_CommentsRouteResolvesTaskID(t *testing.T) {
	fx := createTestServer(t)

	identity := &entity.Identity{UserID: uuid.New(), TokenID: uuid.New()}
	fx.tokens.EXPECT().Resolve(mock.Anything, "good-token").Return(identity, nil)
	fx.commentUC.EXPECT().ListComments(mock.Anything, int64(42)).Return([]*entity.Comment{}, nil)

	rec := fx.do(http.MethodGet, "/api/v1/comments/42", "good-token", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(decode(t, rec).Data))
}

func TestServer_InternalErrorsAreNotLeaked(t *testing.T) {
	fx := createTestServer(t)

	identity := &entity.Identity{UserID: uuid.New(), TokenID: uuid.New()}
	fx.tokens.EXPECT().Resolve(mock.Anything, "good-token").Return(identity, nil)
	fx.authUC.EXPECT().GetUserInfo(mock.Anything, identity.UserID).
		Return(nil, domainerrors.NewDatabaseExecuteError(io.ErrUnexpectedEOF, "select users"))

	rec := fx.do(http.MethodGet, "/api/v1/user_information", "good-token", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", env.Error.Code)
	assert.Nil(t, env.Error.Details)
	assert.NotContains(t, rec.Body.String(), "unexpected EOF")
}
