package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "board/internal/delivery/context"
	"board/internal/domain/entity"
	domainerrors "board/internal/domain/errors"
	mockUsecase "board/internal/mocks/usecase"
	"board/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newJSONRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

// newMultipartRequest builds a multipart body with the given fields and an optional avatar_img file.
func newMultipartRequest(t *testing.T, method, target string, fields map[string]string, fileName string, file []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	if fileName != "" {
		part, err := writer.CreateFormFile("avatar_img", fileName)
		require.NoError(t, err)
		_, err = part.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, target, &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	return req
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestAuthHandler_Register_JSON(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()})

	userID := uuid.New()
	authUC.EXPECT().Register(mock.Anything, &usecase.RegisterInput{
		Email:    "a@x.com",
		Name:     "A",
		Password: "secret",
	}).Return(&usecase.AuthOutput{
		Token: "signed-token",
		User:  &entity.UserSummary{ID: userID, Email: "a@x.com", Name: "A"},
	}, nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(newJSONRequest(http.MethodPost, "/api/v1/auth/register", `{"email":"a@x.com","name":"A","password":"secret"}`), rec)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	data := body["data"].(map[string]any)
	assert.Equal(t, "signed-token", data["token"])
	user := data["user"].(map[string]any)
	assert.Equal(t, userID.String(), user["id"])
	assert.Equal(t, "", user["avatar_img"])
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "password_hash")
}

func TestAuthHandler_Register_MultipartWithAvatar(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()})

	avatar := []byte("\x89PNG\r\n\x1a\nrest-of-image")
	authUC.EXPECT().Register(mock.Anything, mock.MatchedBy(func(in *usecase.RegisterInput) bool {
		return in.Email == "a@x.com" && in.Name == "A" && in.Password == "secret" &&
			in.Avatar != nil && in.Avatar.Filename == "me.png" && bytes.Equal(in.Avatar.Data, avatar)
	})).Return(&usecase.AuthOutput{
		Token: "signed-token",
		User:  &entity.UserSummary{ID: uuid.New(), Email: "a@x.com", Name: "A", AvatarURL: "user_avatar/1me.png"},
	}, nil)

	req := newMultipartRequest(t, http.MethodPost, "/api/v1/auth/register",
		map[string]string{"email": "a@x.com", "name": "A", "password": "secret"}, "me.png", avatar)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAuthHandler_Register_MalformedBody(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()})

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(newJSONRequest(http.MethodPost, "/api/v1/auth/register", `{"email":`), rec)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, domainerrors.ErrInvalidInput.ErrorCode(), body["error"].(map[string]any)["code"])
}

func TestAuthHandler_Login_MalformedBodyIsLogged(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	h := NewAuthHandler(AuthHandlerParams{AuthUC: mockUsecase.NewMockAuthUsecase(t), Logger: logger})

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(newJSONRequest(http.MethodPost, "/api/v1/auth/login", `[`), rec)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, buf.String(), "Invalid login input")
	assert.Contains(t, buf.String(), "level=DEBUG")
}

func TestAuthHandler_Login_PropagatesError(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()})

	authUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "a@x.com", Password: "nope"}).
		Return(nil, domainerrors.ErrInvalidCredentials)

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(newJSONRequest(http.MethodPost, "/api/v1/auth/login", `{"email":"a@x.com","password":"nope"}`), rec)

	err := h.Login(c)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthHandler_Logout(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()})

	identity := &entity.Identity{UserID: uuid.New(), TokenID: uuid.New()}
	authUC.EXPECT().Logout(mock.Anything, identity).Return(nil)

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil), rec)
	deliverycontext.SetIdentity(c, identity)

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_RequiresIdentity(t *testing.T) {
	h := NewAuthHandler(AuthHandlerParams{AuthUC: mockUsecase.NewMockAuthUsecase(t), Logger: newDiscardLogger()})

	for name, call := range map[string]echo.HandlerFunc{
		"logout":           h.Logout,
		"get user info":    h.GetUserInfo,
		"update user info": h.UpdateUserInfo,
	} {
		t.Run(name, func(t *testing.T) {
			c := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())

			assert.ErrorIs(t, call(c), domainerrors.ErrUnauthorized)
		})
	}
}

func TestAuthHandler_GetUserInfo(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()})

	identity := &entity.Identity{UserID: uuid.New(), TokenID: uuid.New()}
	authUC.EXPECT().GetUserInfo(mock.Anything, identity.UserID).
		Return(&entity.UserSummary{ID: identity.UserID, Email: "a@x.com", Name: "A"}, nil)

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/user_information", nil), rec)
	deliverycontext.SetIdentity(c, identity)

	require.NoError(t, h.GetUserInfo(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a@x.com", decodeBody(t, rec)["data"].(map[string]any)["email"])
}

func TestAuthHandler_UpdateUserInfo_JSONKeepsAbsentFieldsNil(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()})

	identity := &entity.Identity{UserID: uuid.New(), TokenID: uuid.New()}
	authUC.EXPECT().UpdateUserInfo(mock.Anything, identity.UserID, mock.MatchedBy(func(in *usecase.UpdateUserInput) bool {
		return in.Name != nil && *in.Name == "Renamed" && in.Password == nil && in.Avatar == nil
	})).Return(&entity.UserSummary{ID: identity.UserID, Name: "Renamed"}, nil)

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(newJSONRequest(http.MethodPost, "/api/v1/user_information", `{"name":"Renamed"}`), rec)
	deliverycontext.SetIdentity(c, identity)

	require.NoError(t, h.UpdateUserInfo(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_UpdateUserInfo_Multipart(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()})

	identity := &entity.Identity{UserID: uuid.New(), TokenID: uuid.New()}
	authUC.EXPECT().UpdateUserInfo(mock.Anything, identity.UserID, mock.MatchedBy(func(in *usecase.UpdateUserInput) bool {
		return in.Name == nil && in.Password != nil && *in.Password == "another-secret" &&
			in.Avatar != nil && in.Avatar.Filename == "new.png"
	})).Return(&entity.UserSummary{ID: identity.UserID, AvatarURL: "user_avatar/2new.png"}, nil)

	req := newMultipartRequest(t, http.MethodPost, "/api/v1/user_information",
		map[string]string{"password": "another-secret"}, "new.png", []byte("\x89PNG\r\n\x1a\n"))
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	deliverycontext.SetIdentity(c, identity)

	require.NoError(t, h.UpdateUserInfo(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
