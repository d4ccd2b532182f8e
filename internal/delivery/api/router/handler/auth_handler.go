package handler

import (
	"log/slog"
	"net/http"

	"board/internal/delivery/api/response"
	"board/internal/domain/entity"
	"board/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const avatarFormField = "avatar_img"

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves the account endpoints.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

type registerRequest struct {
	Email    string `json:"email" form:"email"`
	Name     string `json:"name" form:"name"`
	Password string `json:"password" form:"password"`
}

type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

type authResponse struct {
	Token string              `json:"token"`
	User  *entity.UserSummary `json:"user"`
}

// Register handles sign-up. Accepts JSON or multipart form data with an optional avatar_img file.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return invalidInput(c, h.logger, err, "Invalid registration input")
	}

	avatar, err := readUpload(c, avatarFormField)
	if err != nil {
		return invalidInput(c, h.logger, err, "Invalid avatar upload")
	}

	output, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Avatar:   avatar,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusCreated, &authResponse{
		Token: output.Token,
		User:  output.User,
	}, "User registered successfully")
}

// Login handles the email and password sign-in.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return invalidInput(c, h.logger, err, "Invalid login input")
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, &authResponse{
		Token: output.Token,
		User:  output.User,
	}, "Login successful")
}

// Logout revokes the token used for this request.
func (h *AuthHandler) Logout(c echo.Context) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}

	if err := h.authUC.Logout(c.Request().Context(), identity); err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// GetUserInfo returns the caller's profile.
func (h *AuthHandler) GetUserInfo(c echo.Context) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}

	user, err := h.authUC.GetUserInfo(c.Request().Context(), identity.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user)
}

// UpdateUserInfo changes the supplied profile fields. Omitted fields keep their values.
func (h *AuthHandler) UpdateUserInfo(c echo.Context) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}

	req, err := bindUpdateUserRequest(c)
	if err != nil {
		return invalidInput(c, h.logger, err, "Invalid user information input")
	}

	avatar, err := readUpload(c, avatarFormField)
	if err != nil {
		return invalidInput(c, h.logger, err, "Invalid avatar upload")
	}

	user, err := h.authUC.UpdateUserInfo(c.Request().Context(), identity.UserID, &usecase.UpdateUserInput{
		Name:     req.Name,
		Password: req.Password,
		Avatar:   avatar,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, user, "User information updated")
}

// bindUpdateUserRequest keeps absent fields nil so they are left unchanged.
// Multipart forms are read field by field since a present but empty value must stay distinguishable.
func bindUpdateUserRequest(c echo.Context) (*updateUserRequest, error) {
	req := &updateUserRequest{}
	if !isMultipart(c) {
		if err := c.Bind(req); err != nil {
			return nil, errors.WithStack(err)
		}

		return req, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse multipart form")
	}
	if values, ok := form.Value["name"]; ok && len(values) > 0 {
		req.Name = &values[0]
	}
	if values, ok := form.Value["password"]; ok && len(values) > 0 {
		req.Password = &values[0]
	}

	return req, nil
}
