// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"board/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// Upload is a file received from the client, already read into memory.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Email    string  `json:"email" validate:"required,email,max=255"`
	Name     string  `json:"name" validate:"required,notblank,max=255"`
	Password string  `json:"password" validate:"required"`
	Avatar   *Upload `json:"-"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserInput carries the profile fields to change. Nil fields are left untouched.
type UpdateUserInput struct {
	Name     *string `json:"name" validate:"omitempty,notblank,max=255"`
	Password *string `json:"password"`
	Avatar   *Upload `json:"-"`
}

// --- Output DTOs ---

// AuthOutput returns the issued token together with the non-sensitive user summary.
type AuthOutput struct {
	Token string
	User  *entity.UserSummary
}

// AuthUsecase defines the account operations exposed to the delivery layer.
// Every operation after login takes the caller's identity explicitly.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	Logout(ctx context.Context, identity *entity.Identity) error
	GetUserInfo(ctx context.Context, userID uuid.UUID) (*entity.UserSummary, error)
	UpdateUserInfo(ctx context.Context, userID uuid.UUID, input *UpdateUserInput) (*entity.UserSummary, error)
}
