package repository

import (
	"context"
	"errors"
	"time"

	"board/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTokenNotFound is returned when no access token row matches.
var ErrTokenNotFound = errors.New("access token not found")

// TokenRepository persists issued access tokens so they can be revoked.
type TokenRepository interface {
	// Create stores a newly issued token.
	Create(ctx context.Context, token *entity.AccessToken) error

	// FindByID retrieves a token by its identifier (the JWT "jti").
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AccessToken, error)

	// Revoke marks one token as revoked at the given time. Revoking an already revoked token is a no-op.
	Revoke(ctx context.Context, id uuid.UUID, at time.Time) error
}
