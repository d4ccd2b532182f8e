package service

import (
	"context"
	"time"

	"board/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by an access token.
// The registered "jti" claim holds the persisted token id and "sub" the user id.
type Claims struct {
	jwt.RegisteredClaims
}

// IssuedToken is a freshly minted bearer token.
type IssuedToken struct {
	ID       uuid.UUID
	Token    string
	IssuedAt time.Time
}

// TokenService issues, resolves and revokes opaque bearer tokens.
// Every issued token is backed by a persisted record so it can be revoked individually.
type TokenService interface {
	// Issue creates a new token for the user. Each call yields a distinct token.
	Issue(ctx context.Context, userID uuid.UUID) (*IssuedToken, error)

	// Resolve maps a presented token to the identity it was issued for.
	// Unknown, malformed or revoked tokens are rejected.
	Resolve(ctx context.Context, raw string) (*entity.Identity, error)

	// Revoke invalidates exactly one token. Revoking twice is not an error.
	Revoke(ctx context.Context, tokenID uuid.UUID) error
}
