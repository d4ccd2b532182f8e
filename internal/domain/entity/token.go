package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccessToken is the persisted side of an issued bearer token.
// The bearer string itself is never stored, only its SHA-256 hash.
type AccessToken struct {
	ID        uuid.UUID  // Token identifier, also carried as the JWT "jti" claim.
	UserID    uuid.UUID  // Owner of the token.
	TokenHash string     // Hex-encoded SHA-256 of the signed token.
	IssuedAt  time.Time  // Moment the token was issued.
	RevokedAt *time.Time // Set once the token is revoked. A revoked token never authenticates again.
}

// Revoked reports whether the token has been revoked.
func (t *AccessToken) Revoked() bool {
	return t.RevokedAt != nil
}

// Identity is the authenticated caller resolved from a bearer token.
type Identity struct {
	UserID  uuid.UUID
	TokenID uuid.UUID
}
