// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can sign in, comment on tasks and maintain a profile.
type User struct {
	ID           uuid.UUID // Stable identifier generated at registration.
	Email        string    // Login identifier, unique and case-sensitive as stored.
	Name         string    // Display name shown next to comments.
	PasswordHash string    // One-way hash of the password. Never serialized.
	AvatarURL    string    // Reference returned by the blob store, empty when no avatar was uploaded.
	CreatedAt    time.Time // Timestamp of registration.
	UpdatedAt    time.Time // Timestamp of the last profile change.
}

// UserSummary is the non-sensitive projection of a User that leaves the service boundary.
type UserSummary struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatar_img"`
}

// Summary strips credentials from the user.
func (u *User) Summary() *UserSummary {
	if u == nil {
		return nil
	}

	return &UserSummary{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
	}
}
