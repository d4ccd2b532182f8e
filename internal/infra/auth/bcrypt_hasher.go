// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"board/config"
	domainerrors "board/internal/domain/errors"
	"board/internal/domain/service"
)

const (
	defaultMinPasswordLength = 6
	// bcrypt ignores input beyond 72 bytes.
	bcryptMaxPasswordBytes = 72
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost      int
	minLength int
	maxLength int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// Cost and length policy come from the auth and passwordStrength config sections.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	minLength, maxLength := 0, 0
	if cfg.PasswordStrength != nil {
		minLength = cfg.PasswordStrength.MinLength
		maxLength = cfg.PasswordStrength.MaxLength
	}

	return NewBcryptHasherWithPolicy(cost, minLength, maxLength)
}

// NewBcryptHasherWithPolicy builds a hasher with an explicit cost and length bounds.
// Non-positive bounds fall back to the defaults.
func NewBcryptHasherWithPolicy(cost, minLength, maxLength int) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	if minLength <= 0 {
		minLength = defaultMinPasswordLength
	}
	if maxLength <= 0 || maxLength > bcryptMaxPasswordBytes {
		maxLength = bcryptMaxPasswordBytes
	}

	return &bcryptHasher{
		cost:      cost,
		minLength: minLength,
		maxLength: maxLength,
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if len(password) > bcryptMaxPasswordBytes {
		return "", domainerrors.ErrPasswordStrength.WithFields(map[string]string{
			"password": fmt.Sprintf("The password may not be greater than %d bytes.", bcryptMaxPasswordBytes),
		})
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength enforces the length policy. Length is counted in characters
// for the minimum and in bytes for the maximum.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if utf8.RuneCountInString(password) < h.minLength {
		return domainerrors.ErrPasswordStrength.WithFields(map[string]string{
			"password": fmt.Sprintf("The password must be at least %d characters.", h.minLength),
		})
	}

	if len(password) > h.maxLength {
		return domainerrors.ErrPasswordStrength.WithFields(map[string]string{
			"password": fmt.Sprintf("The password may not be greater than %d bytes.", h.maxLength),
		})
	}

	return nil
}
