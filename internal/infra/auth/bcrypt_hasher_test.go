package auth

import (
	"strings"
	"testing"

	"board/config"
	domainerrors "board/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher() *bcryptHasher {
	return NewBcryptHasherWithPolicy(bcrypt.MinCost, 6, 72).(*bcryptHasher)
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newTestHasher()

	password := "secret1"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := newTestHasher()

	first, err := hasher.Hash("secret1")
	require.NoError(t, err)
	second, err := hasher.Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_HashRejectsOverlongInput(t *testing.T) {
	hasher := newTestHasher()

	_, err := hasher.Hash(strings.Repeat("a", 73))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newTestHasher()
	password := "secret1"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("secret2", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := newTestHasher()

	testCases := []struct {
		name     string
		password string
		wantErr  bool
		contains string
	}{
		{name: "exactly minimum", password: "abcdef"},
		{name: "long password", password: "a much longer passphrase"},
		{name: "multibyte characters counted as runes", password: "päßwör"},
		{name: "too short", password: "abcde", wantErr: true, contains: "at least 6 characters"},
		{name: "empty", password: "", wantErr: true, contains: "at least 6 characters"},
		{name: "too long", password: strings.Repeat("x", 73), wantErr: true, contains: "greater than 72 bytes"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tc.password)
			if !tc.wantErr {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))

			var appErr *domainerrors.BaseError
			require.True(t, errors.As(err, &appErr))
			assert.Contains(t, appErr.Details().(map[string]string)["password"], tc.contains)
		})
	}
}

func TestNewBcryptHasher_FromConfig(t *testing.T) {
	cfg := &config.Config{
		Auth:             &config.AuthConfig{BcryptCost: 5},
		PasswordStrength: &config.PasswordStrengthConfig{MinLength: 8, MaxLength: 200},
	}

	hasher := NewBcryptHasher(cfg).(*bcryptHasher)
	assert.Equal(t, 5, hasher.cost)
	assert.Equal(t, 8, hasher.minLength)
	assert.Equal(t, bcryptMaxPasswordBytes, hasher.maxLength)

	hash, err := hasher.Hash("password1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}

func TestNewBcryptHasher_Defaults(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{}).(*bcryptHasher)

	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
	assert.Equal(t, defaultMinPasswordLength, hasher.minLength)
	assert.Equal(t, bcryptMaxPasswordBytes, hasher.maxLength)
}
