package auth

import (
	"testing"

	"lumea/config"
	domainerrors "lumea/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strictStrengthConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4}, // low cost keeps tests fast
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			MaxLength:        72,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
		},
	}
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(strictStrengthConfig())

	password := "StrongPass123"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPassword123", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := NewBcryptHasher(strictStrengthConfig())

	weakPasswords := []string{
		"Ab1",         // too short
		"alllower1a",  // no uppercase
		"ALLUPPER1A",  // no lowercase
		"NoNumbersAa", // no digits
	}
	for _, weak := range weakPasswords {
		err := hasher.ValidatePasswordStrength(weak)
		assert.Error(t, err, "expected error for weak password: %s", weak)
		assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
	}

	assert.NoError(t, hasher.ValidatePasswordStrength("StrongPass123"))
}

func TestBcryptHasher_MinLengthOnlyByDefault(t *testing.T) {
	// Without a strength section only the length bounds apply.
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 4}})

	assert.Error(t, hasher.ValidatePasswordStrength("short"))
	assert.NoError(t, hasher.ValidatePasswordStrength("longenoughpassword"))
}
