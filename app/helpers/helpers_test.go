package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlug(t *testing.T) {
	assert.Equal(t, "singing-bowls", GenerateSlug("Singing Bowls"))
	assert.Equal(t, "thangka-art-2024", GenerateSlug("  Thangka Art (2024)! "))
	assert.Equal(t, "", GenerateSlug("***"))
}

func TestBearerToken(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	assert.Equal(t, "", BearerToken(req))

	req.Header.Set("Authorization", "Bearer abc123")
	assert.Equal(t, "abc123", BearerToken(req))

	req.Header.Set("Authorization", "Basic abc123")
	assert.Equal(t, "", BearerToken(req))
}

func TestFirstValidationError(t *testing.T) {
	type form struct {
		CustomerEmail string `validate:"required,email"`
		Message       string `validate:"required"`
	}

	validate := validator.New()

	err := validate.Struct(form{CustomerEmail: "not-an-email", Message: "hi"})
	require.Error(t, err)
	assert.Contains(t, FirstValidationError(err), "email")

	err = validate.Struct(form{CustomerEmail: "a@b.com"})
	require.Error(t, err)
	assert.Contains(t, FirstValidationError(err), "required")
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash := HashPassword("hunter2")
	require.NotEmpty(t, hash)

	assert.True(t, PasswordCompare(hash, []byte("hunter2")))
	assert.False(t, PasswordCompare(hash, []byte("wrong")))
}
