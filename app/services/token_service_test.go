package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alok-CS-2022/import-export-site/app/models"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret")
	user := &models.User{ID: "u-1", Email: "owner@example.com", Role: models.RoleAdmin}

	token, err := svc.Generate(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.Subject)
	assert.Equal(t, "owner@example.com", claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a").Generate(&models.User{ID: "u-1"})
	require.NoError(t, err)

	_, err = NewTokenService("secret-b").Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	svc := NewTokenService("test-secret")

	claims := Claims{
		Email: "owner@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u-1",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-48 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := NewTokenService("test-secret").Parse("not-a-token")
	assert.Error(t, err)
}
