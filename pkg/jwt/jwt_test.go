package jwt

import (
	"testing"
	"time"

	"gdm-clinic/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newService(accessExpiry time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "unit-test-secret",
		AccessExpiry:  accessExpiry,
		RefreshExpiry: 24 * time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	s := newService(time.Hour)
	userID := uuid.New()

	token, tokenID, err := s.GenerateAccessToken(userID, "nurse1", "nurse")
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenID)

	claims, err := s.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "nurse1", claims.Username)
	assert.Equal(t, "nurse", claims.Role)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestRefreshTokenType(t *testing.T) {
	s := newService(time.Hour)

	token, _, err := s.GenerateRefreshToken(uuid.New(), "nurse1", "nurse")
	assert.NoError(t, err)

	claims, err := s.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, RefreshToken, claims.TokenType)
}

func TestExpiredTokenRejected(t *testing.T) {
	s := newService(-time.Minute)

	token, _, err := s.GenerateAccessToken(uuid.New(), "nurse1", "nurse")
	assert.NoError(t, err)

	_, err = s.ValidateToken(token)
	assert.Error(t, err)
}

func TestWrongSecretRejected(t *testing.T) {
	s := newService(time.Hour)
	token, _, err := s.GenerateAccessToken(uuid.New(), "nurse1", "nurse")
	assert.NoError(t, err)

	other := NewJWTService(config.JWTConfig{Secret: "different-secret", AccessExpiry: time.Hour})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenIDsAreUnique(t *testing.T) {
	s := newService(time.Hour)
	userID := uuid.New()

	_, firstID, err := s.GenerateAccessToken(userID, "nurse1", "nurse")
	assert.NoError(t, err)
	_, secondID, err := s.GenerateAccessToken(userID, "nurse1", "nurse")
	assert.NoError(t, err)

	assert.NotEqual(t, firstID, secondID)
}
