package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Annual Science Fair 2024":        "annual-science-fair-2024",
		"  Café Día!  ":                   "cafe-dia",
		"STEM & Tech: What's next?":       "stem-tech-what-s-next",
		"---":                             "",
		"Sports Day -- Results (Updated)": "sports-day-results-updated",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), in)
	}
}

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("Admin@123", 4)
	require.NoError(t, err)
	assert.True(t, VerifyPassword(hash, "Admin@123"))
	assert.False(t, VerifyPassword(hash, "admin@123"))
	assert.False(t, VerifyPassword("", "Admin@123"))
}

func TestAccessToken(t *testing.T) {
	tok, err := NewAccessToken("secret", "1", "SYSTEM_ADMIN", 5)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), tok.Exp, time.Minute)

	claims, err := ParseAccessToken("secret", tok.Token)
	require.NoError(t, err)
	assert.Equal(t, "1", claims.Subject)
	assert.Equal(t, "SYSTEM_ADMIN", claims.Role)
	assert.NotEmpty(t, claims.ID)

	_, err = ParseAccessToken("other", tok.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAccessTokenRejectsExpiredAndIncomplete(t *testing.T) {
	expired, err := NewAccessToken("secret", "1", "SYSTEM_ADMIN", -1)
	require.NoError(t, err)
	_, err = ParseAccessToken("secret", expired.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	noRole := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	raw, err := noRole.SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = ParseAccessToken("secret", raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
