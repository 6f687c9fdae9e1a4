package jwt_test

import (
	"testing"
	"time"

	"voyage/config"
	"voyage/infras/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func sign(t *testing.T, claims jwt.Claims, secret string) string {
	t.Helper()

	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func claimsFor(userID string, expiresIn time.Duration) jwt.Claims {
	now := time.Now()

	return jwt.Claims{
		UserID:  userID,
		Email:   "guest@example.com",
		Role:    "user",
		TokenID: "token-1",
		Type:    jwt.AccessToken,
		RegisteredClaims: gojwt.RegisteredClaims{
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(expiresIn)),
		},
	}
}

func TestService_ValidateToken(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.AccessSecret = testSecret

	service := jwt.New(cfg)

	t.Run("valid token", func(t *testing.T) {
		claims, err := service.ValidateToken(sign(t, claimsFor("user-1", time.Hour), testSecret))

		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.Equal(t, "user", claims.Role)
	})

	t.Run("expired token", func(t *testing.T) {
		_, err := service.ValidateToken(sign(t, claimsFor("user-1", -time.Hour), testSecret))

		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := service.ValidateToken(sign(t, claimsFor("user-1", time.Hour), "other"))

		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := service.ValidateToken(sign(t, claimsFor("", time.Hour), testSecret))

		assert.ErrorIs(t, err, jwt.ErrInvalidClaim)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := service.ValidateToken("not-a-token")

		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := jwt.ExtractTokenFromHeader("Bearer abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	_, err = jwt.ExtractTokenFromHeader("")
	assert.Error(t, err)

	_, err = jwt.ExtractTokenFromHeader("Basic abc")
	assert.Error(t, err)

	_, err = jwt.ExtractTokenFromHeader("Bearer ")
	assert.Error(t, err)
}
