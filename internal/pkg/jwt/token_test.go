package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/piresc/nebengjek-fare/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret-key-for-jwt-signing",
			Expiration: 60,
			Issuer:     "nebengjek-fare-test",
		},
	}
}

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name string
		role string
	}{
		{name: "Service caller", role: "service"},
		{name: "Admin caller", role: "admin"},
		{name: "Empty role", role: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := getTestConfig()
			userID := uuid.New()

			token, expiresAt, err := GenerateToken(userID, tt.role, cfg)

			require.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.InDelta(t, time.Now().Add(60*time.Minute).Unix(), expiresAt, 5)

			claims, err := ValidateToken(token, cfg.JWT)
			require.NoError(t, err)
			assert.Equal(t, userID, claims.UserID)
			assert.Equal(t, tt.role, claims.Role)
			assert.Equal(t, userID.String(), claims.Subject)
			assert.Equal(t, "nebengjek-fare-test", claims.Issuer)
		})
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := getTestConfig()
	token, _, err := GenerateToken(uuid.New(), "service", cfg)
	require.NoError(t, err)

	other := cfg.JWT
	other.Secret = "another-secret"

	_, err = ValidateToken(token, other)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := getTestConfig()
	cfg.JWT.Expiration = -5

	token, _, err := GenerateToken(uuid.New(), "service", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, cfg.JWT)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_WrongIssuer(t *testing.T) {
	cfg := getTestConfig()
	token, _, err := GenerateToken(uuid.New(), "service", cfg)
	require.NoError(t, err)

	other := cfg.JWT
	other.Issuer = "someone-else"

	_, err = ValidateToken(token, other)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_RejectsNoneAlgorithm(t *testing.T) {
	cfg := getTestConfig()
	claims := Claims{
		UserID: uuid.New(),
		Role:   "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.JWT.Issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateToken(token, cfg.JWT)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not.a.token", getTestConfig().JWT)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestEmptySecret(t *testing.T) {
	cfg := getTestConfig()
	cfg.JWT.Secret = ""

	_, _, err := GenerateToken(uuid.New(), "service", cfg)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, err, ErrMissingSecret)

	claims := Claims{
		UserID: uuid.New(),
		Role:   "service",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.JWT.Issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(""))
	require.NoError(t, err)

	_, err = ValidateToken(token, cfg.JWT)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
