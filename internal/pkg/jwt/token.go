package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/piresc/nebengjek-fare/internal/pkg/models"
)

// ErrInvalidToken is returned for tokens that fail signature, expiry or issuer checks
var ErrInvalidToken = errors.New("invalid token")

// ErrMissingSecret is returned when no signing secret is configured
var ErrMissingSecret = errors.New("jwt secret is not configured")

// Claims identifies the caller of the fare API
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 token for the caller and returns it with its expiry
func GenerateToken(userID uuid.UUID, role string, cfg *models.Config) (string, int64, error) {
	if cfg.JWT.Secret == "" {
		return "", 0, fmt.Errorf("%w: %w", ErrInvalidToken, ErrMissingSecret)
	}
	now := time.Now()
	expiresAt := now.Add(time.Duration(cfg.JWT.Expiration) * time.Minute)

	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.JWT.Issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt.Unix(), nil
}

// ValidateToken parses tokenString and checks signature, expiry and issuer.
// Every token is rejected while the secret is empty.
func ValidateToken(tokenString string, cfg models.JWTConfig) (*Claims, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, ErrMissingSecret)
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if cfg.Issuer != "" && !claims.VerifyIssuer(cfg.Issuer, true) {
		return nil, fmt.Errorf("%w: unexpected issuer %q", ErrInvalidToken, claims.Issuer)
	}

	return claims, nil
}
