package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/nebengjek-fare/internal/pkg/jwt"
	"github.com/piresc/nebengjek-fare/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTAuthMiddleware(t *testing.T) {
	cfg := &models.Config{JWT: models.JWTConfig{Secret: "secret", Expiration: 10, Issuer: "nebengjek-fare"}}
	userID := uuid.New()
	token, _, err := jwtpkg.GenerateToken(userID, "service", cfg)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "valid token", header: "Bearer " + token, wantStatus: http.StatusOK},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + token, wantStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer abc.def.ghi", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			var gotUser interface{}
			var gotRole interface{}
			e.GET("/secure", func(c echo.Context) error {
				gotUser = c.Get("user_id")
				gotRole = c.Get("user_role")
				return c.NoContent(http.StatusOK)
			}, JWTAuthMiddleware(cfg.JWT))

			req := httptest.NewRequest(http.MethodGet, "/secure", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, userID, gotUser)
				assert.Equal(t, "service", gotRole)
			}
		})
	}
}

func TestJWTAuthMiddleware_EmptySecretRejectsEverything(t *testing.T) {
	cfg := models.JWTConfig{Secret: "", Expiration: 10, Issuer: "nebengjek"}
	claims := jwtpkg.Claims{
		UserID: uuid.New(),
		Role:   "service",
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    cfg.Issuer,
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte(""))
	require.NoError(t, err)

	e := echo.New()
	reached := false
	e.POST("/trips/:id/fare", func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	}, JWTAuthMiddleware(cfg))

	req := httptest.NewRequest(http.MethodPost, "/trips/t-1/fare", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}
