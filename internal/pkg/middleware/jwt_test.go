package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtpkg "github.com/mpawlak/wedrownik/internal/pkg/jwt"
	"github.com/mpawlak/wedrownik/internal/pkg/models"
)

func jwtTestConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "wedrownik-test",
		},
	}
}

func performRequest(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/routes", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	return rec, c
}

func TestSetIdentityFromToken(t *testing.T) {
	cfg := jwtTestConfig()
	userID := uuid.New()
	token, _, err := jwtpkg.GenerateToken(userID, "anna@example.com", cfg)
	require.NoError(t, err)

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	require.NoError(t, SetIdentityFromToken(c, token, cfg.JWT))
	assert.Equal(t, userID, UserIDFromContext(c))
	assert.Equal(t, "anna@example.com", c.Get("email"))
}

func TestSetIdentityFromTokenGarbage(t *testing.T) {
	cfg := jwtTestConfig()

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Error(t, SetIdentityFromToken(c, "garbage", cfg.JWT))
	assert.Equal(t, uuid.Nil, UserIDFromContext(c))
}

func TestBearerToken(t *testing.T) {
	e := echo.New()

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"well formed", "Bearer abc.def.ghi", "abc.def.ghi"},
		{"missing header", "", ""},
		{"wrong scheme", "Basic abc", ""},
		{"no token", "Bearer", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			c := e.NewContext(req, httptest.NewRecorder())
			assert.Equal(t, tt.want, BearerToken(c))
		})
	}
}

func TestOptionalJWTMiddleware_Anonymous(t *testing.T) {
	cfg := jwtTestConfig()

	rec, c := performRequest(t, OptionalJWTMiddleware(cfg.JWT), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uuid.Nil, UserIDFromContext(c))
}

func TestOptionalJWTMiddleware_WithToken(t *testing.T) {
	cfg := jwtTestConfig()
	userID := uuid.New()
	token, _, err := jwtpkg.GenerateToken(userID, "anna@example.com", cfg)
	require.NoError(t, err)

	rec, c := performRequest(t, OptionalJWTMiddleware(cfg.JWT), "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, UserIDFromContext(c))
}

func TestOptionalJWTMiddleware_BadToken(t *testing.T) {
	cfg := jwtTestConfig()

	rec, _ := performRequest(t, OptionalJWTMiddleware(cfg.JWT), "Bearer garbage")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
