package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"arcade/config"
	"arcade/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenService(t *testing.T) (accessToken, refreshToken string, mw *AuthMiddleware) {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	svc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	accessToken, refreshToken, err = svc.GenerateTokens(uuid.New(), "admin")
	require.NoError(t, err)

	return accessToken, refreshToken, NewAuthMiddleware(svc)
}

func runAuthenticated(t *testing.T, mw *AuthMiddleware, header string, extra ...echo.MiddlewareFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	next := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}

	for i := len(extra) - 1; i >= 0; i-- {
		next = extra[i](next)
	}
	h := mw.Authenticate(next)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()

	err := h(e.NewContext(req, rec))
	require.NoError(t, err)

	return rec
}

func TestAuthenticate_ValidAccessToken(t *testing.T) {
	accessToken, _, mw := newTokenService(t)

	rec := runAuthenticated(t, mw, "Bearer "+accessToken)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	_, _, mw := newTokenService(t)

	rec := runAuthenticated(t, mw, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	accessToken, _, mw := newTokenService(t)

	rec := runAuthenticated(t, mw, accessToken)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_RejectsRefreshToken(t *testing.T) {
	_, refreshToken, mw := newTokenService(t)

	rec := runAuthenticated(t, mw, "Bearer "+refreshToken)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token type")
}

func TestAuthenticate_GarbageToken(t *testing.T) {
	_, _, mw := newTokenService(t)

	rec := runAuthenticated(t, mw, "Bearer not.a.jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	accessToken, _, mw := newTokenService(t)

	rec := runAuthenticated(t, mw, "Bearer "+accessToken, mw.RequireRole("admin"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = runAuthenticated(t, mw, "Bearer "+accessToken, mw.RequireRole("player"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
