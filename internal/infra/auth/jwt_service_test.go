package auth

import (
	"testing"

	"arcade/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	userID := uuid.New()

	accessToken, refreshToken, err := svc.GenerateTokens(userID, "player")
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	accessClaims, err := svc.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, "player", accessClaims.Role)
	assert.Equal(t, "access", accessClaims.Type)

	refreshClaims, err := svc.ValidateToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Empty(t, refreshClaims.Role)
	assert.Equal(t, "refresh", refreshClaims.Type)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	_, err = svc.ValidateToken("not.a.token")
	assert.Error(t, err)

	// Tokens signed with a different secret are rejected.
	otherCfg := &config.Config{}
	otherCfg.SecretKey.Access = "other_access_secret"
	otherCfg.SecretKey.Refresh = "other_refresh_secret"
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	accessToken, _, err := other.GenerateTokens(uuid.New(), "player")
	require.NoError(t, err)

	_, err = svc.ValidateToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_MissingSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
