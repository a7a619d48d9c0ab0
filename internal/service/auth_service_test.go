package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ftzops/internal/config"
	"ftzops/internal/service"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:       "test-secret",
		Issuer:       "ftzops",
		AccessExpiry: time.Hour,
	}
}

func TestAuthService_IssueAndValidate(t *testing.T) {
	svc := service.NewAuthService(testJWTConfig())

	token, err := svc.IssueToken("ops@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", claims.Subject)
	assert.Equal(t, service.ScopeAdmin, claims.Scope)
	assert.Equal(t, "ftzops", claims.Issuer)
}

func TestAuthService_ValidateToken_WrongSecret(t *testing.T) {
	issuer := service.NewAuthService(testJWTConfig())
	token, err := issuer.IssueToken("ops")
	require.NoError(t, err)

	other := config.JWTConfig{Secret: "different-secret", Issuer: "ftzops", AccessExpiry: time.Hour}
	_, err = service.NewAuthService(other).ValidateToken(token)
	assert.Error(t, err)
}

func TestAuthService_ValidateToken_WrongIssuer(t *testing.T) {
	foreign := config.JWTConfig{Secret: "test-secret", Issuer: "someone-else", AccessExpiry: time.Hour}
	token, err := service.NewAuthService(foreign).IssueToken("ops")
	require.NoError(t, err)

	_, err = service.NewAuthService(testJWTConfig()).ValidateToken(token)
	assert.Error(t, err)
}

func TestAuthService_ValidateToken_Expired(t *testing.T) {
	expired := config.JWTConfig{Secret: "test-secret", Issuer: "ftzops", AccessExpiry: -time.Minute}
	token, err := service.NewAuthService(expired).IssueToken("ops")
	require.NoError(t, err)

	_, err = service.NewAuthService(testJWTConfig()).ValidateToken(token)
	assert.Error(t, err)
}

func TestAuthService_ValidateToken_Garbage(t *testing.T) {
	svc := service.NewAuthService(testJWTConfig())

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
