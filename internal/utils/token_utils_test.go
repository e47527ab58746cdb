package utils_test

import (
	"testing"
	"time"

	"github.com/sdbuildbox/building_management_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	secret := "test-secret-key-that-is-long-enough"
	email := "tenant@example.com"

	token, err := utils.GenerateJWT(email, secret, time.Hour, "bma-test")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ParseAndValidateJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, email, claims.Subject)
	assert.Equal(t, "bma-test", claims.Issuer)
}

func TestParseAndValidateJWT_WrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT("tenant@example.com", "secret-one", time.Hour, "bma-test")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, "secret-two")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseAndValidateJWT_Expired(t *testing.T) {
	secret := "test-secret-key-that-is-long-enough"
	token, err := utils.GenerateJWT("tenant@example.com", secret, -time.Minute, "bma-test")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, secret)
	assert.Error(t, err)
	assert.Nil(t, claims)
}
