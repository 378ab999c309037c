package authenticating

import (
	"testing"

	"github.com/flboutique/boutique-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig(password, hash string) *config.Config {
	cfg := &config.Config{SecretKey: "segredo-de-teste"}
	cfg.Auth.SharedPassword = password
	cfg.Auth.SharedPasswordHash = hash
	return cfg
}

func TestLoginWithPlainPassword(t *testing.T) {
	service := NewService(testConfig("senha123", ""))

	token, err := service.Login("senha123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.NotEmpty(t, claims.SessionID)
}

func TestLoginWithBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("senha123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	// Com hash configurado a senha em texto é ignorada
	service := NewService(testConfig("outra-coisa", string(hash)))

	token, err := service.Login("senha123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = service.Login("senha errada")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsWrongOrEmptyPassword(t *testing.T) {
	service := NewService(testConfig("senha123", ""))

	_, err := service.Login("errada")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = service.Login("")
	assert.ErrorIs(t, err, ErrMissingPassword)
}

func TestLoginWithoutConfiguredPassword(t *testing.T) {
	service := NewService(testConfig("", ""))

	_, err := service.Login("qualquer")
	assert.ErrorIs(t, err, ErrNoPasswordSet)
}

func TestValidateTokenRejectsForeignToken(t *testing.T) {
	serviceA := NewService(testConfig("senha123", ""))

	other := testConfig("senha123", "")
	other.SecretKey = "outro-segredo"
	serviceB := NewService(other)

	token, err := serviceA.Login("senha123")
	require.NoError(t, err)

	_, err = serviceB.ValidateToken(token)
	assert.Error(t, err)
}
