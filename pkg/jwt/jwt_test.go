package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/facturas-api/pkg/jwt"
)

const secret = "secreto-de-test"

func TestGenerateYParse(t *testing.T) {
	token, err := jwt.Generate(secret, "u1", "user@nextmail.com", "facturas-api", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, email, err := jwt.Parse(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
	assert.Equal(t, "user@nextmail.com", email)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate("otro-secret", "u1", "user@nextmail.com", "facturas-api", 60)
	require.NoError(t, err)

	_, _, err = jwt.Parse(secret, token)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	// Expiración negativa: el token nació vencido.
	token, err := jwt.Generate(secret, "u1", "user@nextmail.com", "facturas-api", -1)
	require.NoError(t, err)

	_, _, err = jwt.Parse(secret, token)
	assert.Error(t, err)
}

func TestParse_TokenBasura(t *testing.T) {
	_, _, err := jwt.Parse(secret, "ni.siquiera.jwt")
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "u1", "user@nextmail.com", "facturas-api", 60)
	assert.Error(t, err)
}
