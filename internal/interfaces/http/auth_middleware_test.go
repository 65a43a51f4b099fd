package http_test

import (
	"encoding/json"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/facturas-api/internal/application/dto"
	"github.com/invorya/facturas-api/pkg/jwt"
)

// Toda ruta protegida rechaza peticiones sin Authorization.
func TestAuth_SinHeaderEs401(t *testing.T) {
	env := nuevaApp(t)

	for _, target := range []string{
		"/api/invoices",
		"/api/customers",
		"/api/dashboard/cards",
	} {
		resp := doJSON(t, env.app, fiber.MethodGet, target, "", nil)
		resp.Body.Close()
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, target)
	}
}

func TestAuth_TokenMalFormadoEs401(t *testing.T) {
	env := nuevaApp(t)

	resp := doJSON(t, env.app, fiber.MethodGet, "/api/invoices", "no-es-un-jwt", nil)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "INVALID_TOKEN", out.Code)
}

// Un token firmado con otro secret no pasa la puerta.
func TestAuth_FirmaIncorrectaEs401(t *testing.T) {
	env := nuevaApp(t)

	ajeno, err := jwt.Generate("otro-secret", "u1", "user@nextmail.com", "otro", 60)
	require.NoError(t, err)

	resp := doJSON(t, env.app, fiber.MethodGet, "/api/invoices", ajeno, nil)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_TokenValidoPasa(t *testing.T) {
	env := nuevaApp(t)

	resp := doJSON(t, env.app, fiber.MethodGet, "/api/invoices", tokenValido(t), nil)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

// Las rutas de auth son públicas: el login no exige token previo.
func TestLogin_CredencialesValidas(t *testing.T) {
	env := nuevaApp(t)
	usuarioSembrado(t, env.users, "user@nextmail.com", "123456")

	resp := doJSON(t, env.app, fiber.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email: "user@nextmail.com", Password: "123456",
	})
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "user@nextmail.com", out.User.Email)

	// El token emitido debe servir para las rutas protegidas.
	protegida := doJSON(t, env.app, fiber.MethodGet, "/api/invoices", out.Token, nil)
	defer protegida.Body.Close()
	assert.Equal(t, fiber.StatusOK, protegida.StatusCode)
}

func TestLogin_PasswordIncorrecta401(t *testing.T) {
	env := nuevaApp(t)
	usuarioSembrado(t, env.users, "user@nextmail.com", "123456")

	resp := doJSON(t, env.app, fiber.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email: "user@nextmail.com", Password: "equivocada",
	})
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_UsuarioInexistente401(t *testing.T) {
	env := nuevaApp(t)

	resp := doJSON(t, env.app, fiber.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email: "nadie@nextmail.com", Password: "123456",
	})
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRegister_CreaUsuarioYPermiteLogin(t *testing.T) {
	env := nuevaApp(t)

	registro := doJSON(t, env.app, fiber.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Name: "Usuario", Email: "nuevo@nextmail.com", Password: "123456",
	})
	defer registro.Body.Close()
	require.Equal(t, fiber.StatusCreated, registro.StatusCode)

	login := doJSON(t, env.app, fiber.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email: "nuevo@nextmail.com", Password: "123456",
	})
	defer login.Body.Close()
	assert.Equal(t, fiber.StatusOK, login.StatusCode)
}

func TestRegister_EmailDuplicado409(t *testing.T) {
	env := nuevaApp(t)
	usuarioSembrado(t, env.users, "user@nextmail.com", "123456")

	resp := doJSON(t, env.app, fiber.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Email: "user@nextmail.com", Password: "123456",
	})
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestRegister_PasswordCorta400(t *testing.T) {
	env := nuevaApp(t)

	resp := doJSON(t, env.app, fiber.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Email: "nuevo@nextmail.com", Password: "123",
	})
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
