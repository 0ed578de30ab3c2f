package handler_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventhub/eventhub-backend/internal/models"
)

func TestRegister(t *testing.T) {
	app := newTestApp(t)

	auth := registerUser(t, app, "Alice", "alice@example.com")
	assert.NotZero(t, auth.ID)
	assert.Equal(t, "Alice", auth.Name)
	assert.Equal(t, "alice@example.com", auth.Email)
	assert.NotEmpty(t, auth.Token)
}

func TestRegisterValidation(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/auth/register", "", models.RegisterRequest{
		Name: "Alice", Email: "alice@example.com",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Please include all fields", errorMessage(t, resp))

	resp = doJSON(t, app, fiber.MethodPost, "/api/auth/register", "", models.RegisterRequest{
		Name: "Alice", Email: "not-an-email", Password: "secret1",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app, "Alice", "alice@example.com")

	resp := doJSON(t, app, fiber.MethodPost, "/api/auth/register", "", models.RegisterRequest{
		Name: "Impostor", Email: "alice@example.com", Password: "other-pass",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "User already exists", errorMessage(t, resp))

	// The first registration still works for login.
	resp = doJSON(t, app, fiber.MethodPost, "/api/auth/login", "", models.LoginRequest{
		Email: "alice@example.com", Password: "secret1",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestLoginInvalidCredentials(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app, "Alice", "alice@example.com")

	resp := doJSON(t, app, fiber.MethodPost, "/api/auth/login", "", models.LoginRequest{
		Email: "alice@example.com", Password: "wrong",
	})
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	wrongPass := errorMessage(t, resp)

	resp = doJSON(t, app, fiber.MethodPost, "/api/auth/login", "", models.LoginRequest{
		Email: "nobody@example.com", Password: "secret1",
	})
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Same message for unknown email and wrong password.
	assert.Equal(t, wrongPass, errorMessage(t, resp))
	assert.Equal(t, "Invalid credentials", wrongPass)
}

func TestLoginMissingFields(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/auth/login", "", models.LoginRequest{
		Email: "alice@example.com",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Please include all fields", errorMessage(t, resp))
}
