package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eventhub/eventhub-backend/internal/handler"
	"github.com/eventhub/eventhub-backend/internal/models"
	"github.com/eventhub/eventhub-backend/internal/repository/memory"
	"github.com/eventhub/eventhub-backend/internal/service"
	"github.com/eventhub/eventhub-backend/pkg/storage"
	"github.com/eventhub/eventhub-backend/pkg/utils"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	store := memory.NewStore()
	userRepo := memory.NewUserRepository(store)
	eventRepo := memory.NewEventRepository(store)

	imageStorage, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	zapLogger := zap.NewNop()
	authService := service.NewAuthService(userRepo, nil, zapLogger)
	userService := service.NewUserService(userRepo, zapLogger)
	eventService := service.NewEventService(eventRepo, imageStorage, zapLogger)

	validator := utils.NewValidator()

	app := fiber.New()
	handler.RegisterRoutes(app,
		handler.NewAuthHandler(authService, validator),
		handler.NewEventHandler(eventService),
		handler.NewUserHandler(userService, validator),
	)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// doForm sends a multipart form, optionally with an image part, the way
// the event create/update endpoints are called.
func doForm(t *testing.T, app *fiber.App, method, path, token string, fields map[string]string, imageName string) *http.Response {
	t.Helper()

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for key, value := range fields {
		require.NoError(t, w.WriteField(key, value))
	}
	if imageName != "" {
		fw, err := w.CreateFormFile("image", imageName)
		require.NoError(t, err)
		_, err = fw.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func errorMessage(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body models.ErrorBody
	decode(t, resp, &body)
	return body.Message
}

func registerUser(t *testing.T, app *fiber.App, name, email string) models.AuthResponse {
	t.Helper()
	resp := doJSON(t, app, fiber.MethodPost, "/api/auth/register", "", models.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: "secret1",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var auth models.AuthResponse
	decode(t, resp, &auth)
	return auth
}

func eventFields() map[string]string {
	return map[string]string{
		"title":        "Go Meetup",
		"description":  "Talks and pizza",
		"date":         "2026-06-01",
		"location":     "Berlin",
		"maxAttendees": "2",
	}
}

func createEvent(t *testing.T, app *fiber.App, token string, fields map[string]string) models.EventResponse {
	t.Helper()
	resp := doForm(t, app, fiber.MethodPost, "/api/events", token, fields, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var event models.EventResponse
	decode(t, resp, &event)
	return event
}
