package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/kickstartvisuals/studio-backend/internal/config"
	"github.com/kickstartvisuals/studio-backend/internal/dto"
	"github.com/kickstartvisuals/studio-backend/internal/models"
	"github.com/kickstartvisuals/studio-backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These cover request validation, which rejects before any store access;
// the services are constructed with a nil DB on purpose.

func injectUser(user *models.User) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("current_user", user)
		return c.Next()
	}
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func TestRootRoute(t *testing.T) {
	app := fiber.New()
	h := NewHealthHandler()
	app.Get("/", h.Root)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.RootResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Message)
}

func TestSignupValidation(t *testing.T) {
	cfg := &config.Config{JWTAccessExpiry: time.Hour, JWTRefreshExpiry: time.Hour}
	tokens := services.NewTokenService("handler-test", time.Hour)
	h := NewAuthHandler(services.NewAuthService(nil, cfg, tokens))

	app := fiber.New()
	app.Post("/auth/signup", h.Signup)

	t.Run("malformed JSON body", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/auth/signup", "{not json"))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("missing required fields", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/auth/signup", `{"email":"a@b.c"}`))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestProjectParamValidation(t *testing.T) {
	user := &models.User{ID: uuid.New(), Name: "U", Email: "u@example.com"}

	projectHandler := NewProjectHandler(services.NewProjectService(nil))
	messageHandler := NewMessageHandler(services.NewMessageService(nil))
	adminHandler := NewAdminHandler(services.NewProjectService(nil))

	app := fiber.New()
	app.Use(injectUser(user))
	app.Post("/projects/:id/files", projectHandler.UploadFile)
	app.Post("/projects/:id/messages", messageHandler.Send)
	app.Put("/admin/projects/:id/status", adminHandler.UpdateStatus)

	t.Run("upload with a non-id path segment", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/projects/nope/files", nil))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("upload without a multipart file field", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/projects/"+uuid.NewString()+"/files", `{}`))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("message send with a non-id path segment", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/projects/nope/messages", `{"content":"hi"}`))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("status update with a non-id path segment", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPut, "/admin/projects/nope/status", `{"status":"Done"}`))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("status update without a status", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPut, "/admin/projects/"+uuid.NewString()+"/status", `{}`))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
