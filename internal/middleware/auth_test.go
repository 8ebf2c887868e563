package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/kickstartvisuals/studio-backend/internal/config"
	"github.com/kickstartvisuals/studio-backend/internal/dto"
	"github.com/kickstartvisuals/studio-backend/internal/models"
	"github.com/kickstartvisuals/studio-backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractBearer(t *testing.T) {
	cases := []struct {
		name   string
		header string
		token  string
		ok     bool
	}{
		{"standard scheme", "Bearer abc.def.ghi", "abc.def.ghi", true},
		{"lowercase scheme", "bearer abc.def.ghi", "abc.def.ghi", true},
		{"uppercase scheme", "BEARER abc.def.ghi", "abc.def.ghi", true},
		{"missing header", "", "", false},
		{"wrong scheme", "Token abc", "", false},
		{"scheme without token", "Bearer ", "", false},
		{"scheme only", "Bearer", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token, ok := ExtractBearer(tc.header)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.token, token)
		})
	}
}

// The rejection paths below never reach the database, so a nil *gorm.DB is
// safe here.
func TestAuthenticated_Rejections(t *testing.T) {
	tokens := services.NewTokenService("mw-test-secret", time.Hour)

	app := fiber.New()
	app.Get("/protected", Authenticated(nil, tokens), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	request := func(t *testing.T, authorization string) (int, string) {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if authorization != "" {
			req.Header.Set("Authorization", authorization)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		var body dto.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return resp.StatusCode, body.Message
	}

	t.Run("missing header", func(t *testing.T) {
		status, message := request(t, "")
		assert.Equal(t, fiber.StatusUnauthorized, status)
		assert.Equal(t, "Not authenticated", message)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		status, _ := request(t, "Basic dXNlcjpwYXNz")
		assert.Equal(t, fiber.StatusUnauthorized, status)
	})

	t.Run("garbage token", func(t *testing.T) {
		status, message := request(t, "Bearer not-a-token")
		assert.Equal(t, fiber.StatusUnauthorized, status)
		assert.Equal(t, "Invalid token", message)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := services.NewTokenService("mw-test-secret", -time.Minute)
		token, err := expired.Issue("00000000-0000-0000-0000-000000000001")
		require.NoError(t, err)

		status, message := request(t, "Bearer "+token)
		assert.Equal(t, fiber.StatusUnauthorized, status)
		assert.Equal(t, "Token expired", message)
	})

	t.Run("subject that is not an id", func(t *testing.T) {
		token, err := tokens.Issue("not-a-uuid")
		require.NoError(t, err)

		status, message := request(t, "Bearer "+token)
		assert.Equal(t, fiber.StatusUnauthorized, status)
		assert.Equal(t, "Invalid token", message)
	})
}

func TestAdminRequired(t *testing.T) {
	cfg := &config.Config{AdminEmails: "boss@example.com, ops@example.com"}

	newApp := func(user *models.User) *fiber.App {
		app := fiber.New()
		app.Use(func(c *fiber.Ctx) error {
			if user != nil {
				c.Locals(currentUserKey, user)
			}
			return c.Next()
		})
		app.Get("/admin", AdminRequired(cfg), func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		})
		return app
	}

	status := func(t *testing.T, app *fiber.App) int {
		t.Helper()
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin", nil))
		require.NoError(t, err)
		resp.Body.Close()
		return resp.StatusCode
	}

	t.Run("admin flag passes", func(t *testing.T) {
		app := newApp(&models.User{IsAdmin: true, Email: "a@example.com"})
		assert.Equal(t, fiber.StatusOK, status(t, app))
	})

	t.Run("plain customer is forbidden", func(t *testing.T) {
		app := newApp(&models.User{Email: "c@example.com"})
		assert.Equal(t, fiber.StatusForbidden, status(t, app))
	})

	t.Run("bootstrap email passes without the flag", func(t *testing.T) {
		app := newApp(&models.User{Email: "ops@example.com"})
		assert.Equal(t, fiber.StatusOK, status(t, app))
	})

	t.Run("no authenticated user is unauthorized", func(t *testing.T) {
		app := newApp(nil)
		assert.Equal(t, fiber.StatusUnauthorized, status(t, app))
	})
}
