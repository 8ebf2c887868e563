package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/kickstartvisuals/studio-backend/internal/config"
	"github.com/kickstartvisuals/studio-backend/internal/dto"
)

// AdminRequired gates a route on the authenticated user's admin flag, or on
// membership in the ADMIN_EMAILS bootstrap list. Runs after Authenticated.
func AdminRequired(cfg *config.Config) fiber.Handler {
	adminEmails := parseCSV(cfg.AdminEmails)

	return func(c *fiber.Ctx) error {
		user, err := CurrentUser(c)
		if err != nil {
			return unauthorized(c, "Not authenticated")
		}

		if user.IsAdmin || contains(adminEmails, user.Email) {
			return c.Next()
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Admin access required",
		})
	}
}

func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}
