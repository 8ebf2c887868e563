package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/kickstartvisuals/studio-backend/internal/dto"
	"github.com/kickstartvisuals/studio-backend/internal/models"
	"github.com/kickstartvisuals/studio-backend/internal/services"
	"gorm.io/gorm"
)

const currentUserKey = "current_user"

// ExtractBearer pulls the token out of an Authorization header value. The
// scheme match is case-insensitive ("bearer x" and "Bearer x" both work).
func ExtractBearer(header string) (string, bool) {
	const scheme = "bearer "
	if len(header) <= len(scheme) {
		return "", false
	}
	if !strings.EqualFold(header[:len(scheme)], scheme) {
		return "", false
	}
	token := strings.TrimSpace(header[len(scheme):])
	return token, token != ""
}

// Authenticated resolves the bearer token to a user row and stores the
// snapshot in request locals. Missing header, bad token and a vanished
// subject all collapse into 401; the message distinguishes expiry because
// clients use it to trigger a refresh.
func Authenticated(db *gorm.DB, tokens *services.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := ExtractBearer(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return unauthorized(c, "Not authenticated")
		}

		subject, err := tokens.Decode(token)
		if err != nil {
			if errors.Is(err, services.ErrTokenExpired) {
				return unauthorized(c, "Token expired")
			}
			return unauthorized(c, "Invalid token")
		}

		userID, err := uuid.Parse(subject)
		if err != nil {
			return unauthorized(c, "Invalid token")
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			return unauthorized(c, "User not found")
		}

		c.Locals(currentUserKey, &user)
		return c.Next()
	}
}

// CurrentUser returns the snapshot stored by Authenticated. The snapshot is
// immutable for the request: later row changes are not reflected.
func CurrentUser(c *fiber.Ctx) (*models.User, error) {
	user, ok := c.Locals(currentUserKey).(*models.User)
	if !ok || user == nil {
		return nil, errors.New("no authenticated user in context")
	}
	return user, nil
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: message,
	})
}
