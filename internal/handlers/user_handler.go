package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/kickstartvisuals/studio-backend/internal/dto"
	"github.com/kickstartvisuals/studio-backend/internal/middleware"
	"github.com/kickstartvisuals/studio-backend/internal/services"
)

type UserHandler struct {
	authService *services.AuthService
}

func NewUserHandler(authService *services.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// Me returns the authenticated user's own profile.
func (h *UserHandler) Me(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return unauthorizedHere(c)
	}
	return c.JSON(services.PublicUser(user))
}

// UpdateMe is a partial patch: absent fields stay untouched, and an empty
// body is an idempotent no-op that still returns the current profile.
func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return unauthorizedHere(c)
	}

	var req dto.ProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.authService.UpdateProfile(user.ID, &req)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return notFound(c, "User not found")
		}
		return serverError(c, err)
	}

	return c.JSON(resp)
}

func unauthorizedHere(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Not authenticated",
	})
}
