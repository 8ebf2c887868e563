package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/kickstartvisuals/studio-backend/internal/dto"
	"github.com/kickstartvisuals/studio-backend/internal/services"
)

// AdminHandler serves the triage surface. AdminRequired middleware has
// already gated every route here.
type AdminHandler struct {
	projectService *services.ProjectService
}

func NewAdminHandler(projectService *services.ProjectService) *AdminHandler {
	return &AdminHandler{projectService: projectService}
}

func (h *AdminHandler) ListProjects(c *fiber.Ctx) error {
	projects, err := h.projectService.ListAll(c.Query("service"), c.Query("status"))
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(projects)
}

func (h *AdminHandler) UpdateStatus(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid project ID")
	}

	var req dto.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.projectService.UpdateStatus(projectID, &req); err != nil {
		if errors.Is(err, services.ErrValidation) {
			return badRequest(c, err.Error())
		}
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Status updated"})
}
