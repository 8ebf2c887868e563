package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/kickstartvisuals/studio-backend/internal/dto"
	"github.com/kickstartvisuals/studio-backend/internal/middleware"
	"github.com/kickstartvisuals/studio-backend/internal/models"
	"github.com/kickstartvisuals/studio-backend/internal/services"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return unauthorizedHere(c)
	}

	var req dto.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	projectID, err := h.projectService.Create(user, &req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			return badRequest(c, err.Error())
		}
		return serverError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.CreateProjectResponse{
		ID: projectID.String(),
	})
}

func (h *ProjectHandler) ListMine(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return unauthorizedHere(c)
	}

	projects, err := h.projectService.ListMine(user.ID)
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(projects)
}

// UploadFile accepts a multipart file, keeps only its metadata and discards
// the bytes. The request body is already capped by the server's BodyLimit.
func (h *ProjectHandler) UploadFile(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return unauthorizedHere(c)
	}

	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid project ID")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "A multipart 'file' field is required")
	}

	meta := models.FileMetadata{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(fiber.HeaderContentType),
		Size:        fileHeader.Size,
		UploadedAt:  time.Now().UTC(),
	}

	stored, err := h.projectService.AttachFile(projectID, meta, user)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			return notFound(c, "Project not found")
		}
		return serverError(c, err)
	}

	return c.JSON(dto.FileUploadResponse{
		Message: "File uploaded",
		File:    *stored,
	})
}
