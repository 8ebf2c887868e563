package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/kickstartvisuals/studio-backend/internal/dto"
	"github.com/kickstartvisuals/studio-backend/internal/middleware"
	"github.com/kickstartvisuals/studio-backend/internal/services"
)

type MessageHandler struct {
	messageService *services.MessageService
}

func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

func (h *MessageHandler) Send(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return unauthorizedHere(c)
	}

	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid project ID")
	}

	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.messageService.Send(projectID, user, req.Content); err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			return notFound(c, "Project not found")
		}
		if errors.Is(err, services.ErrValidation) {
			return badRequest(c, err.Error())
		}
		return serverError(c, err)
	}

	return c.JSON(dto.SendMessageResponse{Message: "Sent"})
}

func (h *MessageHandler) List(c *fiber.Ctx) error {
	if _, err := middleware.CurrentUser(c); err != nil {
		return unauthorizedHere(c)
	}

	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid project ID")
	}

	messages, err := h.messageService.List(projectID)
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(messages)
}
