package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kickstartvisuals/studio-backend/internal/database"
	"github.com/kickstartvisuals/studio-backend/internal/dto"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(dto.RootResponse{Message: "Studio client portal API running"})
}

func (h *HealthHandler) DBCheck(c *fiber.Ctx) error {
	return c.JSON(dto.DBCheckResponse{DBConnected: database.Ping() == nil})
}
