package dto

import "github.com/kickstartvisuals/studio-backend/internal/models"

type CreateProjectRequest struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           *string `json:"phone"`
	SelectedService string  `json:"selected_service"`
	Description     string  `json:"description"`
	Budget          *string `json:"budget"`
}

type CreateProjectResponse struct {
	ID string `json:"_id"`
}

// StatusUpdateRequest sets status unconditionally; notes only when supplied.
type StatusUpdateRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes"`
}

type FileUploadResponse struct {
	Message string              `json:"message"`
	File    models.FileMetadata `json:"file"`
}
