package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/kickstartvisuals/studio-backend/internal/models"
	"gorm.io/gorm"
)

// MessageService is the append-only per-project thread. Reads and writes
// require the project to exist but do not check thread ownership; any
// authenticated user can post to or read an existing project's thread.
// That matches the published behavior and is flagged as a known gap in
// DESIGN.md rather than silently tightened here.
type MessageService struct {
	db *gorm.DB
}

func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{db: db}
}

func (s *MessageService) Send(projectID uuid.UUID, sender *models.User, content string) error {
	if content == "" {
		return fmt.Errorf("%w: content is required", ErrValidation)
	}

	var count int64
	if err := s.db.Model(&models.Project{}).Where("id = ?", projectID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrProjectNotFound
	}

	msg := models.Message{
		ID:         uuid.New(),
		ProjectID:  projectID,
		SenderID:   sender.ID,
		SenderRole: senderRole(sender),
		Content:    content,
	}

	if err := s.db.Create(&msg).Error; err != nil {
		return fmt.Errorf("failed to store message: %w", err)
	}
	return nil
}

func (s *MessageService) List(projectID uuid.UUID) ([]models.Message, error) {
	var messages []models.Message
	err := s.db.Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
