package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kickstartvisuals/studio-backend/internal/dto"
	"github.com/kickstartvisuals/studio-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrProjectNotFound = errors.New("project not found")

const initialProjectMessage = "New project submitted"

// ProjectService handles the project ledger: creation, listing, admin
// status updates and file metadata appends.
type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

// Create persists a new project and, in the same transaction, the initial
// thread message attributed to the creator.
func (s *ProjectService) Create(owner *models.User, req *dto.CreateProjectRequest) (uuid.UUID, error) {
	if req.Name == "" || req.Email == "" || req.SelectedService == "" || req.Description == "" {
		return uuid.Nil, fmt.Errorf("%w: name, email, selected_service and description are required", ErrValidation)
	}

	project := models.Project{
		ID:              uuid.New(),
		UserID:          owner.ID,
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		SelectedService: req.SelectedService,
		Description:     req.Description,
		Budget:          req.Budget,
		Status:          models.StatusPending,
		Files:           datatypes.JSON([]byte("[]")),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&project).Error; err != nil {
			return err
		}
		msg := models.Message{
			ID:         uuid.New(),
			ProjectID:  project.ID,
			SenderID:   owner.ID,
			SenderRole: senderRole(owner),
			Content:    initialProjectMessage,
		}
		return tx.Create(&msg).Error
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project.ID, nil
}

// ListMine returns the caller's projects. Order is whatever the store
// yields; clients that need a stable order sort themselves (kept as-is from
// the published contract, see DESIGN.md).
func (s *ProjectService) ListMine(ownerID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	if err := s.db.Where("user_id = ?", ownerID).Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// ListAll returns every project, newest first, with optional equality
// filters. Admin gating happens in middleware before this is reached.
func (s *ProjectService) ListAll(service, status string) ([]models.Project, error) {
	query := s.db.Model(&models.Project{})
	if service != "" {
		query = query.Where("selected_service = ?", service)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var projects []models.Project
	if err := query.Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// UpdateStatus sets the status and, only when supplied, the notes. An
// unknown project id is a successful no-op: the update matches zero rows
// and the caller still gets an ack (kept as-is, see DESIGN.md).
func (s *ProjectService) UpdateStatus(projectID uuid.UUID, req *dto.StatusUpdateRequest) error {
	if req.Status == "" {
		return fmt.Errorf("%w: status is required", ErrValidation)
	}

	updates := map[string]interface{}{"status": req.Status}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	return s.db.Model(&models.Project{}).Where("id = ?", projectID).Updates(updates).Error
}

// AttachFile appends file metadata to the project's files array. Callers
// who neither own the project nor hold the admin flag get ErrProjectNotFound
// rather than a forbidden error, so probing cannot reveal which ids exist.
func (s *ProjectService) AttachFile(projectID uuid.UUID, meta models.FileMetadata, uploader *models.User) (*models.FileMetadata, error) {
	var project models.Project
	query := s.db.Where("id = ?", projectID)
	if !uploader.IsAdmin {
		query = query.Where("user_id = ?", uploader.ID)
	}
	if err := query.First(&project).Error; err != nil {
		return nil, ErrProjectNotFound
	}

	if meta.UploadedAt.IsZero() {
		meta.UploadedAt = time.Now().UTC()
	}

	element, err := json.Marshal([]models.FileMetadata{meta})
	if err != nil {
		return nil, fmt.Errorf("failed to encode file metadata: %w", err)
	}

	// Single atomic jsonb append; concurrent uploads cannot lose entries.
	err = s.db.Model(&models.Project{}).
		Where("id = ?", projectID).
		Update("files", gorm.Expr("files || ?::jsonb", string(element))).Error
	if err != nil {
		return nil, fmt.Errorf("failed to append file metadata: %w", err)
	}

	return &meta, nil
}

// GetByID looks a project up without any ownership filter.
func (s *ProjectService) GetByID(projectID uuid.UUID) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, "id = ?", projectID).Error; err != nil {
		return nil, ErrProjectNotFound
	}
	return &project, nil
}

func senderRole(u *models.User) string {
	if u.IsAdmin {
		return models.RoleAdmin
	}
	return models.RoleCustomer
}
