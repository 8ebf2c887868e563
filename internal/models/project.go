package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Project statuses are open-ended strings; every project starts here.
const StatusPending = "Pending"

// Project is a customer's service request. The customer contact fields are
// a snapshot taken at submission time and may drift from the owner's
// current profile. UserID is a weak reference: looked up by id, never
// cascaded.
type Project struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	UserID          uuid.UUID      `gorm:"type:uuid;index" json:"user_id"`
	Name            string         `gorm:"size:255;not null" json:"name"`
	Email           string         `gorm:"size:255;not null" json:"email"`
	Phone           *string        `gorm:"size:50" json:"phone,omitempty"`
	SelectedService string         `gorm:"size:100;not null;index" json:"selected_service"`
	Description     string         `gorm:"type:text;not null" json:"description"`
	Budget          *string        `gorm:"size:100" json:"budget,omitempty"`
	Status          string         `gorm:"size:50;not null;default:'Pending';index" json:"status"`
	Notes           *string        `gorm:"type:text" json:"notes"`
	Files           datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'" json:"files"`
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// FileMetadata is one element of a project's Files array. Only metadata is
// kept; the uploaded bytes are discarded after the size is measured.
type FileMetadata struct {
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
