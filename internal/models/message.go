package models

import (
	"time"

	"github.com/google/uuid"
)

// Sender roles, derived from the sender's admin flag at send time.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// Message is one immutable entry in a project's communication thread.
// Threads are append-only and read back ordered by CreatedAt ascending.
type Message struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	ProjectID  uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`
	SenderID   uuid.UUID `gorm:"type:uuid;not null" json:"sender_id"`
	SenderRole string    `gorm:"size:20;not null" json:"sender_role"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}
