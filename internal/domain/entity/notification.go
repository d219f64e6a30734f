package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a logged informational message for a patient. There are no
// delivery-guarantee semantics; creating one records it, nothing more.
type Notification struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	SentAt    time.Time `gorm:"not null" json:"sent_at"`

	// Relationships
	Patient PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Notification) TableName() string {
	return "notifications"
}
