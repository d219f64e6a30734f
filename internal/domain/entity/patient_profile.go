package entity

import (
	"time"

	"github.com/google/uuid"
)

// PatientProfile holds patient-specific medical metadata. The profile shares
// its primary key with the owning user, so the patient identifier seen in
// URLs is the patient user's ID.
type PatientProfile struct {
	UserID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	DateOfBirth    *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	MedicalHistory string     `gorm:"type:text" json:"medical_history,omitempty"`

	// Relationships
	User          User                 `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Schedules     []MedicationSchedule `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"schedules,omitempty"`
	Notifications []Notification       `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"notifications,omitempty"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}
