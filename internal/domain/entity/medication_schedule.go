package entity

import (
	"time"

	"github.com/google/uuid"
)

// MedicationSchedule represents a prescribed medication plan for one patient.
// EndDate must never precede StartDate; writes violating that are rejected
// before they reach the database.
type MedicationSchedule struct {
	ID             int       `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID      uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	MedicationName string    `gorm:"type:varchar(120);not null" json:"medication_name"`
	Dosage         string    `gorm:"type:varchar(60);not null" json:"dosage"`
	Frequency      string    `gorm:"type:varchar(60);not null" json:"frequency"`
	StartDate      time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate        time.Time `gorm:"type:date;not null" json:"end_date"`

	// Relationships
	Patient    PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Activities []Activity     `gorm:"foreignKey:ScheduleID;constraint:OnDelete:CASCADE" json:"activities,omitempty"`
}

func (MedicationSchedule) TableName() string {
	return "medication_schedules"
}
