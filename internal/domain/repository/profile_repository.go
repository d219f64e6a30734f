package repository

import (
	"med-adherence-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientProfileRepository interface {
	Create(db *gorm.DB, profile *entity.PatientProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.PatientProfile, error)
	Update(db *gorm.DB, profile *entity.PatientProfile) error
}

type DoctorProfileRepository interface {
	Create(db *gorm.DB, profile *entity.DoctorProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error)
	Update(db *gorm.DB, profile *entity.DoctorProfile) error
	// FindAssignedPatientIDs returns the doctor's current assignment set.
	// A doctor without a profile yields an empty set, not an error.
	FindAssignedPatientIDs(db *gorm.DB, doctorID uuid.UUID) ([]uuid.UUID, error)
	// ReplacePatients swaps the assignment set for the given patient profiles.
	ReplacePatients(db *gorm.DB, profile *entity.DoctorProfile, patients []entity.PatientProfile) error
}
