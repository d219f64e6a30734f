package repository

import (
	"errors"

	"med-adherence-api/internal/domain/entity"
	domainRepo "med-adherence-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorProfileRepository struct{}

func NewDoctorProfileRepository() domainRepo.DoctorProfileRepository {
	return &doctorProfileRepository{}
}

func (r *doctorProfileRepository) Create(db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.Create(profile).Error
}

func (r *doctorProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	var profile entity.DoctorProfile
	err := db.Preload("Patients").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *doctorProfileRepository) Update(db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.Omit("User", "Patients").Save(profile).Error
}

func (r *doctorProfileRepository) FindAssignedPatientIDs(db *gorm.DB, doctorID uuid.UUID) ([]uuid.UUID, error) {
	profile, err := r.FindByUserID(db, doctorID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}
	ids := make([]uuid.UUID, 0, len(profile.Patients))
	for _, patient := range profile.Patients {
		ids = append(ids, patient.UserID)
	}
	return ids, nil
}

func (r *doctorProfileRepository) ReplacePatients(db *gorm.DB, profile *entity.DoctorProfile, patients []entity.PatientProfile) error {
	return db.Model(profile).Association("Patients").Replace(patients)
}
