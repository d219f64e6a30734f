package usecase

import (
	"time"

	"med-adherence-api/internal/domain/entity"
	"med-adherence-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// applyUserUpdate mutates a user's account fields and role profile inside an
// open transaction. Shared by the self-service profile endpoint and the
// admin user-management endpoint; only the fields matching the user's role
// are touched.
func applyUserUpdate(
	tx *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	patientProfileRepo repository.PatientProfileRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	user *entity.User,
	email, dateOfBirth, medicalHistory, specialization *string,
	patients []string,
) error {
	if email != nil {
		user.Email = *email
		if err := userRepo.Update(tx, user); err != nil {
			log.Warnf("Failed to update user: %+v", err)
			return err
		}
	}

	switch user.Role {
	case entity.RolePatient:
		if dateOfBirth == nil && medicalHistory == nil {
			return nil
		}
		profile, err := patientProfileRepo.FindByUserID(tx, user.ID)
		if err != nil {
			log.Warnf("Failed to find patient profile: %+v", err)
			return err
		}
		if profile == nil {
			return nil
		}
		if dateOfBirth != nil {
			dob, err := time.Parse("2006-01-02", *dateOfBirth)
			if err != nil {
				return ErrInvalidDateFormat
			}
			profile.DateOfBirth = &dob
		}
		if medicalHistory != nil {
			profile.MedicalHistory = *medicalHistory
		}
		if err := patientProfileRepo.Update(tx, profile); err != nil {
			log.Warnf("Failed to update patient profile: %+v", err)
			return err
		}
	case entity.RoleDoctor:
		if specialization == nil && patients == nil {
			return nil
		}
		profile, err := doctorProfileRepo.FindByUserID(tx, user.ID)
		if err != nil {
			log.Warnf("Failed to find doctor profile: %+v", err)
			return err
		}
		if profile == nil {
			return nil
		}
		if specialization != nil {
			profile.Specialization = *specialization
			if err := doctorProfileRepo.Update(tx, profile); err != nil {
				log.Warnf("Failed to update doctor profile: %+v", err)
				return err
			}
		}
		if patients != nil {
			assigned := make([]entity.PatientProfile, 0, len(patients))
			for _, raw := range patients {
				id, err := uuid.Parse(raw)
				if err != nil {
					return ErrPatientNotFound
				}
				patient, err := patientProfileRepo.FindByUserID(tx, id)
				if err != nil {
					log.Warnf("Failed to find patient profile: %+v", err)
					return err
				}
				if patient == nil {
					return ErrPatientNotFound
				}
				assigned = append(assigned, entity.PatientProfile{UserID: patient.UserID})
			}
			if err := doctorProfileRepo.ReplacePatients(tx, profile, assigned); err != nil {
				log.Warnf("Failed to replace assigned patients: %+v", err)
				return err
			}
		}
	}

	return nil
}
