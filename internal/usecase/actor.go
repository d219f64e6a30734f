package usecase

import (
	"med-adherence-api/internal/authz"
	"med-adherence-api/internal/domain/entity"
	domainRepo "med-adherence-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// resolveActor builds the authorization actor for a request. Doctor
// assignment sets are read live on every call: un-assigning a patient takes
// effect immediately, there is no snapshotting.
func resolveActor(db *gorm.DB, doctorProfileRepo domainRepo.DoctorProfileRepository, userID uuid.UUID, role entity.Role) (authz.Actor, error) {
	actor := authz.Actor{UserID: userID, Role: role}
	if role == entity.RoleDoctor {
		ids, err := doctorProfileRepo.FindAssignedPatientIDs(db, userID)
		if err != nil {
			return actor, err
		}
		actor.AssignedPatients = ids
	}
	return actor, nil
}
