package authz

import (
	"testing"

	"med-adherence-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPatientScope_Admin(t *testing.T) {
	actor := Actor{UserID: uuid.New(), Role: entity.RoleAdmin}

	scope := actor.PatientScope()
	assert.True(t, scope.All())
	assert.True(t, scope.Contains(uuid.New()))
}

func TestPatientScope_Patient(t *testing.T) {
	selfID := uuid.New()
	actor := Actor{UserID: selfID, Role: entity.RolePatient}

	scope := actor.PatientScope()
	assert.False(t, scope.All())
	assert.True(t, scope.Contains(selfID))
	assert.False(t, scope.Contains(uuid.New()))
}

func TestPatientScope_Doctor(t *testing.T) {
	assigned := uuid.New()
	other := uuid.New()
	actor := Actor{
		UserID:           uuid.New(),
		Role:             entity.RoleDoctor,
		AssignedPatients: []uuid.UUID{assigned},
	}

	scope := actor.PatientScope()
	assert.False(t, scope.All())
	assert.True(t, scope.Contains(assigned))
	assert.False(t, scope.Contains(other))
}

func TestPatientScope_DoctorWithoutAssignments(t *testing.T) {
	actor := Actor{UserID: uuid.New(), Role: entity.RoleDoctor}

	scope := actor.PatientScope()
	assert.False(t, scope.All())
	assert.False(t, scope.Contains(actor.UserID))
	assert.False(t, scope.Contains(uuid.New()))
}

func TestPatientScope_UnknownRole(t *testing.T) {
	actor := Actor{UserID: uuid.New(), Role: entity.Role("nurse")}

	scope := actor.PatientScope()
	assert.False(t, scope.All())
	assert.False(t, scope.Contains(actor.UserID))
}

func TestAuthorize_AdminAlwaysAllowed(t *testing.T) {
	actor := Actor{UserID: uuid.New(), Role: entity.RoleAdmin}

	for _, action := range []Action{ActionRead, ActionCreate, ActionUpdate, ActionDelete} {
		assert.NoError(t, Authorize(actor, action, uuid.New()))
	}
}

func TestAuthorize_PatientOwnRecordsOnly(t *testing.T) {
	selfID := uuid.New()
	actor := Actor{UserID: selfID, Role: entity.RolePatient}

	assert.NoError(t, Authorize(actor, ActionRead, selfID))
	assert.NoError(t, Authorize(actor, ActionUpdate, selfID))

	err := Authorize(actor, ActionRead, uuid.New())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAuthorize_DoctorAssignedPatientsOnly(t *testing.T) {
	assigned := uuid.New()
	actor := Actor{
		UserID:           uuid.New(),
		Role:             entity.RoleDoctor,
		AssignedPatients: []uuid.UUID{assigned},
	}

	assert.NoError(t, Authorize(actor, ActionRead, assigned))
	assert.NoError(t, Authorize(actor, ActionUpdate, assigned))
	assert.ErrorIs(t, Authorize(actor, ActionRead, uuid.New()), ErrForbidden)
}

func TestAuthorize_DoctorCannotAccessOwnID(t *testing.T) {
	// A doctor's own user ID is not a patient ID; it only grants access if
	// that same ID happens to be in the assignment set.
	actor := Actor{UserID: uuid.New(), Role: entity.RoleDoctor}
	assert.ErrorIs(t, Authorize(actor, ActionRead, actor.UserID), ErrForbidden)
}

func TestAuthorizeActivity_DoctorCannotMutate(t *testing.T) {
	assigned := uuid.New()
	actor := Actor{
		UserID:           uuid.New(),
		Role:             entity.RoleDoctor,
		AssignedPatients: []uuid.UUID{assigned},
	}

	// Reads and creates pass for assigned patients.
	assert.NoError(t, AuthorizeActivity(actor, ActionRead, assigned))
	assert.NoError(t, AuthorizeActivity(actor, ActionCreate, assigned))

	// Updates and deletes are denied even on the assigned patient.
	assert.ErrorIs(t, AuthorizeActivity(actor, ActionUpdate, assigned), ErrForbidden)
	assert.ErrorIs(t, AuthorizeActivity(actor, ActionDelete, assigned), ErrForbidden)
}

func TestAuthorizeActivity_PatientAndAdminMayMutate(t *testing.T) {
	selfID := uuid.New()
	patient := Actor{UserID: selfID, Role: entity.RolePatient}
	admin := Actor{UserID: uuid.New(), Role: entity.RoleAdmin}

	assert.NoError(t, AuthorizeActivity(patient, ActionUpdate, selfID))
	assert.NoError(t, AuthorizeActivity(patient, ActionDelete, selfID))
	assert.NoError(t, AuthorizeActivity(admin, ActionUpdate, selfID))
	assert.NoError(t, AuthorizeActivity(admin, ActionDelete, selfID))
}

func TestAuthorizeUserWrite(t *testing.T) {
	assert.NoError(t, AuthorizeUserWrite(Actor{Role: entity.RoleAdmin}))
	assert.ErrorIs(t, AuthorizeUserWrite(Actor{Role: entity.RoleDoctor}), ErrForbidden)
	assert.ErrorIs(t, AuthorizeUserWrite(Actor{Role: entity.RolePatient}), ErrForbidden)
}

// A record is readable exactly when a scoped list would include it, for every
// role. Both sides of the comparison consume the same scope value.
func TestAuthorize_ConsistentWithScope(t *testing.T) {
	assigned := uuid.New()
	patientID := uuid.New()
	targets := []uuid.UUID{assigned, patientID, uuid.New()}

	actors := []Actor{
		{UserID: uuid.New(), Role: entity.RoleAdmin},
		{UserID: patientID, Role: entity.RolePatient},
		{UserID: uuid.New(), Role: entity.RoleDoctor, AssignedPatients: []uuid.UUID{assigned}},
		{UserID: uuid.New(), Role: entity.RoleDoctor},
	}

	for _, actor := range actors {
		scope := actor.PatientScope()
		for _, target := range targets {
			err := Authorize(actor, ActionRead, target)
			if scope.Contains(target) {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrForbidden)
			}
		}
	}
}
