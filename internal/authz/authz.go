package authz

import (
	"errors"

	"med-adherence-api/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrForbidden is the single denial value. An actor with a missing profile is
// denied, never errored.
var ErrForbidden = errors.New("you do not have permission to perform this action")

type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Actor is the authenticated identity a request acts as. AssignedPatients is
// the doctor's current assignment set, loaded fresh per request; it stays nil
// for other roles and for doctors without a profile.
type Actor struct {
	UserID           uuid.UUID
	Role             entity.Role
	AssignedPatients []uuid.UUID
}

// Scope is the set of patients visible to an actor. Both the per-object
// authorization decision and list filtering consume the same scope value, so
// a record passes Authorize(read) exactly when a scoped list would include it.
type Scope struct {
	all        bool
	patientIDs []uuid.UUID
}

// All reports whether the scope covers every patient.
func (s Scope) All() bool { return s.all }

// PatientIDs returns the explicit patient set. Meaningless when All is true.
func (s Scope) PatientIDs() []uuid.UUID { return s.patientIDs }

// Contains reports whether the given patient falls inside the scope.
func (s Scope) Contains(patientID uuid.UUID) bool {
	if s.all {
		return true
	}
	for _, id := range s.patientIDs {
		if id == patientID {
			return true
		}
	}
	return false
}

// PatientScope derives the visible patient set from the actor's role:
// admins see everyone, patients see themselves, doctors see their assignment
// set. The switch is exhaustive over the role enum; anything else sees nothing.
func (a Actor) PatientScope() Scope {
	switch a.Role {
	case entity.RoleAdmin:
		return Scope{all: true}
	case entity.RolePatient:
		return Scope{patientIDs: []uuid.UUID{a.UserID}}
	case entity.RoleDoctor:
		return Scope{patientIDs: a.AssignedPatients}
	}
	return Scope{}
}

// Authorize decides whether the actor may perform action on a record that
// resolves to the given patient. The same rule governs reads, writes and the
// write-time ownership check on creation: the declared target patient must be
// inside the actor's scope.
func Authorize(actor Actor, action Action, patientID uuid.UUID) error {
	if actor.PatientScope().Contains(patientID) {
		return nil
	}
	return ErrForbidden
}

// AuthorizeActivity layers the dose-log restriction on top of Authorize:
// doctors may record and read activity for assigned patients but never
// modify or remove it, assignment notwithstanding. Only the patient or an
// admin corrects a dose log.
func AuthorizeActivity(actor Actor, action Action, patientID uuid.UUID) error {
	if actor.Role == entity.RoleDoctor && (action == ActionUpdate || action == ActionDelete) {
		return ErrForbidden
	}
	return Authorize(actor, action, patientID)
}

// AuthorizeUserWrite guards resources with no patient affiliation. Only
// admins may manage other users; self reads/updates go through the profile
// endpoint instead.
func AuthorizeUserWrite(actor Actor) error {
	if actor.Role == entity.RoleAdmin {
		return nil
	}
	return ErrForbidden
}
