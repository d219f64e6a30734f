package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// UpdateUserRequest is the admin-side variant of profile updates.
type UpdateUserRequest struct {
	Email          *string  `json:"email" validate:"omitempty,email"`
	DateOfBirth    *string  `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	MedicalHistory *string  `json:"medical_history"`
	Specialization *string  `json:"specialization" validate:"omitempty,max=120"`
	Patients       []string `json:"patients" validate:"omitempty,dive,uuid"`
}

// Response DTOs

type PatientProfileResponse struct {
	UserID         uuid.UUID `json:"user_id"`
	DateOfBirth    string    `json:"date_of_birth,omitempty"`
	MedicalHistory string    `json:"medical_history,omitempty"`
}

type DoctorProfileResponse struct {
	UserID         uuid.UUID   `json:"user_id"`
	Specialization string      `json:"specialization,omitempty"`
	Patients       []uuid.UUID `json:"patients"`
}

type UserResponse struct {
	ID             uuid.UUID               `json:"id"`
	Username       string                  `json:"username"`
	Email          string                  `json:"email,omitempty"`
	Role           string                  `json:"role"`
	PatientProfile *PatientProfileResponse `json:"patient_profile,omitempty"`
	DoctorProfile  *DoctorProfileResponse  `json:"doctor_profile,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}
