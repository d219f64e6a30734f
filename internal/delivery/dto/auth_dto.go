package dto

// Request DTOs

// RegisterRequest carries the shared account fields plus the role-conditional
// profile fields: date_of_birth/medical_history apply to patients,
// specialization to doctors, neither to admins.
type RegisterRequest struct {
	Username       string `json:"username" validate:"required,min=3,max=150"`
	Email          string `json:"email" validate:"omitempty,email"`
	Password       string `json:"password" validate:"required,min=8"`
	Role           string `json:"role" validate:"required,oneof=patient doctor admin"`
	DateOfBirth    string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	MedicalHistory string `json:"medical_history" validate:"omitempty"`
	Specialization string `json:"specialization" validate:"omitempty,max=120"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

type LogoutRequest struct {
	Refresh string `json:"refresh"`
}

// UpdateProfileRequest updates the caller's own user record and role profile.
// Patients is the doctor assignment set, replaced wholesale when present.
type UpdateProfileRequest struct {
	Email          *string  `json:"email" validate:"omitempty,email"`
	DateOfBirth    *string  `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	MedicalHistory *string  `json:"medical_history"`
	Specialization *string  `json:"specialization" validate:"omitempty,max=120"`
	Patients       []string `json:"patients" validate:"omitempty,dive,uuid"`
}

// Response DTOs

type TokenResponse struct {
	Access    string `json:"access"`
	Refresh   string `json:"refresh"`
	ExpiresIn int64  `json:"expires_in"`
}
