package converter

import (
	"med-adherence-api/internal/delivery/dto"
	"med-adherence-api/internal/domain/entity"

	"github.com/google/uuid"
)

// UserToResponse converts a User entity (with whatever profile is loaded)
// to its response DTO.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if user.PatientProfile != nil {
		response.PatientProfile = PatientProfileToResponse(user.PatientProfile)
	}
	if user.DoctorProfile != nil {
		response.DoctorProfile = DoctorProfileToResponse(user.DoctorProfile)
	}

	return response
}

func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i := range users {
		responses[i] = *UserToResponse(&users[i])
	}
	return responses
}

func PatientProfileToResponse(profile *entity.PatientProfile) *dto.PatientProfileResponse {
	response := &dto.PatientProfileResponse{
		UserID:         profile.UserID,
		MedicalHistory: profile.MedicalHistory,
	}
	if profile.DateOfBirth != nil {
		response.DateOfBirth = profile.DateOfBirth.Format("2006-01-02")
	}
	return response
}

func DoctorProfileToResponse(profile *entity.DoctorProfile) *dto.DoctorProfileResponse {
	patients := make([]uuid.UUID, 0, len(profile.Patients))
	for _, patient := range profile.Patients {
		patients = append(patients, patient.UserID)
	}
	return &dto.DoctorProfileResponse{
		UserID:         profile.UserID,
		Specialization: profile.Specialization,
		Patients:       patients,
	}
}
