package dto

import "github.com/google/uuid"

// Request DTOs

type CreateScheduleRequest struct {
	PatientID      uuid.UUID `json:"patient_id" validate:"required"`
	MedicationName string    `json:"medication_name" validate:"required,max=120"`
	Dosage         string    `json:"dosage" validate:"required,max=60"`
	Frequency      string    `json:"frequency" validate:"required,max=60"` // e.g. "once daily"
	StartDate      string    `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate        string    `json:"end_date" validate:"required,datetime=2006-01-02"`
}

type UpdateScheduleRequest struct {
	MedicationName *string `json:"medication_name" validate:"omitempty,max=120"`
	Dosage         *string `json:"dosage" validate:"omitempty,max=60"`
	Frequency      *string `json:"frequency" validate:"omitempty,max=60"`
	StartDate      *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate        *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

// Response DTOs

type ScheduleResponse struct {
	ID             int       `json:"id"`
	PatientID      uuid.UUID `json:"patient_id"`
	MedicationName string    `json:"medication_name"`
	Dosage         string    `json:"dosage"`
	Frequency      string    `json:"frequency"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
}

type ScheduleListResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
	Total     int                `json:"total"`
}
