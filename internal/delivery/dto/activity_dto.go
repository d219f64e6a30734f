package dto

import "time"

// Request DTOs

type CreateActivityRequest struct {
	ScheduleID           int    `json:"schedule_id" validate:"required"`
	DateTime             string `json:"date_time" validate:"omitempty"` // RFC 3339; defaults to now
	Status               string `json:"status" validate:"required,oneof=taken missed"`
	Notes                string `json:"notes"`
	BloodPressureReading string `json:"blood_pressure_reading" validate:"omitempty,max=15"`
}

type UpdateActivityRequest struct {
	DateTime             *string `json:"date_time" validate:"omitempty"`
	Status               *string `json:"status" validate:"omitempty,oneof=taken missed"`
	Notes                *string `json:"notes"`
	BloodPressureReading *string `json:"blood_pressure_reading" validate:"omitempty,max=15"`
}

// Response DTOs

type ActivityResponse struct {
	ID                   int       `json:"id"`
	ScheduleID           int       `json:"schedule_id"`
	DateTime             time.Time `json:"date_time"`
	Status               string    `json:"status"`
	Notes                string    `json:"notes,omitempty"`
	BloodPressureReading string    `json:"blood_pressure_reading,omitempty"`
}

type ActivityListResponse struct {
	Activities []ActivityResponse `json:"activities"`
	Total      int                `json:"total"`
}
