package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type SendNotificationRequest struct {
	Patient uuid.UUID `json:"patient" validate:"required"`
	Message string    `json:"message" validate:"required"`
}

// Response DTOs

type NotificationResponse struct {
	ID        int       `json:"id"`
	PatientID uuid.UUID `json:"patient_id"`
	Message   string    `json:"message"`
	SentAt    time.Time `json:"sent_at"`
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int                    `json:"total"`
}
