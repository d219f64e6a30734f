package converter

import (
	"med-adherence-api/internal/delivery/dto"
	"med-adherence-api/internal/domain/entity"
)

func NotificationToResponse(notification *entity.Notification) *dto.NotificationResponse {
	if notification == nil {
		return nil
	}
	return &dto.NotificationResponse{
		ID:        notification.ID,
		PatientID: notification.PatientID,
		Message:   notification.Message,
		SentAt:    notification.SentAt,
	}
}

func NotificationsToResponses(notifications []entity.Notification) []dto.NotificationResponse {
	responses := make([]dto.NotificationResponse, len(notifications))
	for i := range notifications {
		responses[i] = *NotificationToResponse(&notifications[i])
	}
	return responses
}
