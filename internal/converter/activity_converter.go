package converter

import (
	"med-adherence-api/internal/delivery/dto"
	"med-adherence-api/internal/domain/entity"
)

func ActivityToResponse(activity *entity.Activity) *dto.ActivityResponse {
	if activity == nil {
		return nil
	}
	return &dto.ActivityResponse{
		ID:                   activity.ID,
		ScheduleID:           activity.ScheduleID,
		DateTime:             activity.DateTime,
		Status:               activity.Status,
		Notes:                activity.Notes,
		BloodPressureReading: activity.BloodPressureReading,
	}
}

func ActivitiesToResponses(activities []entity.Activity) []dto.ActivityResponse {
	responses := make([]dto.ActivityResponse, len(activities))
	for i := range activities {
		responses[i] = *ActivityToResponse(&activities[i])
	}
	return responses
}
