package converter

import (
	"med-adherence-api/internal/delivery/dto"
	"med-adherence-api/internal/domain/entity"
)

func ScheduleToResponse(schedule *entity.MedicationSchedule) *dto.ScheduleResponse {
	if schedule == nil {
		return nil
	}
	return &dto.ScheduleResponse{
		ID:             schedule.ID,
		PatientID:      schedule.PatientID,
		MedicationName: schedule.MedicationName,
		Dosage:         schedule.Dosage,
		Frequency:      schedule.Frequency,
		StartDate:      schedule.StartDate.Format("2006-01-02"),
		EndDate:        schedule.EndDate.Format("2006-01-02"),
	}
}

func SchedulesToResponses(schedules []entity.MedicationSchedule) []dto.ScheduleResponse {
	responses := make([]dto.ScheduleResponse, len(schedules))
	for i := range schedules {
		responses[i] = *ScheduleToResponse(&schedules[i])
	}
	return responses
}
