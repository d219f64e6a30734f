package usecase

import (
	"context"
	"errors"
	"time"

	"med-adherence-api/internal/authz"
	"med-adherence-api/internal/converter"
	"med-adherence-api/internal/delivery/dto"
	"med-adherence-api/internal/domain/entity"
	"med-adherence-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrPatientNotFound  = errors.New("patient not found")
	ErrInvalidDateRange = errors.New("end_date cannot be earlier than start_date")
)

type ScheduleUsecase interface {
	ListSchedules(ctx context.Context, userID uuid.UUID, role entity.Role) (*dto.ScheduleListResponse, error)
	GetSchedule(ctx context.Context, userID uuid.UUID, role entity.Role, id int) (*dto.ScheduleResponse, error)
	CreateSchedule(ctx context.Context, userID uuid.UUID, role entity.Role, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error)
	UpdateSchedule(ctx context.Context, userID uuid.UUID, role entity.Role, id int, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error)
	DeleteSchedule(ctx context.Context, userID uuid.UUID, role entity.Role, id int) error
}

type scheduleUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	scheduleRepo       repository.ScheduleRepository
	patientProfileRepo repository.PatientProfileRepository
	doctorProfileRepo  repository.DoctorProfileRepository
}

func NewScheduleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	scheduleRepo repository.ScheduleRepository,
	patientProfileRepo repository.PatientProfileRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
) ScheduleUsecase {
	return &scheduleUsecase{
		db:                 db,
		log:                log,
		scheduleRepo:       scheduleRepo,
		patientProfileRepo: patientProfileRepo,
		doctorProfileRepo:  doctorProfileRepo,
	}
}

func (u *scheduleUsecase) ListSchedules(ctx context.Context, userID uuid.UUID, role entity.Role) (*dto.ScheduleListResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := resolveActor(db, u.doctorProfileRepo, userID, role)
	if err != nil {
		u.log.Warnf("Failed to resolve actor: %+v", err)
		return nil, err
	}

	schedules, err := u.scheduleRepo.FindAllInScope(db, actor.PatientScope())
	if err != nil {
		u.log.Warnf("Failed to list schedules: %+v", err)
		return nil, err
	}

	responses := converter.SchedulesToResponses(schedules)
	return &dto.ScheduleListResponse{Schedules: responses, Total: len(responses)}, nil
}

func (u *scheduleUsecase) GetSchedule(ctx context.Context, userID uuid.UUID, role entity.Role, id int) (*dto.ScheduleResponse, error) {
	db := u.db.WithContext(ctx)
	schedule, err := u.scheduleRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find schedule: %+v", err)
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	actor, err := resolveActor(db, u.doctorProfileRepo, userID, role)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(actor, authz.ActionRead, schedule.PatientID); err != nil {
		return nil, err
	}

	return converter.ScheduleToResponse(schedule), nil
}

// CreateSchedule applies the write-time ownership check: the declared target
// patient must pass the same rule as any read, so a patient can only create
// for themselves and a doctor only for assigned patients.
func (u *scheduleUsecase) CreateSchedule(ctx context.Context, userID uuid.UUID, role entity.Role, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := resolveActor(db, u.doctorProfileRepo, userID, role)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(actor, authz.ActionCreate, req.PatientID); err != nil {
		return nil, err
	}

	patient, err := u.patientProfileRepo.FindByUserID(db, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	startDate, endDate, err := parseDateRange(&req.StartDate, &req.EndDate, time.Time{}, time.Time{})
	if err != nil {
		return nil, err
	}

	schedule := &entity.MedicationSchedule{
		PatientID:      req.PatientID,
		MedicationName: req.MedicationName,
		Dosage:         req.Dosage,
		Frequency:      req.Frequency,
		StartDate:      startDate,
		EndDate:        endDate,
	}

	if err := u.scheduleRepo.Create(db, schedule); err != nil {
		u.log.Warnf("Failed to create schedule: %+v", err)
		return nil, err
	}

	return converter.ScheduleToResponse(schedule), nil
}

func (u *scheduleUsecase) UpdateSchedule(ctx context.Context, userID uuid.UUID, role entity.Role, id int, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error) {
	db := u.db.WithContext(ctx)
	schedule, err := u.scheduleRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find schedule: %+v", err)
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	actor, err := resolveActor(db, u.doctorProfileRepo, userID, role)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(actor, authz.ActionUpdate, schedule.PatientID); err != nil {
		return nil, err
	}

	if req.MedicationName != nil {
		schedule.MedicationName = *req.MedicationName
	}
	if req.Dosage != nil {
		schedule.Dosage = *req.Dosage
	}
	if req.Frequency != nil {
		schedule.Frequency = *req.Frequency
	}

	// Merge incoming dates with stored ones so the invariant holds on the
	// record as it will be persisted.
	startDate, endDate, err := parseDateRange(req.StartDate, req.EndDate, schedule.StartDate, schedule.EndDate)
	if err != nil {
		return nil, err
	}
	schedule.StartDate = startDate
	schedule.EndDate = endDate

	schedule.Patient = entity.PatientProfile{}
	if err := u.scheduleRepo.Update(db, schedule); err != nil {
		u.log.Warnf("Failed to update schedule: %+v", err)
		return nil, err
	}

	return converter.ScheduleToResponse(schedule), nil
}

func (u *scheduleUsecase) DeleteSchedule(ctx context.Context, userID uuid.UUID, role entity.Role, id int) error {
	db := u.db.WithContext(ctx)
	schedule, err := u.scheduleRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find schedule: %+v", err)
		return err
	}
	if schedule == nil {
		return ErrScheduleNotFound
	}

	actor, err := resolveActor(db, u.doctorProfileRepo, userID, role)
	if err != nil {
		return err
	}
	if err := authz.Authorize(actor, authz.ActionDelete, schedule.PatientID); err != nil {
		return err
	}

	if _, err := u.scheduleRepo.Delete(db, id); err != nil {
		u.log.Warnf("Failed to delete schedule: %+v", err)
		return err
	}
	return nil
}

// parseDateRange merges optional incoming date strings with the currently
// stored values and enforces end >= start. Rejected writes never reach the
// repository, regardless of the actor's role.
func parseDateRange(startStr, endStr *string, currentStart, currentEnd time.Time) (time.Time, time.Time, error) {
	start, end := currentStart, currentEnd

	if startStr != nil {
		parsed, err := time.Parse("2006-01-02", *startStr)
		if err != nil {
			return start, end, ErrInvalidDateFormat
		}
		start = parsed
	}
	if endStr != nil {
		parsed, err := time.Parse("2006-01-02", *endStr)
		if err != nil {
			return start, end, ErrInvalidDateFormat
		}
		end = parsed
	}

	if end.Before(start) {
		return start, end, ErrInvalidDateRange
	}
	return start, end, nil
}
