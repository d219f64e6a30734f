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
	ErrActivityNotFound = errors.New("activity not found")
	ErrInvalidTimestamp = errors.New("invalid timestamp, use RFC 3339")
)

type ActivityUsecase interface {
	ListActivities(ctx context.Context, userID uuid.UUID, role entity.Role) (*dto.ActivityListResponse, error)
	GetActivity(ctx context.Context, userID uuid.UUID, role entity.Role, id int) (*dto.ActivityResponse, error)
	CreateActivity(ctx context.Context, userID uuid.UUID, role entity.Role, req *dto.CreateActivityRequest) (*dto.ActivityResponse, error)
	UpdateActivity(ctx context.Context, userID uuid.UUID, role entity.Role, id int, req *dto.UpdateActivityRequest) (*dto.ActivityResponse, error)
	DeleteActivity(ctx context.Context, userID uuid.UUID, role entity.Role, id int) error
}

type activityUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	activityRepo      repository.ActivityRepository
	scheduleRepo      repository.ScheduleRepository
	doctorProfileRepo repository.DoctorProfileRepository
}

func NewActivityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	activityRepo repository.ActivityRepository,
	scheduleRepo repository.ScheduleRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
) ActivityUsecase {
	return &activityUsecase{
		db:                db,
		log:               log,
		activityRepo:      activityRepo,
		scheduleRepo:      scheduleRepo,
		doctorProfileRepo: doctorProfileRepo,
	}
}

func (u *activityUsecase) ListActivities(ctx context.Context, userID uuid.UUID, role entity.Role) (*dto.ActivityListResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := resolveActor(db, u.doctorProfileRepo, userID, role)
	if err != nil {
		u.log.Warnf("Failed to resolve actor: %+v", err)
		return nil, err
	}

	activities, err := u.activityRepo.FindAllInScope(db, actor.PatientScope())
	if err != nil {
		u.log.Warnf("Failed to list activities: %+v", err)
		return nil, err
	}

	responses := converter.ActivitiesToResponses(activities)
	return &dto.ActivityListResponse{Activities: responses, Total: len(responses)}, nil
}

func (u *activityUsecase) GetActivity(ctx context.Context, userID uuid.UUID, role entity.Role, id int) (*dto.ActivityResponse, error) {
	db := u.db.WithContext(ctx)
	activity, err := u.activityRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find activity: %+v", err)
		return nil, err
	}
	if activity == nil {
		return nil, ErrActivityNotFound
	}

	actor, err := resolveActor(db, u.doctorProfileRepo, userID, role)
	if err != nil {
		return nil, err
	}
	if err := authz.AuthorizeActivity(actor, authz.ActionRead, activity.Schedule.PatientID); err != nil {
		return nil, err
	}

	return converter.ActivityToResponse(activity), nil
}

// CreateActivity records a dose event. Doctors may log doses for assigned
// patients; the mutation ban only covers update and delete.
func (u *activityUsecase) CreateActivity(ctx context.Context, userID uuid.UUID, role entity.Role, req *dto.CreateActivityRequest) (*dto.ActivityResponse, error) {
	db := u.db.WithContext(ctx)
	schedule, err := u.scheduleRepo.FindByID(db, req.ScheduleID)
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
	if err := authz.AuthorizeActivity(actor, authz.ActionCreate, schedule.PatientID); err != nil {
		return nil, err
	}

	dateTime := time.Now()
	if req.DateTime != "" {
		parsed, err := time.Parse(time.RFC3339, req.DateTime)
		if err != nil {
			return nil, ErrInvalidTimestamp
		}
		dateTime = parsed
	}

	activity := &entity.Activity{
		ScheduleID:           req.ScheduleID,
		DateTime:             dateTime,
		Status:               req.Status,
		Notes:                req.Notes,
		BloodPressureReading: req.BloodPressureReading,
	}

	if err := u.activityRepo.Create(db, activity); err != nil {
		u.log.Warnf("Failed to create activity: %+v", err)
		return nil, err
	}

	return converter.ActivityToResponse(activity), nil
}

func (u *activityUsecase) UpdateActivity(ctx context.Context, userID uuid.UUID, role entity.Role, id int, req *dto.UpdateActivityRequest) (*dto.ActivityResponse, error) {
	db := u.db.WithContext(ctx)
	activity, err := u.activityRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find activity: %+v", err)
		return nil, err
	}
	if activity == nil {
		return nil, ErrActivityNotFound
	}

	actor, err := resolveActor(db, u.doctorProfileRepo, userID, role)
	if err != nil {
		return nil, err
	}
	if err := authz.AuthorizeActivity(actor, authz.ActionUpdate, activity.Schedule.PatientID); err != nil {
		return nil, err
	}

	if req.DateTime != nil {
		parsed, err := time.Parse(time.RFC3339, *req.DateTime)
		if err != nil {
			return nil, ErrInvalidTimestamp
		}
		activity.DateTime = parsed
	}
	if req.Status != nil {
		activity.Status = *req.Status
	}
	if req.Notes != nil {
		activity.Notes = *req.Notes
	}
	if req.BloodPressureReading != nil {
		activity.BloodPressureReading = *req.BloodPressureReading
	}

	activity.Schedule = entity.MedicationSchedule{}
	if err := u.activityRepo.Update(db, activity); err != nil {
		u.log.Warnf("Failed to update activity: %+v", err)
		return nil, err
	}

	return converter.ActivityToResponse(activity), nil
}

func (u *activityUsecase) DeleteActivity(ctx context.Context, userID uuid.UUID, role entity.Role, id int) error {
	db := u.db.WithContext(ctx)
	activity, err := u.activityRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find activity: %+v", err)
		return err
	}
	if activity == nil {
		return ErrActivityNotFound
	}

	actor, err := resolveActor(db, u.doctorProfileRepo, userID, role)
	if err != nil {
		return err
	}
	if err := authz.AuthorizeActivity(actor, authz.ActionDelete, activity.Schedule.PatientID); err != nil {
		return err
	}

	if _, err := u.activityRepo.Delete(db, id); err != nil {
		u.log.Warnf("Failed to delete activity: %+v", err)
		return err
	}
	return nil
}
