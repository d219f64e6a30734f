package usecase

import (
	"context"
	"time"

	"med-adherence-api/internal/converter"
	"med-adherence-api/internal/delivery/dto"
	"med-adherence-api/internal/domain/entity"
	"med-adherence-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type NotificationUsecase interface {
	ListNotifications(ctx context.Context, userID uuid.UUID, role entity.Role) (*dto.NotificationListResponse, error)
	SendNotification(ctx context.Context, req *dto.SendNotificationRequest) (*dto.NotificationResponse, error)
}

type notificationUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	notificationRepo   repository.NotificationRepository
	patientProfileRepo repository.PatientProfileRepository
	doctorProfileRepo  repository.DoctorProfileRepository
}

func NewNotificationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	notificationRepo repository.NotificationRepository,
	patientProfileRepo repository.PatientProfileRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
) NotificationUsecase {
	return &notificationUsecase{
		db:                 db,
		log:                log,
		notificationRepo:   notificationRepo,
		patientProfileRepo: patientProfileRepo,
		doctorProfileRepo:  doctorProfileRepo,
	}
}

func (u *notificationUsecase) ListNotifications(ctx context.Context, userID uuid.UUID, role entity.Role) (*dto.NotificationListResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := resolveActor(db, u.doctorProfileRepo, userID, role)
	if err != nil {
		u.log.Warnf("Failed to resolve actor: %+v", err)
		return nil, err
	}

	notifications, err := u.notificationRepo.FindAllInScope(db, actor.PatientScope())
	if err != nil {
		u.log.Warnf("Failed to list notifications: %+v", err)
		return nil, err
	}

	responses := converter.NotificationsToResponses(notifications)
	return &dto.NotificationListResponse{Notifications: responses, Total: len(responses)}, nil
}

// SendNotification records the message against the patient. Nothing is
// dispatched anywhere; a notification is a logged record.
func (u *notificationUsecase) SendNotification(ctx context.Context, req *dto.SendNotificationRequest) (*dto.NotificationResponse, error) {
	db := u.db.WithContext(ctx)
	patient, err := u.patientProfileRepo.FindByUserID(db, req.Patient)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	notification := &entity.Notification{
		PatientID: req.Patient,
		Message:   req.Message,
		SentAt:    time.Now(),
	}

	if err := u.notificationRepo.Create(db, notification); err != nil {
		u.log.Warnf("Failed to create notification: %+v", err)
		return nil, err
	}

	return converter.NotificationToResponse(notification), nil
}
