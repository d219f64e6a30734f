package repository

import (
	"med-adherence-api/internal/authz"
	"med-adherence-api/internal/domain/entity"
	domainRepo "med-adherence-api/internal/domain/repository"

	"gorm.io/gorm"
)

type notificationRepository struct{}

func NewNotificationRepository() domainRepo.NotificationRepository {
	return &notificationRepository{}
}

func (r *notificationRepository) Create(db *gorm.DB, notification *entity.Notification) error {
	return db.Create(notification).Error
}

func (r *notificationRepository) FindAllInScope(db *gorm.DB, scope authz.Scope) ([]entity.Notification, error) {
	var notifications []entity.Notification
	query := db.Order("sent_at DESC")
	if !scope.All() {
		query = query.Where("patient_id IN ?", scope.PatientIDs())
	}
	if err := query.Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}
