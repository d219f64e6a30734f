package repository

import (
	"med-adherence-api/internal/authz"
	"med-adherence-api/internal/domain/entity"

	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(db *gorm.DB, notification *entity.Notification) error
	FindAllInScope(db *gorm.DB, scope authz.Scope) ([]entity.Notification, error)
}
