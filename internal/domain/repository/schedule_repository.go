package repository

import (
	"med-adherence-api/internal/authz"
	"med-adherence-api/internal/domain/entity"

	"gorm.io/gorm"
)

type ScheduleRepository interface {
	Create(db *gorm.DB, schedule *entity.MedicationSchedule) error
	FindByID(db *gorm.DB, id int) (*entity.MedicationSchedule, error)
	// FindAllInScope lists schedules whose patient falls inside the scope,
	// so list visibility always matches the authorization decision.
	FindAllInScope(db *gorm.DB, scope authz.Scope) ([]entity.MedicationSchedule, error)
	Update(db *gorm.DB, schedule *entity.MedicationSchedule) error
	Delete(db *gorm.DB, id int) (int64, error)
}
