package repository

import (
	"time"

	"med-adherence-api/internal/authz"
	"med-adherence-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdherenceCounts aggregates dose events inside an analytics window.
type AdherenceCounts struct {
	Total int64
	Taken int64
}

type ActivityRepository interface {
	Create(db *gorm.DB, activity *entity.Activity) error
	FindByID(db *gorm.DB, id int) (*entity.Activity, error)
	FindAllInScope(db *gorm.DB, scope authz.Scope) ([]entity.Activity, error)
	Update(db *gorm.DB, activity *entity.Activity) error
	Delete(db *gorm.DB, id int) (int64, error)
	// CountBetween aggregates the patient's activities with timestamps in
	// the half-open interval [since, until).
	CountBetween(db *gorm.DB, patientID uuid.UUID, since, until time.Time) (*AdherenceCounts, error)
	// FindHistory lists the patient's activities newest first, optionally
	// bounded by inclusive calendar dates (time-of-day ignored).
	FindHistory(db *gorm.DB, patientID uuid.UUID, start, end *time.Time) ([]entity.Activity, error)
}
