package repository

import (
	"errors"
	"time"

	"med-adherence-api/internal/authz"
	"med-adherence-api/internal/domain/entity"
	domainRepo "med-adherence-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type activityRepository struct{}

func NewActivityRepository() domainRepo.ActivityRepository {
	return &activityRepository{}
}

func (r *activityRepository) Create(db *gorm.DB, activity *entity.Activity) error {
	return db.Create(activity).Error
}

func (r *activityRepository) FindByID(db *gorm.DB, id int) (*entity.Activity, error) {
	var activity entity.Activity
	err := db.Preload("Schedule").Where("id = ?", id).First(&activity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) FindAllInScope(db *gorm.DB, scope authz.Scope) ([]entity.Activity, error) {
	var activities []entity.Activity
	query := db.Preload("Schedule").Order("activities.date_time DESC")
	if !scope.All() {
		query = query.
			Joins("JOIN medication_schedules ON medication_schedules.id = activities.schedule_id").
			Where("medication_schedules.patient_id IN ?", scope.PatientIDs())
	}
	if err := query.Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) Update(db *gorm.DB, activity *entity.Activity) error {
	return db.Omit("Schedule").Save(activity).Error
}

func (r *activityRepository) Delete(db *gorm.DB, id int) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.Activity{})
	return affected.RowsAffected, affected.Error
}

func (r *activityRepository) CountBetween(db *gorm.DB, patientID uuid.UUID, since, until time.Time) (*domainRepo.AdherenceCounts, error) {
	counts := &domainRepo.AdherenceCounts{}

	// The upper bound keeps future-dated doses out of every window.
	base := func() *gorm.DB {
		return db.Model(&entity.Activity{}).
			Joins("JOIN medication_schedules ON medication_schedules.id = activities.schedule_id").
			Where("medication_schedules.patient_id = ?", patientID).
			Where("activities.date_time >= ?", since).
			Where("activities.date_time < ?", until)
	}

	if err := base().Count(&counts.Total).Error; err != nil {
		return nil, err
	}
	if err := base().Where("activities.status = ?", entity.ActivityTaken).Count(&counts.Taken).Error; err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *activityRepository) FindHistory(db *gorm.DB, patientID uuid.UUID, start, end *time.Time) ([]entity.Activity, error) {
	query := db.
		Joins("JOIN medication_schedules ON medication_schedules.id = activities.schedule_id").
		Where("medication_schedules.patient_id = ?", patientID)

	// Bounds are calendar dates: truncate to midnight and make the end
	// exclusive of the following day so the whole end date is included.
	if start != nil {
		query = query.Where("activities.date_time >= ?", truncateToDate(*start))
	}
	if end != nil {
		query = query.Where("activities.date_time < ?", truncateToDate(*end).AddDate(0, 0, 1))
	}

	var activities []entity.Activity
	if err := query.Order("activities.date_time DESC").Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
