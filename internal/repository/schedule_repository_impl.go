package repository

import (
	"errors"

	"med-adherence-api/internal/authz"
	"med-adherence-api/internal/domain/entity"
	domainRepo "med-adherence-api/internal/domain/repository"

	"gorm.io/gorm"
)

type scheduleRepository struct{}

func NewScheduleRepository() domainRepo.ScheduleRepository {
	return &scheduleRepository{}
}

func (r *scheduleRepository) Create(db *gorm.DB, schedule *entity.MedicationSchedule) error {
	return db.Create(schedule).Error
}

func (r *scheduleRepository) FindByID(db *gorm.DB, id int) (*entity.MedicationSchedule, error) {
	var schedule entity.MedicationSchedule
	err := db.Preload("Patient.User").Where("id = ?", id).First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepository) FindAllInScope(db *gorm.DB, scope authz.Scope) ([]entity.MedicationSchedule, error) {
	var schedules []entity.MedicationSchedule
	query := db.Preload("Patient.User").Order("start_date ASC, id ASC")
	if !scope.All() {
		query = query.Where("patient_id IN ?", scope.PatientIDs())
	}
	if err := query.Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) Update(db *gorm.DB, schedule *entity.MedicationSchedule) error {
	return db.Omit("Patient").Save(schedule).Error
}

func (r *scheduleRepository) Delete(db *gorm.DB, id int) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.MedicationSchedule{})
	return affected.RowsAffected, affected.Error
}
