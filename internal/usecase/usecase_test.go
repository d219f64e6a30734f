package usecase

import (
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"med-adherence-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an isolated in-memory database per test. The named DSN
// keeps every pooled connection on the same database while separating tests
// from each other.
func setupTestDB(t *testing.T) *gorm.DB {
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)

	err = db.AutoMigrate(
		&entity.User{},
		&entity.PatientProfile{},
		&entity.DoctorProfile{},
		&entity.MedicationSchedule{},
		&entity.Activity{},
		&entity.Notification{},
	)
	assert.NoError(t, err)

	return db
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func seedUser(t *testing.T, db *gorm.DB, role entity.Role) *entity.User {
	user := &entity.User{
		Username: "user-" + uuid.NewString(),
		Password: "hashed",
		Role:     role,
	}
	assert.NoError(t, db.Create(user).Error)
	return user
}

func seedPatient(t *testing.T, db *gorm.DB) *entity.User {
	user := seedUser(t, db, entity.RolePatient)
	profile := &entity.PatientProfile{UserID: user.ID}
	assert.NoError(t, db.Create(profile).Error)
	return user
}

func seedDoctor(t *testing.T, db *gorm.DB, patientIDs ...uuid.UUID) *entity.User {
	user := seedUser(t, db, entity.RoleDoctor)
	profile := &entity.DoctorProfile{UserID: user.ID}
	assert.NoError(t, db.Create(profile).Error)

	if len(patientIDs) > 0 {
		var patients []entity.PatientProfile
		assert.NoError(t, db.Where("user_id IN ?", patientIDs).Find(&patients).Error)
		assert.NoError(t, db.Model(profile).Association("Patients").Append(&patients))
	}
	return user
}

func seedSchedule(t *testing.T, db *gorm.DB, patientID uuid.UUID) *entity.MedicationSchedule {
	schedule := &entity.MedicationSchedule{
		PatientID:      patientID,
		MedicationName: "Lisinopril",
		Dosage:         "10mg",
		Frequency:      "once daily",
		StartDate:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	}
	assert.NoError(t, db.Create(schedule).Error)
	return schedule
}

func seedActivity(t *testing.T, db *gorm.DB, scheduleID int, at time.Time, status string) *entity.Activity {
	activity := &entity.Activity{
		ScheduleID: scheduleID,
		DateTime:   at,
		Status:     status,
	}
	assert.NoError(t, db.Create(activity).Error)
	return activity
}
