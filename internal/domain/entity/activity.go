package entity

import "time"

// Activity statuses
const (
	ActivityTaken  = "taken"
	ActivityMissed = "missed"
)

// Activity is one dose event under a medication schedule.
type Activity struct {
	ID                   int       `gorm:"primaryKey;autoIncrement" json:"id"`
	ScheduleID           int       `gorm:"not null;index:idx_activities_schedule_time,priority:1" json:"schedule_id"`
	DateTime             time.Time `gorm:"not null;index:idx_activities_schedule_time,priority:2" json:"date_time"`
	Status               string    `gorm:"type:varchar(10);not null" json:"status"`
	Notes                string    `gorm:"type:text" json:"notes,omitempty"`
	BloodPressureReading string    `gorm:"type:varchar(15)" json:"blood_pressure_reading,omitempty"` // e.g. "120/80"

	// Relationships
	Schedule MedicationSchedule `gorm:"foreignKey:ScheduleID" json:"schedule,omitempty"`
}

func (Activity) TableName() string {
	return "activities"
}
