package entity

import "github.com/google/uuid"

// DoctorProfile holds doctor-specific profile data. Patients is the
// assignment set: the only patients whose records this doctor may access.
type DoctorProfile struct {
	UserID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Specialization string    `gorm:"type:varchar(120)" json:"specialization,omitempty"`

	// Relationships
	User     User             `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Patients []PatientProfile `gorm:"many2many:doctor_patients;joinForeignKey:DoctorID;joinReferences:PatientID" json:"patients,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}
