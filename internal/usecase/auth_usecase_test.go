package usecase

import (
	"context"
	"testing"
	"time"

	"med-adherence-api/config"
	"med-adherence-api/internal/delivery/dto"
	"med-adherence-api/internal/domain/entity"
	"med-adherence-api/internal/repository"
	"med-adherence-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthUsecase(db *gorm.DB) AuthUsecase {
	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
	return NewAuthUsecase(
		db,
		testLogger(),
		repository.NewUserRepository(),
		repository.NewPatientProfileRepository(),
		repository.NewDoctorProfileRepository(),
		jwtService,
		nil,
	)
}

func TestRegister_PatientGetsPatientProfile(t *testing.T) {
	db := setupTestDB(t)
	usecase := newAuthUsecase(db)

	resp, err := usecase.Register(context.Background(), &dto.RegisterRequest{
		Username:       "alice",
		Email:          "alice@example.com",
		Password:       "supersecret",
		Role:           "patient",
		DateOfBirth:    "1990-05-04",
		MedicalHistory: "hypertension",
	})
	assert.NoError(t, err)
	assert.Equal(t, "patient", resp.Role)
	assert.NotNil(t, resp.PatientProfile)
	assert.Nil(t, resp.DoctorProfile)
	assert.Equal(t, "1990-05-04", resp.PatientProfile.DateOfBirth)
	assert.Equal(t, "hypertension", resp.PatientProfile.MedicalHistory)

	var count int64
	db.Model(&entity.PatientProfile{}).Where("user_id = ?", resp.ID).Count(&count)
	assert.Equal(t, int64(1), count)
	db.Model(&entity.DoctorProfile{}).Where("user_id = ?", resp.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestRegister_DoctorGetsDoctorProfile(t *testing.T) {
	db := setupTestDB(t)
	usecase := newAuthUsecase(db)

	resp, err := usecase.Register(context.Background(), &dto.RegisterRequest{
		Username:       "drbob",
		Password:       "supersecret",
		Role:           "doctor",
		Specialization: "cardiology",
	})
	assert.NoError(t, err)
	assert.Equal(t, "doctor", resp.Role)
	assert.NotNil(t, resp.DoctorProfile)
	assert.Nil(t, resp.PatientProfile)
	assert.Equal(t, "cardiology", resp.DoctorProfile.Specialization)

	var count int64
	db.Model(&entity.DoctorProfile{}).Where("user_id = ?", resp.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRegister_AdminGetsNoProfile(t *testing.T) {
	db := setupTestDB(t)
	usecase := newAuthUsecase(db)

	resp, err := usecase.Register(context.Background(), &dto.RegisterRequest{
		Username: "root",
		Password: "supersecret",
		Role:     "admin",
	})
	assert.NoError(t, err)
	assert.Equal(t, "admin", resp.Role)
	assert.Nil(t, resp.PatientProfile)
	assert.Nil(t, resp.DoctorProfile)
}

func TestRegister_PasswordIsHashed(t *testing.T) {
	db := setupTestDB(t)
	usecase := newAuthUsecase(db)

	resp, err := usecase.Register(context.Background(), &dto.RegisterRequest{
		Username: "carol",
		Password: "supersecret",
		Role:     "admin",
	})
	assert.NoError(t, err)

	var user entity.User
	assert.NoError(t, db.Where("id = ?", resp.ID).First(&user).Error)
	assert.NotEqual(t, "supersecret", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("supersecret")))
}

func TestRegister_InvalidDateOfBirth(t *testing.T) {
	db := setupTestDB(t)
	usecase := newAuthUsecase(db)

	_, err := usecase.Register(context.Background(), &dto.RegisterRequest{
		Username:    "dave",
		Password:    "supersecret",
		Role:        "patient",
		DateOfBirth: "04/05/1990",
	})
	assert.ErrorIs(t, err, ErrInvalidDateFormat)

	// The rejected registration leaves nothing behind.
	var count int64
	db.Model(&entity.User{}).Where("username = ?", "dave").Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	usecase := newAuthUsecase(db)

	_, err := usecase.Register(context.Background(), &dto.RegisterRequest{
		Username: "eve",
		Password: "supersecret",
		Role:     "admin",
	})
	assert.NoError(t, err)

	_, err = usecase.Register(context.Background(), &dto.RegisterRequest{
		Username: "eve",
		Password: "othersecret",
		Role:     "patient",
	})
	assert.Error(t, err)
}

func TestRegister_UnknownRole(t *testing.T) {
	db := setupTestDB(t)
	usecase := newAuthUsecase(db)

	_, err := usecase.Register(context.Background(), &dto.RegisterRequest{
		Username: "mallory",
		Password: "supersecret",
		Role:     "superuser",
	})
	assert.ErrorIs(t, err, ErrInvalidRole)

	var count int64
	db.Model(&entity.User{}).Where("username = ?", "mallory").Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestLogout_MissingToken(t *testing.T) {
	db := setupTestDB(t)
	usecase := newAuthUsecase(db)

	err := usecase.Logout(context.Background(), uuid.New(), "token-id", "")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogout_MalformedToken(t *testing.T) {
	db := setupTestDB(t)
	usecase := newAuthUsecase(db)

	err := usecase.Logout(context.Background(), uuid.New(), "token-id", "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogout_AccessTokenRejected(t *testing.T) {
	db := setupTestDB(t)
	usecase := newAuthUsecase(db)

	// Same secret as newAuthUsecase, so the signature validates and only
	// the token type check can reject it.
	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
	accessToken, _, err := jwtService.GenerateAccessToken(uuid.New(), "alice", entity.RolePatient)
	assert.NoError(t, err)

	err = usecase.Logout(context.Background(), uuid.New(), "token-id", accessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGetProfile(t *testing.T) {
	db := setupTestDB(t)
	usecase := newAuthUsecase(db)
	patient := seedPatient(t, db)

	resp, err := usecase.GetProfile(context.Background(), patient.ID)
	assert.NoError(t, err)
	assert.Equal(t, patient.ID, resp.ID)
	assert.Equal(t, "patient", resp.Role)
}

func TestGetProfile_NotFound(t *testing.T) {
	db := setupTestDB(t)
	usecase := newAuthUsecase(db)

	_, err := usecase.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfile_PatientFields(t *testing.T) {
	db := setupTestDB(t)
	usecase := newAuthUsecase(db)
	patient := seedPatient(t, db)

	history := "type 2 diabetes"
	dob := "1985-11-20"
	resp, err := usecase.UpdateProfile(context.Background(), patient.ID, &dto.UpdateProfileRequest{
		MedicalHistory: &history,
		DateOfBirth:    &dob,
	})
	assert.NoError(t, err)
	assert.NotNil(t, resp.PatientProfile)
	assert.Equal(t, "type 2 diabetes", resp.PatientProfile.MedicalHistory)
	assert.Equal(t, "1985-11-20", resp.PatientProfile.DateOfBirth)
}

func TestUpdateProfile_DoctorReplacesAssignments(t *testing.T) {
	db := setupTestDB(t)
	usecase := newAuthUsecase(db)
	patientA := seedPatient(t, db)
	patientB := seedPatient(t, db)
	doctor := seedDoctor(t, db, patientA.ID)

	resp, err := usecase.UpdateProfile(context.Background(), doctor.ID, &dto.UpdateProfileRequest{
		Patients: []string{patientB.ID.String()},
	})
	assert.NoError(t, err)
	assert.NotNil(t, resp.DoctorProfile)
	assert.Equal(t, []uuid.UUID{patientB.ID}, resp.DoctorProfile.Patients)

	// The replaced assignment takes effect for authorization immediately.
	scheduleUsecase := newScheduleUsecase(db)
	seedSchedule(t, db, patientB.ID)
	list, err := scheduleUsecase.ListSchedules(context.Background(), doctor.ID, entity.RoleDoctor)
	assert.NoError(t, err)
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, patientB.ID, list.Schedules[0].PatientID)
}

func TestUpdateProfile_UnknownAssignedPatient(t *testing.T) {
	db := setupTestDB(t)
	usecase := newAuthUsecase(db)
	doctor := seedDoctor(t, db)

	_, err := usecase.UpdateProfile(context.Background(), doctor.ID, &dto.UpdateProfileRequest{
		Patients: []string{uuid.NewString()},
	})
	assert.ErrorIs(t, err, ErrPatientNotFound)
}
