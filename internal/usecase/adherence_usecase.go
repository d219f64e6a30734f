package usecase

import (
	"context"
	"time"

	"med-adherence-api/internal/authz"
	"med-adherence-api/internal/converter"
	"med-adherence-api/internal/delivery/dto"
	"med-adherence-api/internal/domain/entity"
	"med-adherence-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const defaultWindowDays = 30

type AdherenceUsecase interface {
	Summary(ctx context.Context, userID uuid.UUID, role entity.Role, patientID uuid.UUID, rangeStr string) (*dto.AdherenceSummaryResponse, error)
	History(ctx context.Context, userID uuid.UUID, role entity.Role, patientID uuid.UUID, startStr, endStr string) (*dto.AdherenceHistoryResponse, error)
}

type adherenceUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	activityRepo       repository.ActivityRepository
	patientProfileRepo repository.PatientProfileRepository
	doctorProfileRepo  repository.DoctorProfileRepository
}

func NewAdherenceUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	activityRepo repository.ActivityRepository,
	patientProfileRepo repository.PatientProfileRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
) AdherenceUsecase {
	return &adherenceUsecase{
		db:                 db,
		log:                log,
		activityRepo:       activityRepo,
		patientProfileRepo: patientProfileRepo,
		doctorProfileRepo:  doctorProfileRepo,
	}
}

// windowDays maps the range query parameter to a window size. Anything that
// is not exactly "7d" falls back to 30 days; this leniency is deliberate and
// mirrors the behavior existing clients depend on.
func windowDays(rangeStr string) int {
	if rangeStr == "7d" {
		return 7
	}
	return defaultWindowDays
}

// adherenceRate computes taken/total*100 at two decimal places. A window
// with no doses is a 0.00% rate, not a division error.
func adherenceRate(taken, total int64) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(taken).
		Div(decimal.NewFromInt(total)).
		Mul(decimal.NewFromInt(100)).
		Round(2)
}

func (u *adherenceUsecase) Summary(ctx context.Context, userID uuid.UUID, role entity.Role, patientID uuid.UUID, rangeStr string) (*dto.AdherenceSummaryResponse, error) {
	db := u.db.WithContext(ctx)
	if err := u.authorizePatientRead(db, userID, role, patientID); err != nil {
		return nil, err
	}

	// The window is half-open: [now - days, now). Doses logged with a
	// future timestamp never count.
	now := time.Now()
	days := windowDays(rangeStr)
	since := now.AddDate(0, 0, -days)

	counts, err := u.activityRepo.CountBetween(db, patientID, since, now)
	if err != nil {
		u.log.Warnf("Failed to aggregate adherence counts: %+v", err)
		return nil, err
	}

	rate := adherenceRate(counts.Taken, counts.Total)
	return &dto.AdherenceSummaryResponse{
		PatientID:     patientID,
		Range:         rangeStr,
		TotalDoses:    counts.Total,
		TakenDoses:    counts.Taken,
		AdherenceRate: rate.StringFixed(2) + "%",
	}, nil
}

func (u *adherenceUsecase) History(ctx context.Context, userID uuid.UUID, role entity.Role, patientID uuid.UUID, startStr, endStr string) (*dto.AdherenceHistoryResponse, error) {
	db := u.db.WithContext(ctx)
	if err := u.authorizePatientRead(db, userID, role, patientID); err != nil {
		return nil, err
	}

	var start, end *time.Time
	if startStr != "" {
		parsed, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		start = &parsed
	}
	if endStr != "" {
		parsed, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		end = &parsed
	}

	activities, err := u.activityRepo.FindHistory(db, patientID, start, end)
	if err != nil {
		u.log.Warnf("Failed to load adherence history: %+v", err)
		return nil, err
	}

	return &dto.AdherenceHistoryResponse{
		PatientID: patientID,
		Results:   converter.ActivitiesToResponses(activities),
	}, nil
}

// authorizePatientRead resolves the target patient (404 when absent) and
// applies the standard patient rule for the actor.
func (u *adherenceUsecase) authorizePatientRead(db *gorm.DB, userID uuid.UUID, role entity.Role, patientID uuid.UUID) error {
	patient, err := u.patientProfileRepo.FindByUserID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	actor, err := resolveActor(db, u.doctorProfileRepo, userID, role)
	if err != nil {
		return err
	}
	return authz.Authorize(actor, authz.ActionRead, patientID)
}
