package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"med-adherence-api/internal/authz"
	"med-adherence-api/internal/delivery/dto"
	"med-adherence-api/internal/delivery/http/middleware"
	"med-adherence-api/internal/domain/entity"
	"med-adherence-api/internal/usecase"
	"med-adherence-api/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

type stubAdherenceUsecase struct {
	summary *dto.AdherenceSummaryResponse
	history *dto.AdherenceHistoryResponse
	err     error
}

func (s *stubAdherenceUsecase) Summary(ctx context.Context, userID uuid.UUID, role entity.Role, patientID uuid.UUID, rangeStr string) (*dto.AdherenceSummaryResponse, error) {
	return s.summary, s.err
}

func (s *stubAdherenceUsecase) History(ctx context.Context, userID uuid.UUID, role entity.Role, patientID uuid.UUID, startStr, endStr string) (*dto.AdherenceHistoryResponse, error) {
	return s.history, s.err
}

func authenticatedRequest(method, target string, role entity.Role) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, uuid.New())
	ctx = context.WithValue(ctx, middleware.RoleKey, role)
	return req.WithContext(ctx)
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorBody {
	var body response.ErrorBody
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestAdherenceSummary_OK(t *testing.T) {
	patientID := uuid.New()
	handler := NewAdherenceHandler(&stubAdherenceUsecase{
		summary: &dto.AdherenceSummaryResponse{
			PatientID:     patientID,
			Range:         "7d",
			TotalDoses:    10,
			TakenDoses:    7,
			AdherenceRate: "70.00%",
		},
	})

	req := authenticatedRequest(http.MethodGet, "/api/patients/"+patientID.String()+"/adherence/summary?range=7d", entity.RolePatient)
	req = mux.SetURLVars(req, map[string]string{"id": patientID.String()})
	rec := httptest.NewRecorder()

	handler.Summary(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body dto.AdherenceSummaryResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "70.00%", body.AdherenceRate)
	assert.Equal(t, int64(10), body.TotalDoses)
}

func TestAdherenceSummary_MalformedPatientID(t *testing.T) {
	handler := NewAdherenceHandler(&stubAdherenceUsecase{})

	req := authenticatedRequest(http.MethodGet, "/api/patients/not-a-uuid/adherence/summary", entity.RoleAdmin)
	req = mux.SetURLVars(req, map[string]string{"id": "not-a-uuid"})
	rec := httptest.NewRecorder()

	handler.Summary(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "patient not found", decodeErrorBody(t, rec).Detail)
}

func TestAdherenceSummary_Forbidden(t *testing.T) {
	handler := NewAdherenceHandler(&stubAdherenceUsecase{err: authz.ErrForbidden})

	patientID := uuid.New()
	req := authenticatedRequest(http.MethodGet, "/api/patients/"+patientID.String()+"/adherence/summary", entity.RolePatient)
	req = mux.SetURLVars(req, map[string]string{"id": patientID.String()})
	rec := httptest.NewRecorder()

	handler.Summary(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdherenceSummary_PatientNotFound(t *testing.T) {
	handler := NewAdherenceHandler(&stubAdherenceUsecase{err: usecase.ErrPatientNotFound})

	patientID := uuid.New()
	req := authenticatedRequest(http.MethodGet, "/api/patients/"+patientID.String()+"/adherence/summary", entity.RoleAdmin)
	req = mux.SetURLVars(req, map[string]string{"id": patientID.String()})
	rec := httptest.NewRecorder()

	handler.Summary(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdherenceSummary_MissingIdentity(t *testing.T) {
	handler := NewAdherenceHandler(&stubAdherenceUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/api/patients/x/adherence/summary", nil)
	rec := httptest.NewRecorder()

	handler.Summary(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdherenceHistory_InvalidDate(t *testing.T) {
	handler := NewAdherenceHandler(&stubAdherenceUsecase{err: usecase.ErrInvalidDateFormat})

	patientID := uuid.New()
	req := authenticatedRequest(http.MethodGet, "/api/patients/"+patientID.String()+"/adherence/history?start=bad", entity.RolePatient)
	req = mux.SetURLVars(req, map[string]string{"id": patientID.String()})
	rec := httptest.NewRecorder()

	handler.History(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdherenceHistory_OK(t *testing.T) {
	patientID := uuid.New()
	handler := NewAdherenceHandler(&stubAdherenceUsecase{
		history: &dto.AdherenceHistoryResponse{PatientID: patientID, Results: []dto.ActivityResponse{}},
	})

	req := authenticatedRequest(http.MethodGet, "/api/patients/"+patientID.String()+"/adherence/history", entity.RoleDoctor)
	req = mux.SetURLVars(req, map[string]string{"id": patientID.String()})
	rec := httptest.NewRecorder()

	handler.History(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body dto.AdherenceHistoryResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, patientID, body.PatientID)
	assert.Empty(t, body.Results)
}
