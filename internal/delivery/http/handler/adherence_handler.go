package handler

import (
	"errors"
	"net/http"

	"med-adherence-api/internal/authz"
	"med-adherence-api/internal/usecase"
	"med-adherence-api/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AdherenceHandler struct {
	adherenceUsecase usecase.AdherenceUsecase
}

func NewAdherenceHandler(adherenceUsecase usecase.AdherenceUsecase) *AdherenceHandler {
	return &AdherenceHandler{adherenceUsecase: adherenceUsecase}
}

// Summary reports dose counts and the adherence rate for a patient over a
// time window. range=7d selects the 7-day window; anything else gets 30 days.
func (h *AdherenceHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "invalid token")
		return
	}

	patientID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.NotFound(w, "patient not found")
		return
	}

	rangeStr := r.URL.Query().Get("range")
	if rangeStr == "" {
		rangeStr = "7d"
	}

	summary, err := h.adherenceUsecase.Summary(r.Context(), userID, role, patientID, rangeStr)
	if err != nil {
		h.writeAdherenceError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, summary)
}

// History lists a patient's dose events newest first, optionally bounded by
// inclusive start/end dates.
func (h *AdherenceHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "invalid token")
		return
	}

	patientID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.NotFound(w, "patient not found")
		return
	}

	query := r.URL.Query()
	history, err := h.adherenceUsecase.History(r.Context(), userID, role, patientID, query.Get("start"), query.Get("end"))
	if err != nil {
		h.writeAdherenceError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, history)
}

func (h *AdherenceHandler) writeAdherenceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authz.ErrForbidden):
		response.Forbidden(w, err.Error())
	case errors.Is(err, usecase.ErrPatientNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, usecase.ErrInvalidDateFormat):
		response.BadRequest(w, err.Error())
	default:
		response.InternalServerError(w)
	}
}
