package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"med-adherence-api/internal/authz"
	"med-adherence-api/internal/delivery/dto"
	"med-adherence-api/internal/usecase"
	"med-adherence-api/pkg/response"
	"med-adherence-api/pkg/validator"

	"github.com/gorilla/mux"
)

type ScheduleHandler struct {
	scheduleUsecase usecase.ScheduleUsecase
	validator       *validator.CustomValidator
}

func NewScheduleHandler(scheduleUsecase usecase.ScheduleUsecase, validator *validator.CustomValidator) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUsecase: scheduleUsecase,
		validator:       validator,
	}
}

func (h *ScheduleHandler) ListSchedules(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "invalid token")
		return
	}

	schedules, err := h.scheduleUsecase.ListSchedules(r.Context(), userID, role)
	if err != nil {
		response.InternalServerError(w)
		return
	}
	response.JSON(w, http.StatusOK, schedules)
}

func (h *ScheduleHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "invalid token")
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.NotFound(w, "schedule not found")
		return
	}

	schedule, err := h.scheduleUsecase.GetSchedule(r.Context(), userID, role, id)
	if err != nil {
		h.writeScheduleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, schedule)
}

func (h *ScheduleHandler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "invalid token")
		return
	}

	var req dto.CreateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	schedule, err := h.scheduleUsecase.CreateSchedule(r.Context(), userID, role, &req)
	if err != nil {
		h.writeScheduleError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, schedule)
}

func (h *ScheduleHandler) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "invalid token")
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.NotFound(w, "schedule not found")
		return
	}

	var req dto.UpdateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	schedule, err := h.scheduleUsecase.UpdateSchedule(r.Context(), userID, role, id, &req)
	if err != nil {
		h.writeScheduleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, schedule)
}

func (h *ScheduleHandler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "invalid token")
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.NotFound(w, "schedule not found")
		return
	}

	if err := h.scheduleUsecase.DeleteSchedule(r.Context(), userID, role, id); err != nil {
		h.writeScheduleError(w, err)
		return
	}
	response.JSON(w, http.StatusNoContent, nil)
}

func (h *ScheduleHandler) writeScheduleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authz.ErrForbidden):
		response.Forbidden(w, err.Error())
	case errors.Is(err, usecase.ErrScheduleNotFound), errors.Is(err, usecase.ErrPatientNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, usecase.ErrInvalidDateFormat), errors.Is(err, usecase.ErrInvalidDateRange):
		response.BadRequest(w, err.Error())
	default:
		response.InternalServerError(w)
	}
}
