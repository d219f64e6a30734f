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

type ActivityHandler struct {
	activityUsecase usecase.ActivityUsecase
	validator       *validator.CustomValidator
}

func NewActivityHandler(activityUsecase usecase.ActivityUsecase, validator *validator.CustomValidator) *ActivityHandler {
	return &ActivityHandler{
		activityUsecase: activityUsecase,
		validator:       validator,
	}
}

func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "invalid token")
		return
	}

	activities, err := h.activityUsecase.ListActivities(r.Context(), userID, role)
	if err != nil {
		response.InternalServerError(w)
		return
	}
	response.JSON(w, http.StatusOK, activities)
}

func (h *ActivityHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "invalid token")
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.NotFound(w, "activity not found")
		return
	}

	activity, err := h.activityUsecase.GetActivity(r.Context(), userID, role, id)
	if err != nil {
		h.writeActivityError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, activity)
}

func (h *ActivityHandler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "invalid token")
		return
	}

	var req dto.CreateActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	activity, err := h.activityUsecase.CreateActivity(r.Context(), userID, role, &req)
	if err != nil {
		h.writeActivityError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, activity)
}

// UpdateActivity rejects doctors outright; only the patient or an admin
// corrects a dose log.
func (h *ActivityHandler) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "invalid token")
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.NotFound(w, "activity not found")
		return
	}

	var req dto.UpdateActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	activity, err := h.activityUsecase.UpdateActivity(r.Context(), userID, role, id, &req)
	if err != nil {
		h.writeActivityError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, activity)
}

func (h *ActivityHandler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "invalid token")
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.NotFound(w, "activity not found")
		return
	}

	if err := h.activityUsecase.DeleteActivity(r.Context(), userID, role, id); err != nil {
		h.writeActivityError(w, err)
		return
	}
	response.JSON(w, http.StatusNoContent, nil)
}

func (h *ActivityHandler) writeActivityError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authz.ErrForbidden):
		response.Forbidden(w, err.Error())
	case errors.Is(err, usecase.ErrActivityNotFound), errors.Is(err, usecase.ErrScheduleNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, usecase.ErrInvalidTimestamp):
		response.BadRequest(w, err.Error())
	default:
		response.InternalServerError(w)
	}
}
