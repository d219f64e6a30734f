package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"med-adherence-api/internal/delivery/dto"
	"med-adherence-api/internal/usecase"
	"med-adherence-api/pkg/response"
	"med-adherence-api/pkg/validator"
)

type NotificationHandler struct {
	notificationUsecase usecase.NotificationUsecase
	validator           *validator.CustomValidator
}

func NewNotificationHandler(notificationUsecase usecase.NotificationUsecase, validator *validator.CustomValidator) *NotificationHandler {
	return &NotificationHandler{
		notificationUsecase: notificationUsecase,
		validator:           validator,
	}
}

func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "invalid token")
		return
	}

	notifications, err := h.notificationUsecase.ListNotifications(r.Context(), userID, role)
	if err != nil {
		response.InternalServerError(w)
		return
	}
	response.JSON(w, http.StatusOK, notifications)
}

// SendNotification records a message for a patient. Both `patient` and
// `message` are required; an unknown patient is a 404.
func (h *NotificationHandler) SendNotification(w http.ResponseWriter, r *http.Request) {
	var req dto.SendNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, "patient and message required")
		return
	}

	notification, err := h.notificationUsecase.SendNotification(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPatientNotFound):
			response.NotFound(w, err.Error())
		default:
			response.InternalServerError(w)
		}
		return
	}

	response.JSON(w, http.StatusCreated, notification)
}
