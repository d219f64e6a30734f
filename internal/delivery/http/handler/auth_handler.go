package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"med-adherence-api/internal/delivery/dto"
	"med-adherence-api/internal/delivery/http/middleware"
	"med-adherence-api/internal/usecase"
	"med-adherence-api/pkg/response"
	"med-adherence-api/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

// Register creates a user plus the single profile matching the declared role.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.authUsecase.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUsernameAlreadyExists), errors.Is(err, usecase.ErrInvalidDateFormat), errors.Is(err, usecase.ErrInvalidRole):
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w)
		}
		return
	}

	response.JSON(w, http.StatusCreated, user)
}

// Token issues an access+refresh pair for valid credentials.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	tokens, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			response.Unauthorized(w, err.Error())
		default:
			response.InternalServerError(w)
		}
		return
	}

	response.JSON(w, http.StatusOK, tokens)
}

// RefreshToken rotates a refresh token into a new pair.
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	tokens, err := h.authUsecase.RefreshToken(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidToken), errors.Is(err, usecase.ErrTokenRevoked):
			response.Unauthorized(w, err.Error())
		default:
			response.InternalServerError(w)
		}
		return
	}

	response.JSON(w, http.StatusOK, tokens)
}

// Logout revokes the refresh token from the body together with the current
// access token. A missing, malformed or already-revoked refresh token is a
// 400, never a 500.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "invalid token")
		return
	}
	tokenID, _ := middleware.GetTokenIDFromContext(r.Context())

	var req dto.LogoutRequest
	json.NewDecoder(r.Body).Decode(&req)
	if req.Refresh == "" {
		response.BadRequest(w, "refresh token required")
		return
	}

	if err := h.authUsecase.Logout(r.Context(), userID, tokenID, req.Refresh); err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidToken), errors.Is(err, usecase.ErrTokenRevoked):
			response.BadRequest(w, "invalid token")
		default:
			response.InternalServerError(w)
		}
		return
	}

	response.JSON(w, http.StatusResetContent, nil)
}

// GetProfile returns the caller's own user record and role profile.
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "invalid token")
		return
	}

	user, err := h.authUsecase.GetProfile(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			response.NotFound(w, err.Error())
		default:
			response.InternalServerError(w)
		}
		return
	}

	response.JSON(w, http.StatusOK, user)
}

// UpdateProfile updates the caller's own user record and role profile.
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "invalid token")
		return
	}

	var req dto.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.authUsecase.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound), errors.Is(err, usecase.ErrPatientNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, usecase.ErrInvalidDateFormat):
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w)
		}
		return
	}

	response.JSON(w, http.StatusOK, user)
}
