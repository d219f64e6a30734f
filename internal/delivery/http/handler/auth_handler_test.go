package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"med-adherence-api/internal/delivery/dto"
	"med-adherence-api/internal/delivery/http/middleware"
	"med-adherence-api/internal/usecase"
	"med-adherence-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubAuthUsecase struct {
	user      *dto.UserResponse
	tokens    *dto.TokenResponse
	logoutErr error
	err       error
}

func (s *stubAuthUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	return s.user, s.err
}

func (s *stubAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	return s.tokens, s.err
}

func (s *stubAuthUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	return s.tokens, s.err
}

func (s *stubAuthUsecase) Logout(ctx context.Context, userID uuid.UUID, accessTokenID, refreshToken string) error {
	return s.logoutErr
}

func (s *stubAuthUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	return s.user, s.err
}

func (s *stubAuthUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	return s.user, s.err
}

func logoutRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", strings.NewReader(body))
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, uuid.New())
	ctx = context.WithValue(ctx, middleware.TokenIDKey, uuid.NewString())
	return req.WithContext(ctx)
}

func TestLogout_Success(t *testing.T) {
	handler := NewAuthHandler(&stubAuthUsecase{}, validator.NewValidator())

	rec := httptest.NewRecorder()
	handler.Logout(rec, logoutRequest(`{"refresh": "some-refresh-token"}`))

	assert.Equal(t, http.StatusResetContent, rec.Code)
}

func TestLogout_MissingRefreshToken(t *testing.T) {
	handler := NewAuthHandler(&stubAuthUsecase{}, validator.NewValidator())

	rec := httptest.NewRecorder()
	handler.Logout(rec, logoutRequest(`{}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "refresh token required", decodeErrorBody(t, rec).Detail)
}

func TestLogout_EmptyBody(t *testing.T) {
	handler := NewAuthHandler(&stubAuthUsecase{}, validator.NewValidator())

	rec := httptest.NewRecorder()
	handler.Logout(rec, logoutRequest(""))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogout_MalformedRefreshToken(t *testing.T) {
	handler := NewAuthHandler(&stubAuthUsecase{logoutErr: usecase.ErrInvalidToken}, validator.NewValidator())

	rec := httptest.NewRecorder()
	handler.Logout(rec, logoutRequest(`{"refresh": "not-a-jwt"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid token", decodeErrorBody(t, rec).Detail)
}

func TestLogout_AlreadyRevokedToken(t *testing.T) {
	handler := NewAuthHandler(&stubAuthUsecase{logoutErr: usecase.ErrTokenRevoked}, validator.NewValidator())

	rec := httptest.NewRecorder()
	handler.Logout(rec, logoutRequest(`{"refresh": "used-refresh-token"}`))

	// A second logout with the same token is a client error, never a 500.
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid token", decodeErrorBody(t, rec).Detail)
}

func TestLogout_MissingIdentity(t *testing.T) {
	handler := NewAuthHandler(&stubAuthUsecase{}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", strings.NewReader(`{"refresh": "x"}`))
	rec := httptest.NewRecorder()
	handler.Logout(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
