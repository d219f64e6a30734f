package jwt

import (
	"testing"
	"time"

	"med-adherence-api/config"
	"med-adherence-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestService(secret string) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        secret,
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	service := newTestService("test-secret")
	userID := uuid.New()

	token, tokenID, err := service.GenerateAccessToken(userID, "alice", entity.RolePatient)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, tokenID)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, entity.RolePatient, claims.Role)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestGenerateRefreshToken_Type(t *testing.T) {
	service := newTestService("test-secret")

	token, _, err := service.GenerateRefreshToken(uuid.New(), "bob", entity.RoleDoctor)
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, RefreshToken, claims.TokenType)
	assert.Equal(t, entity.RoleDoctor, claims.Role)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	service := newTestService("test-secret")
	other := newTestService("other-secret")

	token, _, err := service.GenerateAccessToken(uuid.New(), "alice", entity.RoleAdmin)
	assert.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	service := newTestService("test-secret")

	_, err := service.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestGenerate_UniqueTokenIDs(t *testing.T) {
	service := newTestService("test-secret")
	userID := uuid.New()

	_, id1, err := service.GenerateAccessToken(userID, "alice", entity.RolePatient)
	assert.NoError(t, err)
	_, id2, err := service.GenerateAccessToken(userID, "alice", entity.RolePatient)
	assert.NoError(t, err)

	assert.NotEqual(t, id1, id2)
}
