package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fleetdesk/FleetDesk/internal/models"
)

func testAuthService() *AuthService {
	return &AuthService{
		secret:   []byte("test-secret"),
		tokenTTL: time.Hour,
		resetTTL: time.Minute,
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter42")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter42", hash)

	assert.True(t, VerifyPassword("hunter42", hash))
	assert.False(t, VerifyPassword("hunter43", hash))
	assert.False(t, VerifyPassword("hunter42", "not-a-hash"))
}

func TestTokenRoundTrip(t *testing.T) {
	svc := testAuthService()
	user := models.User{
		ID:    primitive.NewObjectID(),
		Email: "owner@example.com",
		Role:  models.RoleUser,
	}

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims["userId"])
	assert.Equal(t, user.Email, claims["email"])
	assert.Equal(t, models.RoleUser, claims["role"])
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := testAuthService().GenerateToken(models.User{ID: primitive.NewObjectID()})
	require.NoError(t, err)

	other := &AuthService{secret: []byte("different"), tokenTTL: time.Hour, resetTTL: time.Minute}
	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := testAuthService().ParseToken("not.a.token")
	assert.Error(t, err)
	_, err = testAuthService().ParseToken("")
	assert.Error(t, err)
}

func TestResetTokenRoundTrip(t *testing.T) {
	svc := testAuthService()
	userID := primitive.NewObjectID()

	token, err := svc.GenerateResetToken(userID)
	require.NoError(t, err)

	got, err := svc.VerifyResetToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestAccessTokenIsNotAResetToken(t *testing.T) {
	svc := testAuthService()
	token, err := svc.GenerateToken(models.User{ID: primitive.NewObjectID(), Email: "a@b.c"})
	require.NoError(t, err)

	_, err = svc.VerifyResetToken(token)
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := &AuthService{secret: []byte("test-secret"), tokenTTL: -time.Minute, resetTTL: -time.Minute}

	token, err := svc.GenerateToken(models.User{ID: primitive.NewObjectID()})
	require.NoError(t, err)
	_, err = svc.ParseToken(token)
	assert.Error(t, err)

	reset, err := svc.GenerateResetToken(primitive.NewObjectID())
	require.NoError(t, err)
	_, err = svc.VerifyResetToken(reset)
	assert.Error(t, err)
}
