package utils_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrkit/hrms_backend/internal/utils"
)

const testSecret = "test-secret-key-that-is-long-enough"

func TestGenerateAndParseJWT(t *testing.T) {
	userID := uuid.NewString()
	orgID := uuid.NewString()

	token, err := utils.GenerateJWT(userID, orgID, testSecret, time.Hour, "hrms-test")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ParseAndValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, orgID, claims.OrganizationID)
	assert.Equal(t, userID, claims.Subject)
	assert.Equal(t, "hrms-test", claims.Issuer)
}

func TestParseJWT_WrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT(uuid.NewString(), uuid.NewString(), testSecret, time.Hour, "hrms-test")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, "a-different-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseJWT_Expired(t *testing.T) {
	token, err := utils.GenerateJWT(uuid.NewString(), uuid.NewString(), testSecret, -time.Minute, "hrms-test")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, testSecret)
	assert.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("s3cret-pw")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pw", hash)

	assert.True(t, utils.CheckPasswordHash("s3cret-pw", hash))
	assert.False(t, utils.CheckPasswordHash("not-the-password", hash))
}
