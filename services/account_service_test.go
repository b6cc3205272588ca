package services

import (
	"testing"
	"time"

	"github.com/sdas2004/job_portal/database"
	"github.com/sdas2004/job_portal/models"
	"github.com/sdas2004/job_portal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestIssueAndConfirmRegistration(t *testing.T) {
	setupTestDB(t)

	code, err := IssueRegistration("New.User@Example.com", "secret123", models.RoleCandidate)
	require.NoError(t, err)
	assert.Len(t, code, utils.VerificationCodeLength)

	var pending models.PendingUser
	require.NoError(t, database.DB.First(&pending, "email = ?", "new.user@example.com").Error)
	assert.Equal(t, code, pending.VerificationCode)
	// Stored password is hashed, never the raw secret.
	assert.NotEqual(t, "secret123", pending.Password)

	user, err := ConfirmRegistration("new.user@example.com", code)
	require.NoError(t, err)
	assert.Equal(t, "new.user@example.com", user.Email)
	assert.Equal(t, models.RoleCandidate, user.Role)
	assert.True(t, user.IsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))

	var pendingCount int64
	database.DB.Model(&models.PendingUser{}).Count(&pendingCount)
	assert.Zero(t, pendingCount)

	// The pending record is consumed; the same code never works twice.
	_, err = ConfirmRegistration("new.user@example.com", code)
	assert.ErrorIs(t, err, ErrInvalidOrExpired)
}

func TestIssueRegistrationEmailTaken(t *testing.T) {
	setupTestDB(t)
	createUser(t, "taken@example.com", "pass123", models.RoleCompany)

	_, err := IssueRegistration("Taken@Example.com", "pass456", models.RoleCandidate)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestIssueRegistrationReplacesPreviousCode(t *testing.T) {
	setupTestDB(t)

	first, err := IssueRegistration("dev@example.com", "pass123", models.RoleCandidate)
	require.NoError(t, err)
	second, err := IssueRegistration("dev@example.com", "pass456", models.RoleCompany)
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	var pendingCount int64
	database.DB.Model(&models.PendingUser{}).Count(&pendingCount)
	assert.EqualValues(t, 1, pendingCount)

	_, err = ConfirmRegistration("dev@example.com", first)
	assert.ErrorIs(t, err, ErrInvalidOrExpired)

	user, err := ConfirmRegistration("dev@example.com", second)
	require.NoError(t, err)
	assert.Equal(t, models.RoleCompany, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("pass456")))
}

func TestConfirmRegistrationExpired(t *testing.T) {
	setupTestDB(t)

	code, err := IssueRegistration("slow@example.com", "pass123", models.RoleCandidate)
	require.NoError(t, err)

	stale := time.Now().UTC().Add(-models.CredentialLifespan - time.Minute)
	require.NoError(t, database.DB.Model(&models.PendingUser{}).
		Where("email = ?", "slow@example.com").
		Update("created_at", stale).Error)

	_, err = ConfirmRegistration("slow@example.com", code)
	assert.ErrorIs(t, err, ErrInvalidOrExpired)
}

func TestPasswordResetFlow(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "reset@example.com", "oldpass", models.RoleCandidate)

	token, err := IssuePasswordReset("Reset@Example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, token.UserID)
	assert.Len(t, token.Token, utils.ResetTokenLength)

	assert.True(t, ValidateResetToken("reset@example.com", token.Token))
	assert.False(t, ValidateResetToken("reset@example.com", "wrong-secret"))

	require.NoError(t, ConsumeResetToken("reset@example.com", token.Token, "newpass"))

	var updated models.User
	require.NoError(t, database.DB.First(&updated, "id = ?", user.ID).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("newpass")))

	// The token is deleted on use; replaying it always fails.
	assert.False(t, ValidateResetToken("reset@example.com", token.Token))
	err = ConsumeResetToken("reset@example.com", token.Token, "anotherpass")
	assert.ErrorIs(t, err, ErrInvalidOrExpired)
}

func TestIssuePasswordResetRotatesToken(t *testing.T) {
	setupTestDB(t)
	createUser(t, "rotate@example.com", "pass123", models.RoleCompany)

	first, err := IssuePasswordReset("rotate@example.com")
	require.NoError(t, err)
	second, err := IssuePasswordReset("rotate@example.com")
	require.NoError(t, err)
	require.NotEqual(t, first.Token, second.Token)

	var tokenCount int64
	database.DB.Model(&models.Token{}).Count(&tokenCount)
	assert.EqualValues(t, 1, tokenCount)

	assert.False(t, ValidateResetToken("rotate@example.com", first.Token))
	assert.True(t, ValidateResetToken("rotate@example.com", second.Token))
}

func TestValidateResetTokenExpired(t *testing.T) {
	setupTestDB(t)
	createUser(t, "late@example.com", "pass123", models.RoleCandidate)

	token, err := IssuePasswordReset("late@example.com")
	require.NoError(t, err)

	stale := time.Now().UTC().Add(-models.CredentialLifespan - time.Minute)
	require.NoError(t, database.DB.Model(&models.Token{}).
		Where("id = ?", token.ID).
		Update("created_at", stale).Error)

	assert.False(t, ValidateResetToken("late@example.com", token.Token))
	err = ConsumeResetToken("late@example.com", token.Token, "newpass")
	assert.ErrorIs(t, err, ErrInvalidOrExpired)
}

func TestIssuePasswordResetUnknownEmail(t *testing.T) {
	setupTestDB(t)

	_, err := IssuePasswordReset("nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
