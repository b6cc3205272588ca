package services

import (
	"errors"
	"strings"
	"time"

	"github.com/sdas2004/job_portal/database"
	"github.com/sdas2004/job_portal/models"
	"github.com/sdas2004/job_portal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IssueRegistration stages a registration for email-code verification and
// returns the code to be delivered. Re-registering with the same email
// replaces the earlier pending record, so only the latest code verifies.
func IssueRegistration(email, rawPassword string, role models.Role) (string, error) {
	cleanedEmail := strings.ToLower(strings.TrimSpace(email))

	var count int64
	if err := database.DB.Model(&models.User{}).Where("email = ?", cleanedEmail).Count(&count).Error; err != nil {
		return "", err
	}
	if count > 0 {
		return "", ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	code := utils.RandomString(utils.VerificationCodeLength)
	pending := models.PendingUser{
		Email:            cleanedEmail,
		Password:         string(hashedPassword),
		VerificationCode: code,
		Role:             role,
		CreatedAt:        time.Now().UTC(),
	}

	err = database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"password", "verification_code", "role", "created_at"}),
	}).Create(&pending).Error
	if err != nil {
		return "", err
	}

	return code, nil
}

// ConfirmRegistration turns a pending registration into a real account. The
// pending record is consumed, so a second confirmation with the same code
// fails.
func ConfirmRegistration(email, code string) (*models.User, error) {
	cleanedEmail := strings.ToLower(strings.TrimSpace(email))

	var pending models.PendingUser
	err := database.DB.Where("email = ? AND verification_code = ?", cleanedEmail, code).First(&pending).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidOrExpired
	}
	if err != nil {
		return nil, err
	}
	if !pending.IsValid() {
		return nil, ErrInvalidOrExpired
	}

	user := models.User{
		Email:    pending.Email,
		Password: pending.Password,
		Role:     pending.Role,
		IsActive: true,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Delete(&models.PendingUser{}, "id = ?", pending.ID).Error
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// IssuePasswordReset mints a fresh reset token for the account behind email.
// Re-requesting replaces the previous token for that account.
func IssuePasswordReset(email string) (*models.Token, error) {
	user, err := findUserByEmail(email)
	if err != nil {
		return nil, err
	}

	token := models.Token{
		UserID:    user.ID,
		Token:     utils.RandomString(utils.ResetTokenLength),
		TokenType: models.TokenTypePasswordReset,
		CreatedAt: time.Now().UTC(),
	}

	err = database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "token_type"}},
		DoUpdates: clause.AssignmentColumns([]string{"token", "created_at"}),
	}).Create(&token).Error
	if err != nil {
		return nil, err
	}

	return &token, nil
}

// ValidateResetToken reports whether secret is the live, unexpired reset
// token for the account behind email.
func ValidateResetToken(email, secret string) bool {
	_, err := findResetToken(email, secret)
	return err == nil
}

// ConsumeResetToken sets a new password and deletes the token, so a reused
// token always fails after the first consumption.
func ConsumeResetToken(email, secret, newPassword string) error {
	token, err := findResetToken(email, secret)
	if err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return database.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.User{}).Where("id = ?", token.UserID).
			Update("password", string(hashedPassword)).Error
		if err != nil {
			return err
		}
		return tx.Delete(&models.Token{}, "id = ?", token.ID).Error
	})
}

func findUserByEmail(email string) (*models.User, error) {
	cleanedEmail := strings.ToLower(strings.TrimSpace(email))

	var user models.User
	err := database.DB.Where("email = ?", cleanedEmail).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func findResetToken(email, secret string) (*models.Token, error) {
	user, err := findUserByEmail(email)
	if err != nil {
		return nil, ErrInvalidOrExpired
	}

	var token models.Token
	err = database.DB.Where("user_id = ? AND token = ? AND token_type = ?",
		user.ID, secret, models.TokenTypePasswordReset).First(&token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidOrExpired
	}
	if err != nil {
		return nil, err
	}
	if !token.IsValid() {
		return nil, ErrInvalidOrExpired
	}
	return &token, nil
}
