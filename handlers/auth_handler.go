package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	config "github.com/sdas2004/job_portal/configs"
	"github.com/sdas2004/job_portal/database"
	"github.com/sdas2004/job_portal/middleware"
	"github.com/sdas2004/job_portal/models"
	"github.com/sdas2004/job_portal/notifications"
	"github.com/sdas2004/job_portal/services"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=company candidate"`
}

func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	code, err := services.IssueRegistration(req.Email, req.Password, models.Role(req.Role))
	if err != nil {
		return serviceError(c, err)
	}

	cleanedEmail := strings.ToLower(req.Email)
	go notifications.SendTemplate(
		"Verify Your Account",
		[]string{cleanedEmail},
		notifications.TemplateEmailVerification,
		map[string]any{"Code": code},
	)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": fmt.Sprintf("Verification code sent to %s", cleanedEmail),
	})
}

type VerifyAccountRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required"`
}

func VerifyAccount(c *fiber.Ctx) error {
	var req VerifyAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	user, err := services.ConfirmRegistration(req.Email, req.Code)
	if err != nil {
		return serviceError(c, err)
	}

	token, err := generateToken(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create token"})
	}

	return c.JSON(fiber.Map{
		"message": "Account verified. You are logged in",
		"token":   token,
		"role":    user.Role,
	})
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var user models.User
	result := database.DB.Where("email = ?", strings.ToLower(req.Email)).First(&user)
	if result.Error != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
	}
	if !user.IsActive {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Account is deactivated"})
	}

	token, err := generateToken(&user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create token"})
	}

	return c.JSON(fiber.Map{"token": token, "role": user.Role})
}

func generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"email":   user.Email,
		"role":    string(user.Role),
		"exp":     time.Now().Add(time.Hour * 72).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Config("JWT_SECRET")))
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func ForgotPassword(c *fiber.Ctx) error {
	var req ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	genericMessage := "If an account with that email exists, a password reset link has been sent."

	token, err := services.IssuePasswordReset(req.Email)
	if err != nil {
		// Do not reveal whether the email is registered.
		return c.JSON(fiber.Map{"message": genericMessage})
	}

	cleanedEmail := strings.ToLower(req.Email)
	resetLink := fmt.Sprintf("%s/reset-password?email=%s&token=%s",
		config.Config("FRONTEND_URL"), cleanedEmail, token.Token)

	go notifications.SendTemplate(
		"Your Password Reset Link",
		[]string{cleanedEmail},
		notifications.TemplatePasswordReset,
		map[string]any{"ResetLink": resetLink},
	)

	return c.JSON(fiber.Map{"message": genericMessage})
}

// VerifyResetLink lets the frontend check a reset link before showing the
// new-password form.
func VerifyResetLink(c *fiber.Ctx) error {
	email := c.Query("email")
	token := c.Query("token")

	if !services.ValidateResetToken(email, token) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid or expired reset link"})
	}
	return c.JSON(fiber.Map{"valid": true})
}

type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

func ResetPassword(c *fiber.Ctx) error {
	var req ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := services.ConsumeResetToken(req.Email, req.Token, req.NewPassword); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Password has been reset successfully."})
}

// Me returns the authenticated user's profile.
func Me(c *fiber.Ctx) error {
	var user models.User
	err := database.DB.First(&user, "id = ?", middleware.CurrentUserID(c)).Error
	if err == gorm.ErrRecordNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Something went wrong"})
	}
	return c.JSON(user)
}
