package middleware

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	config "github.com/sdas2004/job_portal/configs"
	"github.com/sdas2004/job_portal/models"
)

func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(config.Config("JWT_SECRET")),
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"status": "error", "message": "Missing or malformed JWT", "data": nil})
	}
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"status": "error", "message": "Invalid or expired JWT", "data": nil})
}

// RequireAccess guards a route group behind the role policy for a resource
// area.
func RequireAccess(resource string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !models.CanAccess(CurrentRole(c), resource) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: insufficient role",
			})
		}
		return c.Next()
	}
}

func AdminRequired() fiber.Handler {
	return RequireAccess(models.ResourceAdminPanel)
}

func CompanyRequired() fiber.Handler {
	return RequireAccess(models.ResourceAdverts)
}

func CandidateRequired() fiber.Handler {
	return RequireAccess(models.ResourceTests)
}

// CurrentUserID reads the authenticated user id from the JWT claims.
func CurrentUserID(c *fiber.Ctx) uuid.UUID {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	id, _ := uuid.Parse(claims["user_id"].(string))
	return id
}

// CurrentRole reads the authenticated role from the JWT claims.
func CurrentRole(c *fiber.Ctx) models.Role {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	role, _ := claims["role"].(string)
	return models.Role(role)
}

// CurrentEmail reads the authenticated email from the JWT claims.
func CurrentEmail(c *fiber.Ctx) string {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	email, _ := claims["email"].(string)
	return email
}
