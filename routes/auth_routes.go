package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sdas2004/job_portal/handlers"
	"github.com/sdas2004/job_portal/middleware"
)

func AuthRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	auth.Post("/register", handlers.Register)
	auth.Post("/verify", handlers.VerifyAccount)
	auth.Post("/login", handlers.Login)
	auth.Post("/forgot-password", handlers.ForgotPassword)
	auth.Get("/reset-password/verify", handlers.VerifyResetLink)
	auth.Post("/reset-password", handlers.ResetPassword)

	app.Get("/api/me", middleware.Protected(), handlers.Me)
}
