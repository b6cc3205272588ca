package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sdas2004/job_portal/handlers"
	"github.com/sdas2004/job_portal/middleware"
)

func AdminRoutes(app *fiber.App) {
	admin := app.Group("/api/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Get("/companies", handlers.ListCompanies)
	admin.Get("/candidates", handlers.ListCandidates)

	admin.Post("/categories", handlers.CreateCategory)

	admin.Post("/questions", handlers.CreateQuestion)
	admin.Get("/questions", handlers.ListQuestions)
	admin.Get("/questions/:questionId", handlers.GetQuestion)
	admin.Put("/questions/:questionId", handlers.UpdateQuestion)
	admin.Delete("/questions/:questionId", handlers.DeleteQuestion)
}
