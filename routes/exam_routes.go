package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sdas2004/job_portal/handlers"
	"github.com/sdas2004/job_portal/middleware"
)

func ExamRoutes(app *fiber.App) {
	tests := app.Group("/api/tests", middleware.Protected())

	tests.Get("/categories", handlers.ListCategories)

	candidate := tests.Group("", middleware.CandidateRequired())
	candidate.Post("/:categoryId/start", handlers.StartTest)
	candidate.Post("/:categoryId/submit", handlers.SubmitTest)
	candidate.Get("/results/:resultId", handlers.GetTestResult)

	me := app.Group("/api/me", middleware.Protected(), middleware.CandidateRequired())
	me.Get("/results", handlers.MyResults)
	me.Get("/certificates", handlers.MyCertificates)
}
