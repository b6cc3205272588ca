package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sdas2004/job_portal/handlers"
	"github.com/sdas2004/job_portal/middleware"
)

func AdvertRoutes(app *fiber.App) {
	company := app.Group("/api", middleware.Protected(), middleware.CompanyRequired())

	company.Post("/adverts", handlers.CreateAdvert)
	company.Put("/adverts/:advertId", handlers.UpdateAdvert)
	company.Delete("/adverts/:advertId", handlers.DeleteAdvert)
	company.Post("/adverts/:advertId/publish", handlers.PublishAdvert)
	company.Get("/company/jobs", handlers.MyJobs)
	company.Get("/adverts/:advertId/applications", handlers.AdvertApplications)
	company.Post("/applications/:applicationId/decide", handlers.Decide)

	app.Get("/api/me/applications", middleware.Protected(), handlers.MyApplications)
}
