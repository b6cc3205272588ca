package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sdas2004/job_portal/handlers"
)

func PublicRoutes(app *fiber.App) {
	adverts := app.Group("/api/adverts")

	adverts.Get("/", handlers.ListAdverts)
	adverts.Get("/:advertId", handlers.GetAdvert)
	// Applying needs no account; duplicate-guarding is by email.
	adverts.Post("/:advertId/apply", handlers.Apply)
}
