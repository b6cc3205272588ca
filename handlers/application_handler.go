package handlers

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	config "github.com/sdas2004/job_portal/configs"
	"github.com/sdas2004/job_portal/middleware"
	"github.com/sdas2004/job_portal/models"
	"github.com/sdas2004/job_portal/services"
)

type ApplyRequest struct {
	Name         string `form:"name" validate:"required,max=50"`
	Email        string `form:"email" validate:"required,email"`
	PortfolioURL string `form:"portfolio_url" validate:"required,url"`
}

// Apply takes a multipart form with the applicant details and a CV
// attachment, stores the CV and records the application.
func Apply(c *fiber.Ctx) error {
	advertID, err := uuid.Parse(c.Params("advertId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid advert id"})
	}

	var req ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse form"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	cvHeader, err := c.FormFile("cv")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "A CV attachment is required"})
	}

	cvURL, err := uploadCV(cvHeader, advertID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store CV"})
	}

	application, err := services.Apply(advertID, req.Name, req.Email, req.PortfolioURL, cvURL)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(application)
}

func uploadCV(header *multipart.FileHeader, advertID uuid.UUID) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	result, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:     fmt.Sprintf("cvs/%s_%s", advertID, uuid.New().String()),
		Folder:       "job_portal_cvs",
		ResourceType: "raw",
	})
	if err != nil {
		return "", err
	}
	return result.SecureURL, nil
}

// MyApplications lists applications submitted under the authenticated
// user's email address.
func MyApplications(c *fiber.Ctx) error {
	applications, err := services.MyApplications(middleware.CurrentEmail(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(applications)
}

// AdvertApplications lists the applications for one of the authenticated
// company's adverts.
func AdvertApplications(c *fiber.Ctx) error {
	advertID, err := uuid.Parse(c.Params("advertId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid advert id"})
	}

	applications, err := services.AdvertApplications(advertID, middleware.CurrentUserID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(applications)
}

type DecideRequest struct {
	Status string `json:"status" validate:"required,oneof=APPLIED REJECTED INTERVIEW"`
}

// Decide sets the status of an application on one of the authenticated
// company's adverts.
func Decide(c *fiber.Ctx) error {
	applicationID, err := uuid.Parse(c.Params("applicationId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid application id"})
	}

	var req DecideRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	application, err := services.Decide(applicationID, middleware.CurrentUserID(c), models.ApplicationStatus(req.Status))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":     fmt.Sprintf("Application status updated to %s", application.Status),
		"application": application,
	})
}
