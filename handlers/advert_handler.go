package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sdas2004/job_portal/middleware"
	"github.com/sdas2004/job_portal/services"
)

type AdvertRequest struct {
	Title           string `json:"title" validate:"required,max=150"`
	CompanyName     string `json:"company_name" validate:"required,max=150"`
	EmploymentType  string `json:"employment_type" validate:"required,oneof='Full Time' 'Part Time' 'Contract'"`
	ExperienceLevel string `json:"experience_level" validate:"required,oneof='Entry Level' 'Mid Level' 'Senior'"`
	Description     string `json:"description" validate:"required"`
	JobType         string `json:"job_type" validate:"required,oneof=Onsite Hybrid Remote"`
	Location        string `json:"location"`
	Skills          string `json:"skills" validate:"required,max=255"`
	IsPublished     *bool  `json:"is_published"`
	Deadline        string `json:"deadline" validate:"required,datetime=2006-01-02"`
}

func (r AdvertRequest) fields() services.AdvertFields {
	deadline, _ := time.Parse("2006-01-02", r.Deadline)
	published := true
	if r.IsPublished != nil {
		published = *r.IsPublished
	}
	return services.AdvertFields{
		Title:           r.Title,
		CompanyName:     r.CompanyName,
		EmploymentType:  r.EmploymentType,
		ExperienceLevel: r.ExperienceLevel,
		Description:     r.Description,
		JobType:         r.JobType,
		Location:        r.Location,
		Skills:          r.Skills,
		IsPublished:     published,
		Deadline:        deadline,
	}
}

func CreateAdvert(c *fiber.Ctx) error {
	var req AdvertRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	advert, err := services.CreateAdvert(middleware.CurrentUserID(c), req.fields())
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(advert)
}

func GetAdvert(c *fiber.Ctx) error {
	advertID, err := uuid.Parse(c.Params("advertId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid advert id"})
	}

	advert, err := services.GetAdvert(advertID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(advert)
}

func UpdateAdvert(c *fiber.Ctx) error {
	advertID, err := uuid.Parse(c.Params("advertId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid advert id"})
	}

	var req AdvertRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	advert, err := services.UpdateAdvert(advertID, middleware.CurrentUserID(c), req.fields())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(advert)
}

func DeleteAdvert(c *fiber.Ctx) error {
	advertID, err := uuid.Parse(c.Params("advertId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid advert id"})
	}

	if err := services.DeleteAdvert(advertID, middleware.CurrentUserID(c)); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func PublishAdvert(c *fiber.Ctx) error {
	advertID, err := uuid.Parse(c.Params("advertId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid advert id"})
	}

	advert, err := services.PublishAdvert(advertID, middleware.CurrentUserID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(advert)
}

// ListAdverts serves the public feed: active adverts, optionally filtered by
// keyword and location.
func ListAdverts(c *fiber.Ctx) error {
	adverts, err := services.SearchAdverts(c.Query("keyword"), c.Query("location"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(adverts)
}

// MyJobs lists the authenticated company's adverts with applicant counts.
func MyJobs(c *fiber.Ctx) error {
	jobs, err := services.MyJobs(middleware.CurrentUserID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(jobs)
}
