package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sdas2004/job_portal/database"
	"github.com/sdas2004/job_portal/middleware"
	"github.com/sdas2004/job_portal/models"
	"github.com/sdas2004/job_portal/services"
)

func ListCategories(c *fiber.Ctx) error {
	var categories []models.TestCategory
	if err := database.DB.Order("name").Find(&categories).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load categories"})
	}
	return c.JSON(categories)
}

// QuestionForCandidate strips the correct option before a question is shown
// to the person taking the test.
type QuestionForCandidate struct {
	ID           uuid.UUID `json:"id"`
	QuestionText string    `json:"question_text"`
	Option1      string    `json:"option1"`
	Option2      string    `json:"option2"`
	Option3      string    `json:"option3"`
	Option4      string    `json:"option4"`
}

// StartTest samples the question set for an attempt in the given category.
// The client submits answers against exactly this set.
func StartTest(c *fiber.Ctx) error {
	categoryID, err := uuid.Parse(c.Params("categoryId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category id"})
	}

	questions, err := services.StartAttempt(categoryID)
	if err != nil {
		return serviceError(c, err)
	}

	sampled := make([]QuestionForCandidate, len(questions))
	for i, q := range questions {
		sampled[i] = QuestionForCandidate{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			Option1:      q.Option1,
			Option2:      q.Option2,
			Option3:      q.Option3,
			Option4:      q.Option4,
		}
	}

	return c.JSON(fiber.Map{
		"category_id": categoryID,
		"questions":   sampled,
	})
}

type SubmitTestRequest struct {
	QuestionIDs []string          `json:"question_ids"`
	Answers     map[string]string `json:"answers"`
}

// SubmitTest scores an attempt against the sampled question set from
// StartTest. Questions left out of answers are simply skipped.
func SubmitTest(c *fiber.Ctx) error {
	categoryID, err := uuid.Parse(c.Params("categoryId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category id"})
	}

	var req SubmitTestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	sampledIDs := make([]uuid.UUID, 0, len(req.QuestionIDs))
	for _, raw := range req.QuestionIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid question id"})
		}
		sampledIDs = append(sampledIDs, id)
	}

	responses := make(map[uuid.UUID]string, len(req.Answers))
	for raw, selected := range req.Answers {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid question id"})
		}
		if !models.ValidOption(selected) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid answer option"})
		}
		responses[id] = selected
	}

	result, err := services.SubmitAttempt(middleware.CurrentUserID(c), categoryID, sampledIDs, responses)
	if err != nil {
		return serviceError(c, err)
	}

	go services.CheckAndGenerateCertificate(*result)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": fmt.Sprintf("Test completed! You scored %d/%d.", result.Score, result.Total),
		"result":  result,
	})
}

// GetTestResult returns one of the authenticated candidate's attempts with
// its recorded answers.
func GetTestResult(c *fiber.Ctx) error {
	resultID, err := uuid.Parse(c.Params("resultId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid result id"})
	}

	result, answers, err := services.GetResult(middleware.CurrentUserID(c), resultID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"result":  result,
		"answers": answers,
	})
}

func MyResults(c *fiber.Ctx) error {
	results, err := services.MyResults(middleware.CurrentUserID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(results)
}

func MyCertificates(c *fiber.Ctx) error {
	var certificates []models.Certificate
	err := database.DB.Preload("Category").
		Where("user_id = ?", middleware.CurrentUserID(c)).
		Order("issued_at DESC").Find(&certificates).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load certificates"})
	}
	return c.JSON(certificates)
}
