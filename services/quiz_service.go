package services

import (
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sdas2004/job_portal/database"
	"github.com/sdas2004/job_portal/models"
	"gorm.io/gorm"
)

const MaxQuestionsPerAttempt = 20

// StartAttempt samples the question set for a fresh attempt: min(pool, 20)
// questions drawn uniformly without replacement. The returned set is the
// fixed question list for the attempt; the caller carries it through to
// SubmitAttempt unchanged. An empty category yields an empty sample.
func StartAttempt(categoryID uuid.UUID) ([]models.Question, error) {
	var category models.TestCategory
	err := database.DB.First(&category, "id = ?", categoryID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var pool []models.Question
	if err := database.DB.Where("category_id = ?", categoryID).Find(&pool).Error; err != nil {
		return nil, err
	}

	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	n := len(pool)
	if n > MaxQuestionsPerAttempt {
		n = MaxQuestionsPerAttempt
	}
	return pool[:n], nil
}

// SubmitAttempt scores one attempt and persists the result together with its
// answers in a single transaction. Sampled questions missing from responses
// are skipped entirely: no answer row, not right, not wrong. Total is always
// the sampled size.
func SubmitAttempt(userID, categoryID uuid.UUID, sampledIDs []uuid.UUID, responses map[uuid.UUID]string) (*models.TestResult, error) {
	var category models.TestCategory
	err := database.DB.First(&category, "id = ?", categoryID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var questions []models.Question
	if len(sampledIDs) > 0 {
		err = database.DB.Where("id IN ? AND category_id = ?", sampledIDs, categoryID).Find(&questions).Error
		if err != nil {
			return nil, err
		}
	}
	if len(questions) != len(sampledIDs) {
		return nil, ErrNotFound
	}

	result := models.TestResult{
		UserID:     userID,
		CategoryID: categoryID,
		Score:      0,
		Total:      len(sampledIDs),
		DateTaken:  time.Now().UTC(),
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&result).Error; err != nil {
			return err
		}

		score := 0
		for _, question := range questions {
			selected, answered := responses[question.ID]
			if !answered {
				continue
			}

			isCorrect := selected == question.CorrectOption
			if isCorrect {
				score++
			}

			answer := models.Answer{
				TestResultID:   result.ID,
				QuestionID:     question.ID,
				UserID:         userID,
				SelectedOption: selected,
				IsCorrect:      isCorrect,
			}
			if err := tx.Create(&answer).Error; err != nil {
				return err
			}
		}

		result.Score = score
		return tx.Model(&models.TestResult{}).Where("id = ?", result.ID).
			Update("score", score).Error
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// GetResult fetches an attempt strictly owned by the requesting user.
func GetResult(userID, resultID uuid.UUID) (*models.TestResult, []models.Answer, error) {
	var result models.TestResult
	err := database.DB.Preload("Category").
		First(&result, "id = ? AND user_id = ?", resultID, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	var answers []models.Answer
	err = database.DB.Preload("Question").
		Where("test_result_id = ?", result.ID).Find(&answers).Error
	if err != nil {
		return nil, nil, err
	}

	return &result, answers, nil
}

// MyResults lists a candidate's attempts, newest first.
func MyResults(userID uuid.UUID) ([]models.TestResult, error) {
	var results []models.TestResult
	err := database.DB.Preload("Category").
		Where("user_id = ?", userID).Order("date_taken DESC").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
