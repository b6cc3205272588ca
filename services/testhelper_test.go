package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sdas2004/job_portal/database"
	"github.com/sdas2004/job_portal/models"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB swaps the global DB for a fresh in-memory store.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every session on the same in-memory store.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.PendingUser{},
		&models.Token{},
		&models.TestCategory{},
		&models.Question{},
		&models.TestResult{},
		&models.Answer{},
		&models.JobAdvert{},
		&models.JobApplication{},
		&models.Certificate{},
	))

	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })

	return db
}

type sentEmail struct {
	Subject    string
	Recipients []string
	Template   string
	Data       map[string]any
}

// captureEmails swaps the notification seam for an in-memory recorder.
func captureEmails(t *testing.T) *[]sentEmail {
	t.Helper()

	var sent []sentEmail
	prev := sendEmail
	sendEmail = func(subject string, recipients []string, templateName string, data map[string]any) {
		sent = append(sent, sentEmail{subject, recipients, templateName, data})
	}
	t.Cleanup(func() { sendEmail = prev })

	return &sent
}

func createUser(t *testing.T, email, password string, role models.Role) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := models.User{
		Email:    email,
		Password: string(hashed),
		Role:     role,
		IsActive: true,
	}
	require.NoError(t, database.DB.Create(&user).Error)
	return &user
}

func createCategory(t *testing.T, name string) *models.TestCategory {
	t.Helper()

	category := models.TestCategory{Name: name}
	require.NoError(t, database.DB.Create(&category).Error)
	return &category
}

func seedQuestions(t *testing.T, categoryID uuid.UUID, n int) []models.Question {
	t.Helper()

	questions := make([]models.Question, 0, n)
	for i := 0; i < n; i++ {
		question := models.Question{
			CategoryID:    categoryID,
			QuestionText:  "question",
			Option1:       "a",
			Option2:       "b",
			Option3:       "c",
			Option4:       "d",
			CorrectOption: models.OptionOne,
		}
		require.NoError(t, database.DB.Create(&question).Error)
		questions = append(questions, question)
	}
	return questions
}

func createAdvert(t *testing.T, owner *models.User, fields AdvertFields, createdAt time.Time) *models.JobAdvert {
	t.Helper()

	advert := models.JobAdvert{
		Title:           fields.Title,
		CompanyName:     fields.CompanyName,
		EmploymentType:  fields.EmploymentType,
		ExperienceLevel: fields.ExperienceLevel,
		Description:     fields.Description,
		JobType:         fields.JobType,
		Location:        fields.Location,
		Skills:          fields.Skills,
		IsPublished:     fields.IsPublished,
		Deadline:        fields.Deadline,
		CreatedByID:     owner.ID,
		CreatedAt:       createdAt,
	}
	require.NoError(t, database.DB.Create(&advert).Error)
	return &advert
}

func advertFields(title string) AdvertFields {
	return AdvertFields{
		Title:           title,
		CompanyName:     "Acme Corp",
		EmploymentType:  models.EmploymentFullTime,
		ExperienceLevel: models.ExperienceMid,
		Description:     "We build things.",
		JobType:         models.JobTypeRemote,
		Location:        "Berlin",
		Skills:          "go, sql",
		IsPublished:     true,
		Deadline:        time.Now().UTC().Add(7 * 24 * time.Hour),
	}
}
