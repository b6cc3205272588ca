package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sdas2004/job_portal/database"
	"github.com/sdas2004/job_portal/models"
	"github.com/sdas2004/job_portal/notifications"
	"gorm.io/gorm"
)

type AdvertFields struct {
	Title           string
	CompanyName     string
	EmploymentType  string
	ExperienceLevel string
	Description     string
	JobType         string
	Location        string
	Skills          string
	IsPublished     bool
	Deadline        time.Time
}

func CreateAdvert(ownerID uuid.UUID, fields AdvertFields) (*models.JobAdvert, error) {
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
		CreatedByID:     ownerID,
	}
	if err := database.DB.Create(&advert).Error; err != nil {
		return nil, err
	}
	return &advert, nil
}

func GetAdvert(advertID uuid.UUID) (*models.JobAdvert, error) {
	var advert models.JobAdvert
	err := database.DB.First(&advert, "id = ?", advertID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &advert, nil
}

func UpdateAdvert(advertID, actorID uuid.UUID, fields AdvertFields) (*models.JobAdvert, error) {
	advert, err := GetAdvert(advertID)
	if err != nil {
		return nil, err
	}
	if advert.CreatedByID != actorID {
		return nil, ErrForbidden
	}

	advert.Title = fields.Title
	advert.CompanyName = fields.CompanyName
	advert.EmploymentType = fields.EmploymentType
	advert.ExperienceLevel = fields.ExperienceLevel
	advert.Description = fields.Description
	advert.JobType = fields.JobType
	advert.Location = fields.Location
	advert.Skills = fields.Skills
	advert.IsPublished = fields.IsPublished
	advert.Deadline = fields.Deadline

	if err := database.DB.Save(advert).Error; err != nil {
		return nil, err
	}
	return advert, nil
}

func DeleteAdvert(advertID, actorID uuid.UUID) error {
	advert, err := GetAdvert(advertID)
	if err != nil {
		return err
	}
	if advert.CreatedByID != actorID {
		return ErrForbidden
	}
	return database.DB.Delete(advert).Error
}

func PublishAdvert(advertID, actorID uuid.UUID) (*models.JobAdvert, error) {
	advert, err := GetAdvert(advertID)
	if err != nil {
		return nil, err
	}
	if advert.CreatedByID != actorID {
		return nil, ErrForbidden
	}

	err = database.DB.Model(advert).Update("is_published", true).Error
	if err != nil {
		return nil, err
	}
	return advert, nil
}

// activeAdverts scopes a query to published adverts whose deadline has not
// passed. The deadline day itself still counts.
func activeAdverts() *gorm.DB {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	return database.DB.Where("is_published = ?", true).Where("deadline >= ?", today)
}

// SearchAdverts filters active adverts. Keyword matches any of title,
// company name, description or skills; location matches location. Both are
// case-insensitive substrings and AND together; empty filters are no-ops.
// Newest adverts come first.
func SearchAdverts(keyword, location string) ([]models.JobAdvert, error) {
	query := activeAdverts()

	if keyword != "" {
		pattern := "%" + strings.ToLower(keyword) + "%"
		query = query.Where(
			"(LOWER(title) LIKE ? OR LOWER(company_name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(skills) LIKE ?)",
			pattern, pattern, pattern, pattern,
		)
	}
	if location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(location)+"%")
	}

	var adverts []models.JobAdvert
	if err := query.Order("created_at DESC").Find(&adverts).Error; err != nil {
		return nil, err
	}
	return adverts, nil
}

type AdvertWithApplicants struct {
	models.JobAdvert
	TotalApplicants int64 `json:"total_applicants"`
}

// MyJobs lists an owner's adverts with their application counts.
func MyJobs(ownerID uuid.UUID) ([]AdvertWithApplicants, error) {
	var adverts []models.JobAdvert
	err := database.DB.Where("created_by_id = ?", ownerID).
		Order("created_at DESC").Find(&adverts).Error
	if err != nil {
		return nil, err
	}

	jobs := make([]AdvertWithApplicants, 0, len(adverts))
	for _, advert := range adverts {
		var count int64
		err := database.DB.Model(&models.JobApplication{}).
			Where("job_advert_id = ?", advert.ID).Count(&count).Error
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, AdvertWithApplicants{JobAdvert: advert, TotalApplicants: count})
	}
	return jobs, nil
}

// Apply records a job application. One application per email per advert,
// compared case-insensitively; the composite unique index backs the check up
// under concurrent submissions.
func Apply(advertID uuid.UUID, name, email, portfolioURL, cvURL string) (*models.JobApplication, error) {
	if _, err := GetAdvert(advertID); err != nil {
		return nil, err
	}

	cleanedEmail := strings.ToLower(strings.TrimSpace(email))

	var count int64
	err := database.DB.Model(&models.JobApplication{}).
		Where("job_advert_id = ? AND LOWER(email) = ?", advertID, cleanedEmail).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateApplication
	}

	application := models.JobApplication{
		JobAdvertID:  advertID,
		Name:         name,
		Email:        cleanedEmail,
		PortfolioURL: portfolioURL,
		CV:           cvURL,
		Status:       models.StatusApplied,
	}
	if err := database.DB.Create(&application).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateApplication
		}
		return nil, err
	}
	return &application, nil
}

// MyApplications lists applications submitted with the given email.
func MyApplications(email string) ([]models.JobApplication, error) {
	cleanedEmail := strings.ToLower(strings.TrimSpace(email))

	var applications []models.JobApplication
	err := database.DB.Preload("JobAdvert").
		Where("email = ?", cleanedEmail).Order("created_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

// AdvertApplications lists the applications on an advert, owner only.
func AdvertApplications(advertID, actorID uuid.UUID) ([]models.JobApplication, error) {
	advert, err := GetAdvert(advertID)
	if err != nil {
		return nil, err
	}
	if advert.CreatedByID != actorID {
		return nil, ErrForbidden
	}

	var applications []models.JobApplication
	err = database.DB.Where("job_advert_id = ?", advertID).
		Order("created_at DESC").Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

// Decide sets an application's status, owner only. Statuses are free
// re-assignments, not a state machine. A rejection additionally notifies the
// applicant by email after the status is committed.
func Decide(applicationID, actorID uuid.UUID, status models.ApplicationStatus) (*models.JobApplication, error) {
	var application models.JobApplication
	err := database.DB.Preload("JobAdvert").First(&application, "id = ?", applicationID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if application.JobAdvert.CreatedByID != actorID {
		return nil, ErrForbidden
	}

	err = database.DB.Model(&application).Update("status", status).Error
	if err != nil {
		return nil, err
	}
	application.Status = status

	if status == models.StatusRejected {
		sendEmail(
			"Application Outcome for "+application.JobAdvert.Title,
			[]string{application.Email},
			notifications.TemplateApplicationOutcome,
			map[string]any{
				"ApplicantName": application.Name,
				"JobTitle":      application.JobAdvert.Title,
				"CompanyName":   application.JobAdvert.CompanyName,
			},
		)
	}

	return &application, nil
}
