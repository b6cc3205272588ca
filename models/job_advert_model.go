package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	EmploymentFullTime = "Full Time"
	EmploymentPartTime = "Part Time"
	EmploymentContract = "Contract"
)

const (
	ExperienceEntry  = "Entry Level"
	ExperienceMid    = "Mid Level"
	ExperienceSenior = "Senior"
)

const (
	JobTypeOnsite = "Onsite"
	JobTypeHybrid = "Hybrid"
	JobTypeRemote = "Remote"
)

type JobAdvert struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title           string    `gorm:"size:150;not null" json:"title"`
	CompanyName     string    `gorm:"size:150;not null" json:"company_name"`
	EmploymentType  string    `gorm:"size:50;not null" json:"employment_type"`
	ExperienceLevel string    `gorm:"size:150;not null" json:"experience_level"`
	Description     string    `gorm:"type:text;not null" json:"description"`
	JobType         string    `gorm:"size:50;not null" json:"job_type"`
	Location        string    `gorm:"size:255" json:"location"`
	IsPublished     bool      `gorm:"default:true" json:"is_published"`
	Deadline        time.Time `gorm:"not null" json:"deadline"`
	Skills          string    `gorm:"size:255" json:"skills"`
	CreatedByID     uuid.UUID `gorm:"type:uuid;not null;index" json:"created_by_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CreatedBy    User             `gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE" json:"-"`
	Applications []JobApplication `gorm:"foreignKey:JobAdvertID" json:"-"`
}

func (a *JobAdvert) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// IsActive reports whether the advert is published and its deadline has not
// passed. The deadline day itself still counts.
func (a *JobAdvert) IsActive(now time.Time) bool {
	today := now.Truncate(24 * time.Hour)
	return a.IsPublished && !a.Deadline.Before(today)
}
