package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationStatus string

const (
	StatusApplied   ApplicationStatus = "APPLIED"
	StatusRejected  ApplicationStatus = "REJECTED"
	StatusInterview ApplicationStatus = "INTERVIEW"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusApplied, StatusRejected, StatusInterview:
		return true
	}
	return false
}

// JobApplication is one candidate application to an advert. Email is stored
// lowercased and the composite unique index with the advert enforces one
// application per address per advert at the store level.
type JobApplication struct {
	ID           uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	JobAdvertID  uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_applications_advert_email" json:"job_advert_id"`
	Name         string            `gorm:"size:50;not null" json:"name"`
	Email        string            `gorm:"size:255;not null;uniqueIndex:idx_applications_advert_email" json:"email"`
	PortfolioURL string            `gorm:"size:255" json:"portfolio_url"`
	CV           string            `gorm:"size:255" json:"cv"`
	Status       ApplicationStatus `gorm:"size:20;not null;default:'APPLIED'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	JobAdvert JobAdvert `gorm:"foreignKey:JobAdvertID;constraint:OnDelete:CASCADE" json:"-"`
}

func (a *JobApplication) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
