package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Certificate is issued when a candidate passes a category quiz with a high
// enough score. CertificateURL points at the rendered PDF.
type Certificate struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID     uuid.UUID `gorm:"type:uuid;not null" json:"category_id"`
	Title          string    `gorm:"size:255;not null" json:"title"`
	Score          int       `gorm:"not null" json:"score"`
	Total          int       `gorm:"not null" json:"total"`
	CertificateURL string    `gorm:"type:text;not null" json:"certificate_url"`
	IssuedAt       time.Time `gorm:"not null" json:"issued_at"`

	User     User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Category TestCategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"category"`
}

func (c *Certificate) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
