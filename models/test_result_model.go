package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestResult is one candidate attempt at a category quiz. Total is the size
// of the sampled question set for that attempt, Score the number answered
// correctly.
type TestResult struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index" json:"category_id"`
	Score      int       `gorm:"default:0" json:"score"`
	Total      int       `gorm:"default:0" json:"total"`
	DateTaken  time.Time `json:"date_taken"`

	User     User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Category TestCategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"category"`
	Answers  []Answer     `gorm:"foreignKey:TestResultID" json:"-"`
}

func (r *TestResult) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
