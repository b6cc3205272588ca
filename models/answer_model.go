package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Answer records the option a candidate picked for one sampled question.
// Unanswered questions produce no row.
type Answer struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TestResultID   uuid.UUID `gorm:"type:uuid;not null;index" json:"test_result_id"`
	QuestionID     uuid.UUID `gorm:"type:uuid;not null;index" json:"question_id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	SelectedOption string    `gorm:"size:10;not null" json:"selected_option"`
	IsCorrect      bool      `gorm:"not null" json:"is_correct"`

	TestResult TestResult `gorm:"foreignKey:TestResultID;constraint:OnDelete:CASCADE" json:"-"`
	Question   Question   `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"question"`
}

func (a *Answer) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
