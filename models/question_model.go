package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// The four fixed answer slots a question may mark as correct.
const (
	OptionOne   = "option1"
	OptionTwo   = "option2"
	OptionThree = "option3"
	OptionFour  = "option4"
)

func ValidOption(option string) bool {
	switch option {
	case OptionOne, OptionTwo, OptionThree, OptionFour:
		return true
	}
	return false
}

type Question struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CategoryID    uuid.UUID `gorm:"type:uuid;not null;index" json:"category_id"`
	QuestionText  string    `gorm:"type:text;not null" json:"question_text"`
	Option1       string    `gorm:"size:255;not null" json:"option1"`
	Option2       string    `gorm:"size:255;not null" json:"option2"`
	Option3       string    `gorm:"size:255;not null" json:"option3"`
	Option4       string    `gorm:"size:255;not null" json:"option4"`
	CorrectOption string    `gorm:"size:10;not null" json:"correct_option"`

	Category TestCategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}
