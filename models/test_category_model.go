package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TestCategory struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name string    `gorm:"size:100;not null;uniqueIndex" json:"name"`

	Questions []Question `gorm:"foreignKey:CategoryID" json:"-"`
}

func (c *TestCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
