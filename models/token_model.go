package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TokenType string

const (
	TokenTypePasswordReset TokenType = "PASSWORD_RESET"
)

// Token is a short-lived secret tied to a user. The composite unique index
// on (user_id, token_type) means issuing a new token of the same kind
// replaces the previous one, so only the latest secret ever validates.
type Token struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_tokens_user_type" json:"user_id"`
	Token     string    `gorm:"size:255;not null" json:"-"`
	TokenType TokenType `gorm:"size:100;not null;uniqueIndex:idx_tokens_user_type" json:"token_type"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (t *Token) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

func (t *Token) IsValid() bool {
	return time.Since(t.CreatedAt) <= CredentialLifespan
}
