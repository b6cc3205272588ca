package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Verification codes and reset tokens share the same lifespan.
const CredentialLifespan = 20 * time.Minute

// PendingUser is an unconfirmed registration awaiting email-code
// verification. The unique index on email keeps at most one live record per
// address; re-registering overwrites the previous one.
type PendingUser struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email            string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password         string    `gorm:"not null" json:"-"`
	VerificationCode string    `gorm:"size:255;not null" json:"-"`
	Role             Role      `gorm:"size:20;not null;default:'candidate'" json:"role"`
	CreatedAt        time.Time `json:"created_at"`
}

func (p *PendingUser) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// IsValid reports whether the code is still within its lifespan. The boundary
// is inclusive: a code aged exactly 20 minutes still passes.
func (p *PendingUser) IsValid() bool {
	return time.Since(p.CreatedAt) <= CredentialLifespan
}
