package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleCompany   Role = "company"
	RoleCandidate Role = "candidate"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCompany, RoleCandidate:
		return true
	}
	return false
}

// Resource areas gated by role.
const (
	ResourceAdminPanel = "admin_panel"
	ResourceAdverts    = "adverts"
	ResourceTests      = "tests"
)

// CanAccess is the single role policy. Ownership checks on individual
// records stay in the services.
func CanAccess(role Role, resource string) bool {
	switch resource {
	case ResourceAdminPanel:
		return role == RoleAdmin
	case ResourceAdverts:
		return role == RoleCompany
	case ResourceTests:
		return role == RoleCandidate
	}
	return false
}

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email    string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Role     Role      `gorm:"size:20;not null;default:'candidate'" json:"role"`
	IsActive bool      `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Results []TestResult `gorm:"foreignKey:UserID" json:"results,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
