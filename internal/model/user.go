package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleFleetManager     Role = "Fleet Manager"
	RoleDispatcher       Role = "Dispatcher"
	RoleSafetyOfficer    Role = "Safety Officer"
	RoleFinancialAnalyst Role = "Financial Analyst"
)

func (r Role) Valid() bool {
	switch r {
	case RoleFleetManager, RoleDispatcher, RoleSafetyOfficer, RoleFinancialAnalyst:
		return true
	}
	return false
}

// User is a back-office account. The password hash and reset token fields are
// never serialized outward.
type User struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Email             string     `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash      string     `gorm:"type:varchar(255);not null" json:"-"`
	Role              Role       `gorm:"type:user_role;not null" json:"role"`
	Name              string     `gorm:"type:varchar(255)" json:"name"`
	ResetTokenHash    *string    `gorm:"type:varchar(128)" json:"-"`
	ResetTokenExpires *time.Time `json:"-"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Principal is the authenticated identity attached to a request after the
// bearer credential has been re-validated against the store.
type Principal struct {
	UserID uuid.UUID
	Email  string
	Name   string
	Role   Role
}
