package models

import (
	"time"

	"restaurent-app-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles a user account can hold. The dashboard view a user is served is
// derived from this value alone.
const (
	RoleManager       = "manager"
	RoleAdmin         = "admin"
	RoleBranchManager = "branch manager"
	RoleWaiter        = "waiter"
	RoleChef          = "chef"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FullName string    `gorm:"not null" json:"fullname"`
	UserName string    `gorm:"uniqueIndex;not null" json:"username"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"type:varchar(20);not null" json:"role"`
	Phone    string    `json:"phone"`

	BranchID *uuid.UUID `gorm:"type:uuid;index" json:"branchId,omitempty"`
	Branch   *Branch    `gorm:"foreignKey:BranchID" json:"-"`

	LastLogin *time.Time `json:"-"`
	IsActive  bool       `gorm:"default:true" json:"-"`

	gorm.Model
}

// ValidRole reports whether role is one of the five account roles.
func ValidRole(role string) bool {
	switch role {
	case RoleManager, RoleAdmin, RoleBranchManager, RoleWaiter, RoleChef:
		return true
	}
	return false
}

// Initialize UUID and hash the password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}
