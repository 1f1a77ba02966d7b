package models

import (
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleEmployee Role = "EMPLOYEE"
	RoleAdmin    Role = "ADMIN"
)

type User struct {
	gorm.Model
	EmployeeID   string  `gorm:"type:varchar(50);uniqueIndex;not null"`
	Name         string  `gorm:"type:varchar(150);not null"`
	Email        *string `gorm:"type:varchar(191);uniqueIndex"`
	PasswordHash string  `gorm:"type:varchar(255);not null"`
	Role         Role    `gorm:"type:enum('EMPLOYEE','ADMIN');not null;index"`
	Active       bool    `gorm:"not null;default:true"`

	// Reset ticket: the SHA-256 digest of the mailed token plus its expiry.
	// Both are nil or both are set; a successful reset clears them in the
	// same statement that writes the new password hash.
	PasswordResetToken   *string    `gorm:"type:varchar(64);index"`
	PasswordResetExpires *time.Time `gorm:""`

	Attendance []Attendance `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Leaves     []Leave      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Tasks      []Task       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

func (r Role) IsValid() bool {
	switch r {
	case RoleEmployee, RoleAdmin:
		return true
	default:
		return false
	}
}
