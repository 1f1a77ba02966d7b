package models

import (
	"time"

	"gorm.io/gorm"
)

type LeaveStatus string

const (
	LeavePending  LeaveStatus = "PENDING"
	LeaveApproved LeaveStatus = "APPROVED"
	LeaveRejected LeaveStatus = "REJECTED"
)

type Leave struct {
	gorm.Model
	UserID    uint      `gorm:"not null;index"`
	StartDate time.Time `gorm:"type:date;not null"`
	EndDate   time.Time `gorm:"type:date;not null"`
	Reason    string    `gorm:"type:text"`
	Status    LeaveStatus `gorm:"type:enum('PENDING','APPROVED','REJECTED');not null;default:'PENDING';index"`
	// DocumentKey is the object key of the supporting document in the
	// storage bucket, when one was attached.
	DocumentKey *string `gorm:"type:varchar(255)"`
	ApprovedBy  *uint
	ApprovedAt  *time.Time
}

func (Leave) TableName() string {
	return "leaves"
}

func (s LeaveStatus) IsDecision() bool {
	return s == LeaveApproved || s == LeaveRejected
}
