package models

import (
	"time"

	"gorm.io/gorm"
)

type AttendanceStatus string

const (
	AttendancePending  AttendanceStatus = "PENDING"
	AttendanceApproved AttendanceStatus = "APPROVED"
)

type Attendance struct {
	gorm.Model
	UserID uint `gorm:"not null;index;uniqueIndex:idx_attendance_user_day"`
	// WorkDate carries only the calendar date; the composite unique index
	// with UserID is what rejects a second check-in on the same day.
	WorkDate   time.Time        `gorm:"type:date;not null;uniqueIndex:idx_attendance_user_day"`
	CheckInAt  time.Time        `gorm:"not null"`
	CheckOutAt *time.Time
	Status     AttendanceStatus `gorm:"type:enum('PENDING','APPROVED');not null;default:'PENDING'"`
	ApprovedBy *uint
	ApprovedAt *time.Time
}

func (Attendance) TableName() string {
	return "attendance"
}
