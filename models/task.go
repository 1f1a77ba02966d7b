package models

import (
	"time"

	"gorm.io/gorm"
)

type Task struct {
	gorm.Model
	UserID      uint   `gorm:"not null;index"`
	Title       string `gorm:"type:varchar(200);not null"`
	Description string `gorm:"type:text"`
	DueDate     *time.Time
	Category    string `gorm:"type:varchar(100)"`
	Priority    string `gorm:"type:varchar(50)"`
	Completed   bool   `gorm:"not null;default:false"`
}

func (Task) TableName() string {
	return "tasks"
}
