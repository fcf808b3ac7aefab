package models

import (
	"time"

	"unibot/internal/shared/constants"
)

type ScheduleEventModel struct {
	ID            uint   `gorm:"primaryKey"`
	Title         string `gorm:"size:200;not null"`
	Description   string `gorm:"size:1000"`
	EventType     string `gorm:"size:20;not null;index"`
	GroupName     string `gorm:"size:32;index"`
	Faculty       string `gorm:"size:128;index"`
	Course        int
	Location      string    `gorm:"size:128"`
	Instructor    string    `gorm:"size:200"`
	StartsAt      time.Time `gorm:"not null;index"`
	EndsAt        *time.Time
	IsCancelled   bool `gorm:"not null;default:false"`
	IsRescheduled bool `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (ScheduleEventModel) TableName() string {
	return constants.TableScheduleEvents
}
