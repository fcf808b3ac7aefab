package models

import (
	"time"

	"unibot/internal/shared/constants"
)

type NotificationModel struct {
	ID            uint    `gorm:"primaryKey"`
	Title         string  `gorm:"size:200;not null"`
	Message       string  `gorm:"type:text;not null"`
	TargetRole    *string `gorm:"size:20"`
	TargetGroup   *string `gorm:"size:32"`
	TargetCourse  *int
	TargetFaculty *string    `gorm:"size:128"`
	IsActive      bool       `gorm:"not null;default:true;index"`
	IsSent        bool       `gorm:"not null;default:false;index"`
	ScheduledAt   *time.Time `gorm:"index"`
	SentAt        *time.Time
	SentCount     int `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (NotificationModel) TableName() string {
	return constants.TableNotifications
}
