package models

import (
	"time"

	"unibot/internal/shared/constants"
)

type UserModel struct {
	ID                   uint   `gorm:"primaryKey"`
	TelegramID           int64  `gorm:"uniqueIndex;not null"`
	Username             string `gorm:"size:64"`
	FirstName            string `gorm:"size:128"`
	LastName             string `gorm:"size:128"`
	FullName             string `gorm:"size:200"`
	Course               int
	GroupName            string `gorm:"size:32;index"`
	StudentID            string `gorm:"size:32"`
	Faculty              string `gorm:"size:128;index"`
	Role                 string `gorm:"size:20;not null;default:'student';index"`
	IsActive             bool   `gorm:"not null;default:true;index"`
	IsVerified           bool   `gorm:"not null;default:false"`
	NotificationsEnabled bool   `gorm:"not null;default:true"`
	IsOnboarded          bool   `gorm:"not null;default:false"`
	TipsEnabled          bool   `gorm:"not null;default:true"`
	Language             string `gorm:"size:8;not null;default:'ru'"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
	LastActivity         *time.Time `gorm:"index"`
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
