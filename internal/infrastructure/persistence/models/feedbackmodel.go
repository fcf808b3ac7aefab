package models

import (
	"time"

	"unibot/internal/shared/constants"
)

type FeedbackModel struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"index"`
	Type        string `gorm:"size:20;not null;index"`
	Rating      int
	Text        string `gorm:"size:2000"`
	IsProcessed bool   `gorm:"not null;default:false;index"`
	CreatedAt   time.Time
}

func (FeedbackModel) TableName() string {
	return constants.TableFeedbacks
}
