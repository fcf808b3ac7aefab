package models

import (
	"time"

	"unibot/internal/shared/constants"
)

type RequestLogModel struct {
	ID             uint   `gorm:"primaryKey"`
	UserID         uint   `gorm:"index"`
	RequestType    string `gorm:"size:20;not null;index"`
	Text           string `gorm:"size:1000"`
	Category       string `gorm:"size:64;index"`
	ResponseType   string `gorm:"size:20"`
	ResponseTimeMs int64
	CreatedAt      time.Time `gorm:"index"`
}

func (RequestLogModel) TableName() string {
	return constants.TableRequestLogs
}
