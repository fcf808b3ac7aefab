package models

import (
	"time"

	"unibot/internal/shared/constants"
)

type DocumentModel struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"size:200;not null"`
	Category      string `gorm:"size:64;index"`
	Description   string `gorm:"size:1000"`
	FileID        string `gorm:"size:256"`
	URL           string `gorm:"size:512"`
	FileType      string `gorm:"size:16"`
	Keywords      string `gorm:"size:500"`
	IsActive      bool   `gorm:"not null;default:true;index"`
	DownloadCount int64  `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (DocumentModel) TableName() string {
	return constants.TableDocuments
}
