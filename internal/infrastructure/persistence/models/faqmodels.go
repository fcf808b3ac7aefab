package models

import (
	"time"

	"gorm.io/datatypes"

	"unibot/internal/shared/constants"
)

type FAQCategoryModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	Slug        string `gorm:"size:100;uniqueIndex;not null"`
	Description string `gorm:"size:500"`
	Icon        string `gorm:"size:16"`
	SortOrder   int    `gorm:"not null;default:0;index"`
	IsActive    bool   `gorm:"not null;default:true;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (FAQCategoryModel) TableName() string {
	return constants.TableFAQCategories
}

type FAQItemModel struct {
	ID              uint           `gorm:"primaryKey"`
	CategoryID      uint           `gorm:"not null;index"`
	Question        string         `gorm:"size:500;not null"`
	Answer          string         `gorm:"type:text;not null"`
	Keywords        string         `gorm:"size:500"`
	Links           datatypes.JSON `gorm:"type:json"` // attached links (JSON array of label/url)
	SortOrder       int            `gorm:"not null;default:0"`
	IsPinned        bool           `gorm:"not null;default:false"`
	IsActive        bool           `gorm:"not null;default:true;index"`
	ViewCount       int64          `gorm:"not null;default:0"`
	HelpfulCount    int64          `gorm:"not null;default:0"`
	NotHelpfulCount int64          `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (FAQItemModel) TableName() string {
	return constants.TableFAQItems
}

type FAQRatingModel struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_rating_user_item"`
	ItemID    uint `gorm:"not null;uniqueIndex:idx_rating_user_item"`
	Helpful   bool `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (FAQRatingModel) TableName() string {
	return constants.TableFAQRatings
}

type UserFavoriteModel struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_favorite_user_item"`
	ItemID    uint `gorm:"not null;uniqueIndex:idx_favorite_user_item"`
	CreatedAt time.Time
}

func (UserFavoriteModel) TableName() string {
	return constants.TableUserFavorites
}
