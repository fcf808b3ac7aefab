package models

import (
	"time"

	"unibot/internal/shared/constants"
)

type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	Number      string `gorm:"size:16;uniqueIndex;not null"`
	OwnerID     uint   `gorm:"not null;index"`
	AssigneeID  *uint  `gorm:"index"`
	Subject     string `gorm:"size:200;not null"`
	Description string `gorm:"type:text;not null"`
	Status      string `gorm:"size:20;not null;default:'open';index"`
	Priority    int    `gorm:"not null;default:2"`
	Category    string `gorm:"size:64"`
	IsAnonymous bool   `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ResolvedAt  *time.Time
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}

type TicketMessageModel struct {
	ID          uint   `gorm:"primaryKey"`
	TicketID    uint   `gorm:"not null;index"`
	AuthorID    uint   `gorm:"not null"`
	Body        string `gorm:"type:text;not null"`
	IsFromStaff bool   `gorm:"not null;default:false"`
	IsInternal  bool   `gorm:"not null;default:false"`
	CreatedAt   time.Time
}

func (TicketMessageModel) TableName() string {
	return constants.TableTicketMessages
}
