package migration

import (
	"fmt"

	"gorm.io/gorm"

	"unibot/internal/infrastructure/persistence/models"
	"unibot/internal/shared/logger"
)

// allModels is the ordered AutoMigrate list; parents before children so
// foreign keys resolve.
var allModels = []interface{}{
	&models.UserModel{},
	&models.FAQCategoryModel{},
	&models.FAQItemModel{},
	&models.FAQRatingModel{},
	&models.UserFavoriteModel{},
	&models.TicketModel{},
	&models.TicketMessageModel{},
	&models.DocumentModel{},
	&models.ScheduleEventModel{},
	&models.RequestLogModel{},
	&models.FeedbackModel{},
	&models.NotificationModel{},
}

// Run migrates the full schema.
func Run(db *gorm.DB) error {
	logger.Info("running schema migration", "models", len(allModels))

	if err := db.AutoMigrate(allModels...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	logger.Info("schema migration completed")
	return nil
}
