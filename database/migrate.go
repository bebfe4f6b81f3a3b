package database

import (
	"portfolio/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Models lists every table the API owns, in creation order.
func Models() []interface{} {
	return []interface{}{
		&models.Article{},
		&models.Project{},
		&models.Message{},
		&models.SiteSetting{},
		&models.NavItem{},
		&models.Skill{},
		&models.Experience{},
		&models.Education{},
		&models.TimelineEvent{},
	}
}

func MigrateDatabase(db *gorm.DB) error {
	zap.L().Info("running database migrations")

	if err := db.AutoMigrate(Models()...); err != nil {
		zap.L().Error("error during migration", zap.Error(err))
		return err
	}

	zap.L().Info("database migrations completed successfully")
	return nil
}
