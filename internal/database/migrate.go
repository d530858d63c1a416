package database

import (
	"fmt"
	"log/slog"

	"qenea/internal/middleware"
	"qenea/internal/models"

	"gorm.io/gorm"
)

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Profile{},
		&models.Follow{},
		&models.Question{},
		&models.Answer{},
		&models.Comment{},
		&models.Tag{},
		&models.Vote{},
	}
}

// Migrate applies the schema for all persistent models plus the indexes GORM
// tags cannot express.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(PersistentModels()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	// Username uniqueness is case-insensitive; the column index alone is not
	// enough on PostgreSQL.
	if db.Dialector.Name() == "postgres" {
		if err := db.Exec(
			"CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username_lower ON users (LOWER(username))",
		).Error; err != nil {
			middleware.Logger.Warn("Failed to ensure case-insensitive username index",
				slog.String("error", err.Error()))
		}
	}

	return nil
}
