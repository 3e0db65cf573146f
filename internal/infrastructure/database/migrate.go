package database

import (
	"fmt"

	"pdrims-http-service/internal/domain/models"
	"pdrims-http-service/pkg/logger"

	"gorm.io/gorm"
)

// Models lists every table in creation order.
var Models = []interface{}{
	&models.User{},
	&models.Household{},
	&models.AidRecord{},
	&models.SystemLog{},
	&models.InboxMessage{},
}

// Migrate runs the schema step selected by mode: "auto" only adds tables and
// columns, "drop" drops every table first. All data is lost in drop mode.
func Migrate(db *gorm.DB, mode string) error {
	switch mode {
	case "", "auto":
		logger.Info("running auto migration: only new tables and columns are added")
		return AutoMigrate(db)
	case "drop":
		logger.Warning("running drop migration: every table is dropped and recreated")
		return DropAndRecreateTables(db)
	default:
		return fmt.Errorf("unknown migration mode %q", mode)
	}
}

// AutoMigrate creates missing tables, columns and constraints.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	logger.Info("database migration completed")
	return nil
}

// DropAndRecreateTables drops all tables, children first, then recreates them.
func DropAndRecreateTables(db *gorm.DB) error {
	migrator := db.Migrator()
	for i := len(Models) - 1; i >= 0; i-- {
		if err := migrator.DropTable(Models[i]); err != nil {
			return fmt.Errorf("drop table: %w", err)
		}
	}
	return AutoMigrate(db)
}
