package config

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/QUARTER-salon/practice-tracker/models"
)

var DB *gorm.DB

// ConnectDatabase establishes the datastore connection. The GO_ENV
// flag selects the backend at startup: the test environment runs on
// sqlite, everything else on PostgreSQL via DATABASE_URL. There is no
// runtime switching.
func ConnectDatabase(cfg *Config) error {
	var err error
	if cfg.IsTest() {
		dsn := cfg.DatabaseURL
		if dsn == "" {
			dsn = ":memory:"
		}
		DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	} else {
		DB, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	}
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection established successfully")
	return nil
}

// MigrateDatabase creates or updates the schema for every model.
func MigrateDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Store{},
		&models.Role{},
		&models.Trainer{},
		&models.TechCategory{},
		&models.TechDetail{},
		&models.WigInventory{},
		&models.Staff{},
		&models.PracticeRecord{},
		&models.Session{},
	)
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}

// SetDB overrides the database instance (used in tests)
func SetDB(db *gorm.DB) {
	DB = db
}
