package database

import (
	"fmt"
	"strings"

	"gocafe/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open connects to the database described by url. A postgres URL or DSN
// selects the postgres driver; anything else is treated as a sqlite file
// path (the development and test default).
func Open(url string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		// Map driver-specific unique-violation errors onto
		// gorm.ErrDuplicatedKey so repositories can branch on them.
		TranslateError: true,
	}

	var (
		db  *gorm.DB
		err error
	)
	if isPostgres(url) {
		db, err = gorm.Open(postgres.Open(url), cfg)
	} else {
		db, err = gorm.Open(sqlite.Open(url), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema for all application models.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.City{},
		&models.Cafe{},
		&models.User{},
		&models.Like{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func isPostgres(url string) bool {
	return strings.HasPrefix(url, "postgres://") ||
		strings.HasPrefix(url, "postgresql://") ||
		strings.Contains(url, "host=")
}
