package db

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB holds the submission outcome log. It stays nil when the log is disabled.
var DB *gorm.DB

// Open connects to the sqlite file at dbPath in WAL mode.
// ":memory:" and "file:" DSNs are passed through untouched.
func Open(dbPath string, environment string) (*gorm.DB, error) {
	logLevel := logger.Warn
	if environment == "development" {
		logLevel = logger.Info
	}

	dsn := dbPath
	if dbPath != ":memory:" && !strings.HasPrefix(dbPath, "file:") {
		if dir := filepath.Dir(dbPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
			}
		}
		dsn = dbPath + "?_journal_mode=WAL"
	}

	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return conn, nil
}

// Initialize opens the database, stores it in DB and migrates the given models
func Initialize(dbPath string, environment string, models ...interface{}) error {
	conn, err := Open(dbPath, environment)
	if err != nil {
		return err
	}
	if len(models) > 0 {
		if err := conn.AutoMigrate(models...); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	DB = conn
	log.Printf("Submission log ready at %s", dbPath)
	return nil
}

// Close closes the database connection
func Close() error {
	if DB == nil {
		return nil
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	return sqlDB.Close()
}
