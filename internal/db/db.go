package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mvcarvalho/clinigo/internal/models"
)

var (
	DB     *gorm.DB
	dbPath string
)

// Initialize opens the clinic database file, runs migrations and seeds
// the defaults a fresh install needs.
func Initialize(path string) error {
	// Ensure the data directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	database, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	DB = database
	dbPath = path

	if err := runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := seedDefaults(); err != nil {
		return fmt.Errorf("failed to seed defaults: %w", err)
	}

	return nil
}

// runMigrations creates/updates the database schema
func runMigrations() error {
	return DB.AutoMigrate(
		&models.HealthPlan{},
		&models.Patient{},
		&models.Therapist{},
		&models.Session{},
		&models.AvailabilitySlot{},
		&models.ClinicalRecord{},
		&models.Expense{},
		&models.User{},
	)
}

// seedDefaults populates the health-plan catalog on first run and
// guarantees at least one admin account exists.
func seedDefaults() error {
	var planCount int64
	if err := DB.Model(&models.HealthPlan{}).Count(&planCount).Error; err != nil {
		return err
	}
	if planCount == 0 {
		names := []string{
			"Private", "Unimed", "Hapvida", "Bradesco Saúde",
			"Amil", "SulAmérica Saúde", "NotreDame Intermédica", "Other",
		}
		for _, name := range names {
			if err := DB.Create(&models.HealthPlan{Name: name}).Error; err != nil {
				return err
			}
		}
		log.Info().Int("plans", len(names)).Msg("seeded health plan catalog")
	}

	var adminCount int64
	err := DB.Model(&models.User{}).
		Where("access_level = ?", models.AccessAdmin).
		Count(&adminCount).Error
	if err != nil {
		return err
	}
	if adminCount == 0 {
		if _, err := CreateUser("admin", "admin123", models.AccessAdmin); err != nil {
			return err
		}
		log.Warn().
			Str("username", "admin").
			Msg("no admin user found, created default account; change its password")
	}

	return nil
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		sqlDB, err := DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
