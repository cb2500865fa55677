package database

import (
	"fmt"
	"time"

	"github.com/medcalc/backend/internal/config"
	"github.com/medcalc/backend/internal/database/migrations"
	"github.com/medcalc/backend/internal/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// User is identified by an opaque caller-supplied UserID. A record is created
// lazily on the first calculation or metric submission.
type User struct {
	gorm.Model
	UserID    string `gorm:"type:varchar(255);uniqueIndex"`
	Email     string `gorm:"type:varchar(255)"`
	FirstName string `gorm:"type:varchar(255)"`
	LastName  string `gorm:"type:varchar(255)"`
	IsActive  bool   `gorm:"default:true"`
}

// Calculation stores one evaluated formula result. UserID is a soft reference;
// orphaned rows are tolerated.
type Calculation struct {
	ID             uint   `gorm:"primarykey"`
	UserID         string `gorm:"type:varchar(255);index"`
	CalcType       string `gorm:"type:varchar(50)"`
	InputData      string `gorm:"type:text"`
	Result         float64
	Interpretation *string `gorm:"type:text"`
	CreatedAt      time.Time
}

// HealthMetric is a user-reported measurement not produced by a formula.
type HealthMetric struct {
	ID         uint   `gorm:"primarykey"`
	UserID     string `gorm:"type:varchar(255);index"`
	MetricType string `gorm:"type:varchar(100)"`
	Value      float64
	Unit       string  `gorm:"type:varchar(50)"`
	Notes      *string `gorm:"type:varchar(500)"`
	CreatedAt  time.Time
}

const (
	connectAttempts = 5
	connectBackoff  = 2 * time.Second
)

// NewPostgresDB connects to Postgres, retrying with backoff on boot, and runs
// the schema migrations.
func NewPostgresDB(cfg config.DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName)

	var db *gorm.DB
	var err error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		logger.Warnf("Database connection attempt %d/%d failed: %v", attempt, connectAttempts, err)
		if attempt < connectAttempts {
			time.Sleep(connectBackoff * time.Duration(attempt))
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	logger.Info("Database connection established and migrations completed")
	return db, nil
}

// Migrate applies the GORM auto-migration and the registered migrations.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&User{}, &Calculation{}, &HealthMetric{}); err != nil {
		return fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
