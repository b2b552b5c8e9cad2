package config

import (
	"log"
	"os"

	"github.com/junler/fitnessTracker/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Settings is the process configuration, loaded once at startup and
// immutable thereafter.
type Settings struct {
	Port          string
	DBPath        string
	JWTSecret     string
	AdminUsername string
	AdminPassword string
	BackupBucket  string // optional; empty disables the S3 upload
	AWSRegion     string
}

func Load() *Settings {
	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	return &Settings{
		Port:          getenv("PORT", "8080"),
		DBPath:        getenv("DB_PATH", "fitness.db"),
		JWTSecret:     getenv("JWT_SECRET", "dev-secret-change-me"),
		AdminUsername: getenv("ADMIN_USERNAME", "admin"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),
		BackupBucket:  os.Getenv("BACKUP_S3_BUCKET"),
		AWSRegion:     getenv("AWS_REGION", "us-east-1"),
	}
}

// InitDB opens the sqlite store and creates the tables if absent.
// Safe to call on every process start.
func InitDB(path string) {
	db, err := OpenDB(path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	DB = db
}

// OpenDB is InitDB without the global assignment; tests open throwaway
// in-memory stores through it.
func OpenDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true, // surface unique violations as gorm.ErrDuplicatedKey
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.ExerciseRecord{},
		&models.UserSettings{},
		&models.ModelParams{},
	); err != nil {
		return nil, err
	}
	return db, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
