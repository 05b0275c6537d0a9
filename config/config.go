package config

import (
	"fmt"
	"log"
	"os"

	"github.com/Pragathi1123/eco-hive-smart/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found, relying on environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	// TranslateError lets services match gorm.ErrDuplicatedKey on the
	// unique-index backstops instead of driver-specific error codes.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	if err := SeedCatalogs(DB); err != nil {
		log.Fatalf("Seeding reference data failed: %v", err)
	}
}

// Migrate is separate from InitDB so tests can run it against sqlite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.WasteCategory{},
		&models.WasteLog{},
		&models.UserStats{},
		&models.Achievement{},
		&models.UserAchievement{},
		&models.ClassificationLog{},
		&models.SensorDevice{},
		&models.Alert{},
		&models.UserDevice{},
	)
}
