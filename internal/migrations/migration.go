package migrations

import (
	"errors"
	"log"

	"github.com/JoWinner/car-rental/internal/auth"
	"github.com/JoWinner/car-rental/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RunMigrations migrates the schema and seeds the default admin account.
func RunMigrations(db *gorm.DB, adminEmail, adminPassword string) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.UserProfile{},
		&models.Car{},
		&models.CarImage{},
		&models.Booking{},
		&models.SaleOrder{},
	)
	if err != nil {
		return err
	}

	if err := createDefaultAdmin(db, adminEmail, adminPassword); err != nil {
		log.Printf("Warning: Failed to create default admin: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

func createDefaultAdmin(db *gorm.DB, email, password string) error {
	var existing models.UserProfile
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &models.UserProfile{
		ExternalID:   uuid.NewString(),
		Name:         "Administrator",
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      true,
		IsActive:     true,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("Created default admin account: %s", email)
	return nil
}
