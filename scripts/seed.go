package main

import (
	"fmt"
	"log"

	"github.com/JoWinner/car-rental/internal/config"
	"github.com/JoWinner/car-rental/internal/database"
	"github.com/JoWinner/car-rental/internal/migrations"
	"github.com/JoWinner/car-rental/internal/models"

	"github.com/google/uuid"
)

func main() {
	fmt.Println("Seeding database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.UserProfile{},
		&models.Car{},
		&models.CarImage{},
		&models.Booking{},
		&models.SaleOrder{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	if err := migrations.RunMigrations(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Create demo fleet
	fmt.Println("Creating demo fleet...")
	salePrice := 28500.0
	cars := []models.Car{
		{
			ID:              uuid.NewString(),
			Name:            "Toyota Camry XSE",
			Brand:           string(models.Toyota),
			Model:           "Camry",
			Year:            2023,
			Seats:           5,
			Category:        string(models.Sedan),
			CarTransmission: string(models.Automatic),
			Status:          string(models.CarAvailable),
			RentPrice:       85,
			OnRent:          true,
			Description:     "Comfortable mid-size sedan with great fuel economy.",
			Features:        "AIR_CONDITIONING,BLUETOOTH,REAR_CAMERA,CRUISE_CONTROL",
			Images: []models.CarImage{
				{URL: "https://images.car-rental.local/camry-front.jpg", Position: 0},
				{URL: "https://images.car-rental.local/camry-side.jpg", Position: 1},
			},
		},
		{
			ID:              uuid.NewString(),
			Name:            "BMW X5 M Sport",
			Brand:           string(models.Bmw),
			Model:           "X5",
			Year:            2022,
			Seats:           7,
			Category:        string(models.Suv),
			CarTransmission: string(models.Automatic),
			Status:          string(models.CarAvailable),
			RentPrice:       190,
			OnRent:          true,
			OnSale:          true,
			SalePrice:       &salePrice,
			Description:     "Luxury SUV, available for rent and purchase.",
			Features:        "GPS,HEATED_SEATS,SUNROOF,PARKING_SENSORS",
			Images: []models.CarImage{
				{URL: "https://images.car-rental.local/x5-front.jpg", Position: 0},
			},
		},
		{
			ID:              uuid.NewString(),
			Name:            "Honda Civic Type R",
			Brand:           string(models.Honda),
			Model:           "Civic",
			Year:            2024,
			Seats:           5,
			Category:        string(models.Hatchback),
			CarTransmission: string(models.Manual),
			Status:          string(models.CarMaintenance),
			RentPrice:       110,
			OnRent:          true,
			Description:     "Hot hatch currently in the workshop.",
			Features:        "BLUETOOTH,USB_PORT,REAR_CAMERA",
			Images: []models.CarImage{
				{URL: "https://images.car-rental.local/civic-front.jpg", Position: 0},
			},
		},
	}

	for i := range cars {
		if err := db.Create(&cars[i]).Error; err != nil {
			log.Fatal("Failed to seed car:", err)
		}
	}

	fmt.Printf("Seeded %d cars. Done!\n", len(cars))
}
