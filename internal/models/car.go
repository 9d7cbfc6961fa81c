package models

import (
	"time"

	"gorm.io/gorm"
)

type Car struct {
	ID              string         `json:"id" gorm:"primaryKey;size:36"`
	Name            string         `json:"name" gorm:"not null"`
	Brand           string         `json:"brand" gorm:"not null"` // see CarBrand values
	Model           string         `json:"model" gorm:"not null"`
	Year            int            `json:"year" gorm:"not null"`
	Seats           int            `json:"seats" gorm:"not null"`
	Category        string         `json:"category" gorm:"not null"`
	CarTransmission string         `json:"car_transmission" gorm:"default:'AUTOMATIC'"`
	Status          string         `json:"status" gorm:"default:'AVAILABLE';index"` // AVAILABLE, BOOKED, MAINTENANCE, INACTIVE
	RentPrice       float64        `json:"rent_price"`                              // per day
	OnRent          bool           `json:"on_rent" gorm:"default:false"`
	OnSale          bool           `json:"on_sale" gorm:"default:false;index"`
	SalePrice       *float64       `json:"sale_price"`
	Description     string         `json:"description"`
	Features        string         `json:"features"` // comma-separated CarFeature values
	VideoURL        string         `json:"video_url"`
	Images          []CarImage     `json:"images" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type CarImage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CarID     string    `json:"car_id" gorm:"size:36;not null;index"`
	URL       string    `json:"url" gorm:"not null"`
	Position  int       `json:"position" gorm:"default:0"` // display order
	CreatedAt time.Time `json:"created_at"`
}

type CarStatus string

const (
	CarAvailable   CarStatus = "AVAILABLE"
	CarBooked      CarStatus = "BOOKED"
	CarMaintenance CarStatus = "MAINTENANCE"
	CarInactive    CarStatus = "INACTIVE"
)

type CarBrand string

const (
	Toyota   CarBrand = "TOYOTA"
	Honda    CarBrand = "HONDA"
	Ford     CarBrand = "FORD"
	Bmw      CarBrand = "BMW"
	Mercedes CarBrand = "MERCEDES_BENZ"
	Audi     CarBrand = "AUDI"
	Nissan   CarBrand = "NISSAN"
	Tesla    CarBrand = "TESLA"
	Lexus    CarBrand = "LEXUS"
	Hyundai  CarBrand = "HYUNDAI"
	Kia      CarBrand = "KIA"
)

type CarCategory string

const (
	Sedan       CarCategory = "SEDAN"
	Suv         CarCategory = "SUV"
	Hatchback   CarCategory = "HATCHBACK"
	Coupe       CarCategory = "COUPE"
	Convertible CarCategory = "CONVERTIBLE"
	Pickup      CarCategory = "PICKUP"
	Van         CarCategory = "VAN"
	Luxury      CarCategory = "LUXURY"
)

type CarTransmission string

const (
	Automatic     CarTransmission = "AUTOMATIC"
	Manual        CarTransmission = "MANUAL"
	SemiAutomatic CarTransmission = "SEMI_AUTOMATIC"
)

type CarFeature string

const (
	AirConditioning CarFeature = "AIR_CONDITIONING"
	Bluetooth       CarFeature = "BLUETOOTH"
	CruiseControl   CarFeature = "CRUISE_CONTROL"
	Gps             CarFeature = "GPS"
	HeatedSeats     CarFeature = "HEATED_SEATS"
	ParkingSensors  CarFeature = "PARKING_SENSORS"
	RearCamera      CarFeature = "REAR_CAMERA"
	Sunroof         CarFeature = "SUNROOF"
	UsbPort         CarFeature = "USB_PORT"
)

// ValidCarStatus reports whether s is one of the persisted car statuses.
func ValidCarStatus(s string) bool {
	switch CarStatus(s) {
	case CarAvailable, CarBooked, CarMaintenance, CarInactive:
		return true
	}
	return false
}

func ValidCarBrand(s string) bool {
	switch CarBrand(s) {
	case Toyota, Honda, Ford, Bmw, Mercedes, Audi, Nissan, Tesla, Lexus, Hyundai, Kia:
		return true
	}
	return false
}

func ValidCarCategory(s string) bool {
	switch CarCategory(s) {
	case Sedan, Suv, Hatchback, Coupe, Convertible, Pickup, Van, Luxury:
		return true
	}
	return false
}

func ValidCarTransmission(s string) bool {
	switch CarTransmission(s) {
	case Automatic, Manual, SemiAutomatic:
		return true
	}
	return false
}

// Bookable reports whether a car in this status accepts new bookings.
// BOOKED cars stay bookable for non-overlapping future dates; only
// MAINTENANCE and INACTIVE take a car out of the rental pool.
func (c *Car) Bookable() bool {
	return c.Status == string(CarAvailable) || c.Status == string(CarBooked)
}
