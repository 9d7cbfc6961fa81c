package services

import (
	"time"

	"github.com/JoWinner/car-rental/internal/models"
)

// Cache is the read-through cache the services write to. Implemented by
// the redis client; tests plug in a no-op fake.
type Cache interface {
	SetCar(car *models.Car, ttl time.Duration) error
	GetCar(carID string) (*models.Car, error)
	InvalidateCar(carID string) error
	SetDashboard(snapshot interface{}, ttl time.Duration) error
	GetDashboard(dest interface{}) error
	InvalidateDashboard() error
}
