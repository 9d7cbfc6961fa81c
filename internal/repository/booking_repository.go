package repository

import (
	"errors"

	"github.com/JoWinner/car-rental/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrOverlap means the requested dates intersect an existing booking
	// that still reserves the car.
	ErrOverlap = errors.New("booking dates overlap an existing booking")
	// ErrCarNotBookable means the car is in MAINTENANCE or INACTIVE status.
	ErrCarNotBookable = errors.New("car is not available for booking")
)

type BookingRepository interface {
	CreateWithNoOverlap(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	GetByUserID(userID uint) ([]models.Booking, error)
	GetAll() ([]models.Booking, error)
	GetRecent(limit int) ([]models.Booking, error)
	UpdateWithCarStatus(booking *models.Booking, carStatus *models.CarStatus) error
	Stats() (*BookingStats, error)
}

type BookingStats struct {
	TotalBookings     int64   `json:"total_bookings"`
	CompletedBookings int64   `json:"completed_bookings"`
	CancelledBookings int64   `json:"cancelled_bookings"`
	TotalRevenue      float64 `json:"total_revenue"`
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

// CreateWithNoOverlap admits a booking inside a single transaction. It locks
// the car row, re-checks the car's status, locks any bookings whose interval
// overlaps the requested one, then inserts the booking and flips the car to
// BOOKED. Two concurrent requests for the same car serialize on the row lock,
// so both writes land or neither does.
func (r *bookingRepository) CreateWithNoOverlap(booking *models.Booking) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var car models.Car
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&car, "id = ?", booking.CarID).Error
		if err != nil {
			return err
		}
		if !car.Bookable() {
			return ErrCarNotBookable
		}

		// SQL mirror of models.IntervalsOverlap: half-open intervals,
		// a boundary touch is not a conflict.
		var existing models.Booking
		err = tx.Model(&models.Booking{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("car_id = ? AND status IN ?", booking.CarID, models.BlockingStatuses()).
			Where("start_date < ? AND end_date > ?", booking.EndDate, booking.StartDate).
			Take(&existing).Error
		if err == nil {
			return ErrOverlap
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Create(booking).Error; err != nil {
			return err
		}
		return tx.Model(&models.Car{}).Where("id = ?", booking.CarID).
			Update("status", string(models.CarBooked)).Error
	})
}

func (r *bookingRepository) GetByID(id string) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.Preload("Car.Images").Preload("User").
		First(&booking, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) GetByUserID(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Preload("Car.Images").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) GetAll() ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Preload("Car").Preload("User").
		Order("start_date DESC").
		Find(&bookings).Error
	return bookings, err
}

// GetRecent returns the most recently created bookings, newest first.
func (r *bookingRepository) GetRecent(limit int) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Preload("Car").Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&bookings).Error
	return bookings, err
}

// UpdateWithCarStatus saves the booking and, when carStatus is non-nil,
// updates the car's status in the same transaction. Booking and car are
// one aggregate here: a transition either lands on both rows or neither.
func (r *bookingRepository) UpdateWithCarStatus(booking *models.Booking, carStatus *models.CarStatus) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(booking).Error; err != nil {
			return err
		}
		if carStatus != nil {
			err := tx.Model(&models.Car{}).Where("id = ?", booking.CarID).
				Update("status", string(*carStatus)).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *bookingRepository) Stats() (*BookingStats, error) {
	var stats BookingStats
	base := r.db.Model(&models.Booking{})

	if err := base.Session(&gorm.Session{}).Count(&stats.TotalBookings).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).
		Where("status = ?", string(models.BookingCompleted)).
		Count(&stats.CompletedBookings).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).
		Where("status = ?", string(models.BookingCancelled)).
		Count(&stats.CancelledBookings).Error; err != nil {
		return nil, err
	}
	err := base.Session(&gorm.Session{}).
		Where("payment_status = ?", string(models.PaymentPaid)).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&stats.TotalRevenue).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
