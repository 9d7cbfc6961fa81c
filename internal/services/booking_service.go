package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/JoWinner/car-rental/internal/models"
	"github.com/JoWinner/car-rental/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateBookingRequest struct {
	CarID     string
	StartDate time.Time
	EndDate   time.Time
	Location  string
	Notes     string
}

type BookingService interface {
	CreateBooking(user *models.UserProfile, req CreateBookingRequest) (*models.Booking, error)
	GetBookingByID(actor *models.UserProfile, id string) (*models.Booking, error)
	GetUserBookings(userID uint) ([]models.Booking, error)
	GetAllBookings() ([]models.Booking, error)
	TransitionStatus(actor *models.UserProfile, bookingID, newStatus string) (*models.Booking, error)
	TransitionPayment(bookingID, newStatus, paymentID string) (*models.Booking, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	carRepo     repository.CarRepository
	cache       Cache
}

func NewBookingService(bookingRepo repository.BookingRepository, carRepo repository.CarRepository, cache Cache) BookingService {
	return &bookingService{bookingRepo: bookingRepo, carRepo: carRepo, cache: cache}
}

// RentalDays converts a booking interval to billable days: whole days
// rounded up, never less than one.
func RentalDays(start, end time.Time) int {
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days
}

// CreateBooking validates the request, prices the rental from the car's
// current daily rate and admits the booking. The overlap check, the booking
// insert and the car status flip happen in one transaction in the repository,
// so a concurrent request for the same dates loses cleanly.
func (s *bookingService) CreateBooking(user *models.UserProfile, req CreateBookingRequest) (*models.Booking, error) {
	if req.CarID == "" {
		return nil, fmt.Errorf("%w: car id is required", ErrValidation)
	}
	if req.Location == "" {
		return nil, fmt.Errorf("%w: pickup location is required", ErrValidation)
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: start and end dates are required", ErrValidation)
	}
	if !req.StartDate.Before(req.EndDate) {
		return nil, fmt.Errorf("%w: drop-off must be after pick-up", ErrValidation)
	}
	if req.StartDate.Before(time.Now()) {
		return nil, fmt.Errorf("%w: pick-up date cannot be in the past", ErrValidation)
	}

	car, err := s.carRepo.GetByID(req.CarID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: car", ErrNotFound)
		}
		return nil, err
	}
	if !car.Bookable() {
		return nil, ErrCarUnavailable
	}
	if !car.OnRent || car.RentPrice <= 0 {
		return nil, fmt.Errorf("%w: car is not listed for rent", ErrCarUnavailable)
	}

	// Price is snapshotted here; later rate changes never touch it.
	days := RentalDays(req.StartDate, req.EndDate)
	totalPrice := float64(days) * car.RentPrice

	booking := &models.Booking{
		ID:            uuid.NewString(),
		UserID:        user.ID,
		CarID:         req.CarID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		TotalPrice:    totalPrice,
		Status:        string(models.BookingPending),
		PaymentStatus: string(models.PaymentUnpaid),
		Location:      req.Location,
		Notes:         req.Notes,
	}

	if err := s.bookingRepo.CreateWithNoOverlap(booking); err != nil {
		switch {
		case errors.Is(err, repository.ErrOverlap):
			return nil, ErrDatesUnavailable
		case errors.Is(err, repository.ErrCarNotBookable):
			return nil, ErrCarUnavailable
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, fmt.Errorf("%w: car", ErrNotFound)
		default:
			return nil, err
		}
	}

	s.invalidate(req.CarID)
	booking.Car = car
	return booking, nil
}

func (s *bookingService) GetBookingByID(actor *models.UserProfile, id string) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: booking", ErrNotFound)
		}
		return nil, err
	}
	if !actor.IsAdmin && booking.UserID != actor.ID {
		return nil, ErrForbidden
	}
	return booking, nil
}

func (s *bookingService) GetUserBookings(userID uint) ([]models.Booking, error) {
	return s.bookingRepo.GetByUserID(userID)
}

func (s *bookingService) GetAllBookings() ([]models.Booking, error) {
	return s.bookingRepo.GetAll()
}

// TransitionStatus moves a booking through its status machine and keeps the
// car's status in sync. Only an admin or the booking's owner may transition;
// cancelling a paid booking refunds it.
func (s *bookingService) TransitionStatus(actor *models.UserProfile, bookingID, newStatus string) (*models.Booking, error) {
	if !models.ValidBookingStatus(newStatus) {
		return nil, fmt.Errorf("%w: unknown booking status %q", ErrValidation, newStatus)
	}

	booking, err := s.bookingRepo.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: booking", ErrNotFound)
		}
		return nil, err
	}

	if !actor.IsAdmin && booking.UserID != actor.ID {
		return nil, ErrForbidden
	}

	from := models.BookingStatus(booking.Status)
	to := models.BookingStatus(newStatus)
	if !models.CanTransition(from, to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}

	booking.Status = newStatus
	if to == models.BookingCancelled && booking.PaymentStatus == string(models.PaymentPaid) {
		booking.PaymentStatus = string(models.PaymentRefunded)
	}

	var carStatus *models.CarStatus
	if cs, ok := models.CarStatusFor(to); ok {
		carStatus = &cs
	}

	if err := s.bookingRepo.UpdateWithCarStatus(booking, carStatus); err != nil {
		return nil, err
	}

	s.invalidate(booking.CarID)
	return booking, nil
}

// TransitionPayment updates the payment status. Marking a pending booking
// as paid confirms it and books the car; that is the only cascade.
func (s *bookingService) TransitionPayment(bookingID, newStatus, paymentID string) (*models.Booking, error) {
	if !models.ValidPaymentStatus(newStatus) {
		return nil, fmt.Errorf("%w: unknown payment status %q", ErrValidation, newStatus)
	}

	booking, err := s.bookingRepo.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: booking", ErrNotFound)
		}
		return nil, err
	}

	booking.PaymentStatus = newStatus
	if paymentID != "" {
		booking.PaymentID = paymentID
	}

	var carStatus *models.CarStatus
	if newStatus == string(models.PaymentPaid) && booking.Status == string(models.BookingPending) {
		booking.Status = string(models.BookingConfirmed)
		cs := models.CarBooked
		carStatus = &cs
	}

	if err := s.bookingRepo.UpdateWithCarStatus(booking, carStatus); err != nil {
		return nil, err
	}

	s.invalidate(booking.CarID)
	return booking, nil
}

func (s *bookingService) invalidate(carID string) {
	// Stale entries also age out on their TTL, so errors here are ignored.
	_ = s.cache.InvalidateCar(carID)
	_ = s.cache.InvalidateDashboard()
}
