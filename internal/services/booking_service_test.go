package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/JoWinner/car-rental/internal/models"
	"github.com/JoWinner/car-rental/internal/repository"
	"github.com/JoWinner/car-rental/internal/services"

	"gorm.io/gorm"
)

type bookingRepoMock struct {
	createFn    func(b *models.Booking) error
	getByIDFn   func(id string) (*models.Booking, error)
	getRecentFn func(limit int) ([]models.Booking, error)
	updateFn    func(b *models.Booking, carStatus *models.CarStatus) error
	statsFn     func() (*repository.BookingStats, error)
}

func (m *bookingRepoMock) CreateWithNoOverlap(b *models.Booking) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(b)
}

func (m *bookingRepoMock) GetByID(id string) (*models.Booking, error) {
	if m.getByIDFn == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.getByIDFn(id)
}

func (m *bookingRepoMock) GetByUserID(userID uint) ([]models.Booking, error) { return nil, nil }
func (m *bookingRepoMock) GetAll() ([]models.Booking, error)                 { return nil, nil }

func (m *bookingRepoMock) GetRecent(limit int) ([]models.Booking, error) {
	if m.getRecentFn == nil {
		return nil, nil
	}
	return m.getRecentFn(limit)
}

func (m *bookingRepoMock) UpdateWithCarStatus(b *models.Booking, carStatus *models.CarStatus) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(b, carStatus)
}

func (m *bookingRepoMock) Stats() (*repository.BookingStats, error) {
	if m.statsFn == nil {
		return &repository.BookingStats{}, nil
	}
	return m.statsFn()
}

// cacheStub is a cache that never hits.
type cacheStub struct{}

func (cacheStub) SetCar(*models.Car, time.Duration) error        { return nil }
func (cacheStub) GetCar(string) (*models.Car, error)             { return nil, errors.New("miss") }
func (cacheStub) InvalidateCar(string) error                     { return nil }
func (cacheStub) SetDashboard(interface{}, time.Duration) error  { return nil }
func (cacheStub) GetDashboard(interface{}) error                 { return errors.New("miss") }
func (cacheStub) InvalidateDashboard() error                     { return nil }

func rentalCar(status string) *models.Car {
	return &models.Car{
		ID:        "car-1",
		Name:      "Toyota Camry XSE",
		Status:    status,
		RentPrice: 100,
		OnRent:    true,
	}
}

func carRepoWith(car *models.Car) *carRepoMock {
	return &carRepoMock{
		getByIDFn: func(id string) (*models.Car, error) {
			if car == nil || id != car.ID {
				return nil, gorm.ErrRecordNotFound
			}
			return car, nil
		},
	}
}

func day(n int) time.Time {
	return time.Now().Add(time.Duration(n) * 24 * time.Hour).Truncate(time.Minute)
}

func TestRentalDays(t *testing.T) {
	start := day(10)

	cases := []struct {
		name string
		end  time.Time
		want int
	}{
		{"under one day rounds up to one", start.Add(2 * time.Hour), 1},
		{"exactly three days", start.Add(72 * time.Hour), 3},
		{"partial day rounds up", start.Add(72*time.Hour + time.Minute), 4},
	}

	for _, tc := range cases {
		if got := services.RentalDays(start, tc.end); got != tc.want {
			t.Errorf("%s: RentalDays = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestRentalDaysMonotonic(t *testing.T) {
	start := day(10)
	prev := 0
	for extra := 0; extra < 14; extra++ {
		got := services.RentalDays(start, start.Add(time.Duration(extra)*24*time.Hour+6*time.Hour))
		if got < prev {
			t.Fatalf("days decreased from %d to %d at +%d days", prev, got, extra)
		}
		prev = got
	}
}

func TestCreateBookingValidation(t *testing.T) {
	svc := services.NewBookingService(&bookingRepoMock{}, carRepoWith(rentalCar("AVAILABLE")), cacheStub{})
	user := &models.UserProfile{ID: 1}

	cases := []struct {
		name string
		req  services.CreateBookingRequest
	}{
		{"missing car id", services.CreateBookingRequest{StartDate: day(10), EndDate: day(13), Location: "Main St"}},
		{"missing location", services.CreateBookingRequest{CarID: "car-1", StartDate: day(10), EndDate: day(13)}},
		{"equal start and end", services.CreateBookingRequest{CarID: "car-1", StartDate: day(10), EndDate: day(10), Location: "Main St"}},
		{"end before start", services.CreateBookingRequest{CarID: "car-1", StartDate: day(13), EndDate: day(10), Location: "Main St"}},
		{"start in the past", services.CreateBookingRequest{CarID: "car-1", StartDate: day(-2), EndDate: day(3), Location: "Main St"}},
	}

	for _, tc := range cases {
		_, err := svc.CreateBooking(user, tc.req)
		if !errors.Is(err, services.ErrValidation) {
			t.Errorf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestCreateBookingPricesFromDailyRate(t *testing.T) {
	var created *models.Booking
	repo := &bookingRepoMock{createFn: func(b *models.Booking) error {
		created = b
		return nil
	}}
	svc := services.NewBookingService(repo, carRepoWith(rentalCar("AVAILABLE")), cacheStub{})

	start := day(10)
	booking, err := svc.CreateBooking(&models.UserProfile{ID: 7}, services.CreateBookingRequest{
		CarID:     "car-1",
		StartDate: start,
		EndDate:   start.Add(72 * time.Hour),
		Location:  "123 Main St",
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	if created == nil {
		t.Fatal("expected booking to reach the repository")
	}
	if booking.TotalPrice != 300 {
		t.Errorf("expected total price 300, got %v", booking.TotalPrice)
	}
	if booking.Status != string(models.BookingPending) {
		t.Errorf("expected status PENDING, got %s", booking.Status)
	}
	if booking.PaymentStatus != string(models.PaymentUnpaid) {
		t.Errorf("expected payment UNPAID, got %s", booking.PaymentStatus)
	}
	if booking.UserID != 7 {
		t.Errorf("expected booking owned by user 7, got %d", booking.UserID)
	}
}

func TestCreateBookingShortIntervalBillsOneDay(t *testing.T) {
	repo := &bookingRepoMock{}
	svc := services.NewBookingService(repo, carRepoWith(rentalCar("AVAILABLE")), cacheStub{})

	start := day(10)
	booking, err := svc.CreateBooking(&models.UserProfile{ID: 1}, services.CreateBookingRequest{
		CarID:     "car-1",
		StartDate: start,
		EndDate:   start.Add(3 * time.Hour),
		Location:  "123 Main St",
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if booking.TotalPrice != 100 {
		t.Errorf("expected one-day minimum price 100, got %v", booking.TotalPrice)
	}
}

func TestCreateBookingOverlapRejected(t *testing.T) {
	repo := &bookingRepoMock{createFn: func(b *models.Booking) error {
		return repository.ErrOverlap
	}}
	svc := services.NewBookingService(repo, carRepoWith(rentalCar("AVAILABLE")), cacheStub{})

	_, err := svc.CreateBooking(&models.UserProfile{ID: 1}, services.CreateBookingRequest{
		CarID:     "car-1",
		StartDate: day(12),
		EndDate:   day(15),
		Location:  "123 Main St",
	})
	if !errors.Is(err, services.ErrDatesUnavailable) {
		t.Fatalf("expected dates-unavailable error, got %v", err)
	}
}

func TestCreateBookingCarInMaintenance(t *testing.T) {
	svc := services.NewBookingService(&bookingRepoMock{}, carRepoWith(rentalCar("MAINTENANCE")), cacheStub{})

	_, err := svc.CreateBooking(&models.UserProfile{ID: 1}, services.CreateBookingRequest{
		CarID:     "car-1",
		StartDate: day(10),
		EndDate:   day(13),
		Location:  "123 Main St",
	})
	if !errors.Is(err, services.ErrCarUnavailable) {
		t.Fatalf("expected car-unavailable error, got %v", err)
	}
}

func TestCreateBookingUnknownCar(t *testing.T) {
	svc := services.NewBookingService(&bookingRepoMock{}, carRepoWith(nil), cacheStub{})

	_, err := svc.CreateBooking(&models.UserProfile{ID: 1}, services.CreateBookingRequest{
		CarID:     "ghost",
		StartDate: day(10),
		EndDate:   day(13),
		Location:  "123 Main St",
	})
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestTransitionStatusForbiddenForStrangers(t *testing.T) {
	repo := &bookingRepoMock{getByIDFn: func(id string) (*models.Booking, error) {
		return &models.Booking{ID: id, UserID: 1, CarID: "car-1", Status: string(models.BookingPending)}, nil
	}}
	svc := services.NewBookingService(repo, carRepoWith(rentalCar("BOOKED")), cacheStub{})

	stranger := &models.UserProfile{ID: 99}
	_, err := svc.TransitionStatus(stranger, "booking-1", string(models.BookingCancelled))
	if !errors.Is(err, services.ErrForbidden) {
		t.Fatalf("expected forbidden error, got %v", err)
	}
}

func TestTransitionStatusTerminalStatesLocked(t *testing.T) {
	for _, terminal := range []models.BookingStatus{models.BookingCompleted, models.BookingCancelled} {
		repo := &bookingRepoMock{getByIDFn: func(id string) (*models.Booking, error) {
			return &models.Booking{ID: id, UserID: 1, CarID: "car-1", Status: string(terminal)}, nil
		}}
		svc := services.NewBookingService(repo, carRepoWith(rentalCar("AVAILABLE")), cacheStub{})

		admin := &models.UserProfile{ID: 2, IsAdmin: true}
		for _, to := range []models.BookingStatus{models.BookingPending, models.BookingConfirmed, models.BookingActive, models.BookingCompleted, models.BookingCancelled} {
			if _, err := svc.TransitionStatus(admin, "booking-1", string(to)); !errors.Is(err, services.ErrInvalidTransition) {
				t.Errorf("expected %s -> %s to be rejected, got %v", terminal, to, err)
			}
		}
	}
}

func TestTransitionStatusCancelRefundsPaidBooking(t *testing.T) {
	var savedCarStatus *models.CarStatus
	repo := &bookingRepoMock{
		getByIDFn: func(id string) (*models.Booking, error) {
			return &models.Booking{
				ID:            id,
				UserID:        1,
				CarID:         "car-1",
				Status:        string(models.BookingConfirmed),
				PaymentStatus: string(models.PaymentPaid),
			}, nil
		},
		updateFn: func(b *models.Booking, carStatus *models.CarStatus) error {
			savedCarStatus = carStatus
			return nil
		},
	}
	svc := services.NewBookingService(repo, carRepoWith(rentalCar("BOOKED")), cacheStub{})

	admin := &models.UserProfile{ID: 2, IsAdmin: true}
	booking, err := svc.TransitionStatus(admin, "booking-1", string(models.BookingCancelled))
	if err != nil {
		t.Fatalf("TransitionStatus: %v", err)
	}

	if booking.PaymentStatus != string(models.PaymentRefunded) {
		t.Errorf("expected payment REFUNDED, got %s", booking.PaymentStatus)
	}
	if savedCarStatus == nil || *savedCarStatus != models.CarAvailable {
		t.Errorf("expected car released to AVAILABLE, got %v", savedCarStatus)
	}
}

func TestTransitionStatusConfirmBooksCar(t *testing.T) {
	var savedCarStatus *models.CarStatus
	repo := &bookingRepoMock{
		getByIDFn: func(id string) (*models.Booking, error) {
			return &models.Booking{ID: id, UserID: 1, CarID: "car-1", Status: string(models.BookingPending)}, nil
		},
		updateFn: func(b *models.Booking, carStatus *models.CarStatus) error {
			savedCarStatus = carStatus
			return nil
		},
	}
	svc := services.NewBookingService(repo, carRepoWith(rentalCar("AVAILABLE")), cacheStub{})

	owner := &models.UserProfile{ID: 1}
	booking, err := svc.TransitionStatus(owner, "booking-1", string(models.BookingConfirmed))
	if err != nil {
		t.Fatalf("TransitionStatus: %v", err)
	}

	if booking.Status != string(models.BookingConfirmed) {
		t.Errorf("expected status CONFIRMED, got %s", booking.Status)
	}
	if savedCarStatus == nil || *savedCarStatus != models.CarBooked {
		t.Errorf("expected car BOOKED, got %v", savedCarStatus)
	}
}

func TestTransitionPaymentPaidConfirmsPendingBooking(t *testing.T) {
	var savedCarStatus *models.CarStatus
	repo := &bookingRepoMock{
		getByIDFn: func(id string) (*models.Booking, error) {
			return &models.Booking{
				ID:            id,
				UserID:        1,
				CarID:         "car-1",
				Status:        string(models.BookingPending),
				PaymentStatus: string(models.PaymentUnpaid),
			}, nil
		},
		updateFn: func(b *models.Booking, carStatus *models.CarStatus) error {
			savedCarStatus = carStatus
			return nil
		},
	}
	svc := services.NewBookingService(repo, carRepoWith(rentalCar("AVAILABLE")), cacheStub{})

	booking, err := svc.TransitionPayment("booking-1", string(models.PaymentPaid), "pay-42")
	if err != nil {
		t.Fatalf("TransitionPayment: %v", err)
	}

	if booking.Status != string(models.BookingConfirmed) {
		t.Errorf("expected auto-confirm, got status %s", booking.Status)
	}
	if booking.PaymentID != "pay-42" {
		t.Errorf("expected payment reference pay-42, got %s", booking.PaymentID)
	}
	if savedCarStatus == nil || *savedCarStatus != models.CarBooked {
		t.Errorf("expected car BOOKED, got %v", savedCarStatus)
	}
}

func TestTransitionPaymentUnknownStatus(t *testing.T) {
	svc := services.NewBookingService(&bookingRepoMock{}, carRepoWith(rentalCar("AVAILABLE")), cacheStub{})

	_, err := svc.TransitionPayment("booking-1", "VOIDED", "")
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTransitionPaymentPaidLeavesConfirmedBookingAlone(t *testing.T) {
	var savedCarStatus *models.CarStatus
	repo := &bookingRepoMock{
		getByIDFn: func(id string) (*models.Booking, error) {
			return &models.Booking{
				ID:            id,
				UserID:        1,
				CarID:         "car-1",
				Status:        string(models.BookingConfirmed),
				PaymentStatus: string(models.PaymentUnpaid),
			}, nil
		},
		updateFn: func(b *models.Booking, carStatus *models.CarStatus) error {
			savedCarStatus = carStatus
			return nil
		},
	}
	svc := services.NewBookingService(repo, carRepoWith(rentalCar("BOOKED")), cacheStub{})

	booking, err := svc.TransitionPayment("booking-1", string(models.PaymentPaid), "")
	if err != nil {
		t.Fatalf("TransitionPayment: %v", err)
	}
	if booking.Status != string(models.BookingConfirmed) {
		t.Errorf("expected status unchanged, got %s", booking.Status)
	}
	if savedCarStatus != nil {
		t.Errorf("expected no car status change, got %v", *savedCarStatus)
	}
}
