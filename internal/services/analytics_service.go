package services

import (
	"time"

	"github.com/JoWinner/car-rental/internal/models"
	"github.com/JoWinner/car-rental/internal/repository"
)

const (
	dashboardCacheTTL   = time.Minute
	recentBookingsLimit = 10
)

// DashboardSnapshot aggregates the figures the admin dashboard shows.
type DashboardSnapshot struct {
	TotalRevenue      float64                     `json:"total_revenue"`
	TotalBookings     int64                       `json:"total_bookings"`
	CompletedBookings int64                       `json:"completed_bookings"`
	CancelledBookings int64                       `json:"cancelled_bookings"`
	ActiveUsers       int64                       `json:"active_users"`
	CarsByStatus      []repository.CarStatusCount `json:"cars_by_status"`
	Utilization       float64                     `json:"utilization"`
	RecentBookings    []models.Booking            `json:"recent_bookings"`
	GeneratedAt       time.Time                   `json:"generated_at"`
}

type AnalyticsService interface {
	Dashboard() (*DashboardSnapshot, error)
}

type analyticsService struct {
	bookingRepo repository.BookingRepository
	carRepo     repository.CarRepository
	userRepo    repository.UserRepository
	cache       Cache
}

func NewAnalyticsService(bookingRepo repository.BookingRepository, carRepo repository.CarRepository, userRepo repository.UserRepository, cache Cache) AnalyticsService {
	return &analyticsService{bookingRepo: bookingRepo, carRepo: carRepo, userRepo: userRepo, cache: cache}
}

func (s *analyticsService) Dashboard() (*DashboardSnapshot, error) {
	var cached DashboardSnapshot
	if err := s.cache.GetDashboard(&cached); err == nil {
		return &cached, nil
	}

	stats, err := s.bookingRepo.Stats()
	if err != nil {
		return nil, err
	}

	carCounts, err := s.carRepo.CountByStatus()
	if err != nil {
		return nil, err
	}

	activeUsers, err := s.userRepo.CountActive()
	if err != nil {
		return nil, err
	}

	recent, err := s.bookingRepo.GetRecent(recentBookingsLimit)
	if err != nil {
		return nil, err
	}

	var totalCars, bookedCars int64
	for _, c := range carCounts {
		totalCars += c.Count
		if c.Status == string(models.CarBooked) {
			bookedCars = c.Count
		}
	}
	var utilization float64
	if totalCars > 0 {
		utilization = float64(bookedCars) / float64(totalCars) * 100
	}

	snapshot := &DashboardSnapshot{
		TotalRevenue:      stats.TotalRevenue,
		TotalBookings:     stats.TotalBookings,
		CompletedBookings: stats.CompletedBookings,
		CancelledBookings: stats.CancelledBookings,
		ActiveUsers:       activeUsers,
		CarsByStatus:      carCounts,
		Utilization:       utilization,
		RecentBookings:    recent,
		GeneratedAt:       time.Now(),
	}

	_ = s.cache.SetDashboard(snapshot, dashboardCacheTTL)
	return snapshot, nil
}
