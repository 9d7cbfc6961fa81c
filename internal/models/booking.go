package models

import (
	"time"

	"gorm.io/gorm"
)

type Booking struct {
	ID            string         `json:"id" gorm:"primaryKey;size:36"`
	UserID        uint           `json:"user_id" gorm:"not null;index"`
	CarID         string         `json:"car_id" gorm:"size:36;not null;index"`
	StartDate     time.Time      `json:"start_date" gorm:"not null"`
	EndDate       time.Time      `json:"end_date" gorm:"not null"`
	TotalPrice    float64        `json:"total_price" gorm:"not null"` // snapshot at creation, never recalculated
	Status        string         `json:"status" gorm:"default:'PENDING';index"`
	PaymentStatus string         `json:"payment_status" gorm:"default:'UNPAID'"`
	PaymentID     string         `json:"payment_id"`
	Location      string         `json:"location" gorm:"not null"`
	Notes         string         `json:"notes"`
	Car           *Car           `json:"car,omitempty" gorm:"foreignKey:CarID"`
	User          *UserProfile   `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingActive    BookingStatus = "ACTIVE"
	BookingCompleted BookingStatus = "COMPLETED"
	BookingCancelled BookingStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "UNPAID"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

// allowedTransitions is the booking status machine. COMPLETED and
// CANCELLED are terminal.
var allowedTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingActive, BookingCancelled},
	BookingActive:    {BookingCompleted, BookingCancelled},
	BookingCompleted: {},
	BookingCancelled: {},
}

// CanTransition reports whether from -> to is an allowed booking status change.
func CanTransition(from, to BookingStatus) bool {
	allowed, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// CarStatusFor maps a booking status to the car status it implies.
// The second return is false when the booking status leaves the car untouched.
func CarStatusFor(status BookingStatus) (CarStatus, bool) {
	switch status {
	case BookingConfirmed, BookingActive:
		return CarBooked, true
	case BookingCompleted, BookingCancelled:
		return CarAvailable, true
	}
	return "", false
}

// IntervalsOverlap reports whether the half-open intervals [aStart, aEnd)
// and [bStart, bEnd) intersect. A booking ending exactly when another
// starts does not collide. The conflict query in the booking repository
// is the SQL mirror of this predicate.
func IntervalsOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// BlockingStatuses are the booking statuses that reserve a car's dates.
// A new booking conflicts when its interval overlaps any booking in one
// of these statuses.
func BlockingStatuses() []string {
	return []string{
		string(BookingPending),
		string(BookingConfirmed),
		string(BookingActive),
	}
}

func ValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case BookingPending, BookingConfirmed, BookingActive, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

func ValidPaymentStatus(s string) bool {
	switch PaymentStatus(s) {
	case PaymentUnpaid, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}
