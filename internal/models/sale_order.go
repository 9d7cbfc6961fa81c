package models

import (
	"time"

	"gorm.io/gorm"
)

// SaleOrder is a purchase inquiry submitted from the shop. It carries the
// buyer's contact details and is linked to a profile when the submitter
// was authenticated.
type SaleOrder struct {
	ID        string         `json:"id" gorm:"primaryKey;size:36"`
	CarID     string         `json:"car_id" gorm:"size:36;not null;index"`
	UserID    *uint          `json:"user_id" gorm:"index"`
	Name      string         `json:"name" gorm:"not null"`
	Email     string         `json:"email" gorm:"not null"`
	Phone     string         `json:"phone" gorm:"not null"`
	Message   string         `json:"message"`
	Status    string         `json:"status" gorm:"default:'PENDING';index"`
	Car       *Car           `json:"car,omitempty" gorm:"foreignKey:CarID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type SaleOrderStatus string

const (
	SaleOrderPending    SaleOrderStatus = "PENDING"
	SaleOrderProcessing SaleOrderStatus = "PROCESSING"
	SaleOrderCompleted  SaleOrderStatus = "COMPLETED"
	SaleOrderCancelled  SaleOrderStatus = "CANCELLED"
)

func ValidSaleOrderStatus(s string) bool {
	switch SaleOrderStatus(s) {
	case SaleOrderPending, SaleOrderProcessing, SaleOrderCompleted, SaleOrderCancelled:
		return true
	}
	return false
}
