package services

import (
	"errors"
	"fmt"

	"github.com/JoWinner/car-rental/internal/models"
	"github.com/JoWinner/car-rental/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// saleOrderTransitions: PENDING -> PROCESSING -> COMPLETED, with CANCELLED
// reachable from any non-terminal state.
var saleOrderTransitions = map[models.SaleOrderStatus][]models.SaleOrderStatus{
	models.SaleOrderPending:    {models.SaleOrderProcessing, models.SaleOrderCancelled},
	models.SaleOrderProcessing: {models.SaleOrderCompleted, models.SaleOrderCancelled},
	models.SaleOrderCompleted:  {},
	models.SaleOrderCancelled:  {},
}

type SaleOrderInput struct {
	CarID   string `json:"car_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type SaleOrderService interface {
	CreateOrder(user *models.UserProfile, input SaleOrderInput) (*models.SaleOrder, error)
	GetUserOrders(userID uint) ([]models.SaleOrder, error)
	GetAllOrders() ([]models.SaleOrder, error)
	TransitionStatus(orderID, newStatus string) (*models.SaleOrder, error)
}

type saleOrderService struct {
	orderRepo repository.SaleOrderRepository
	carRepo   repository.CarRepository
}

func NewSaleOrderService(orderRepo repository.SaleOrderRepository, carRepo repository.CarRepository) SaleOrderService {
	return &saleOrderService{orderRepo: orderRepo, carRepo: carRepo}
}

// CreateOrder records a purchase inquiry. The user may be nil: the shop
// form works for anonymous visitors too.
func (s *saleOrderService) CreateOrder(user *models.UserProfile, input SaleOrderInput) (*models.SaleOrder, error) {
	if input.CarID == "" || input.Name == "" || input.Email == "" || input.Phone == "" {
		return nil, fmt.Errorf("%w: car, name, email and phone are required", ErrValidation)
	}

	car, err := s.carRepo.GetByID(input.CarID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: car", ErrNotFound)
		}
		return nil, err
	}
	if !car.OnSale || car.SalePrice == nil {
		return nil, fmt.Errorf("%w: car is not for sale", ErrNotFound)
	}

	order := &models.SaleOrder{
		ID:      uuid.NewString(),
		CarID:   input.CarID,
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Message: input.Message,
		Status:  string(models.SaleOrderPending),
	}
	if user != nil {
		order.UserID = &user.ID
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}
	order.Car = car
	return order, nil
}

func (s *saleOrderService) GetUserOrders(userID uint) ([]models.SaleOrder, error) {
	return s.orderRepo.GetByUserID(userID)
}

func (s *saleOrderService) GetAllOrders() ([]models.SaleOrder, error) {
	return s.orderRepo.GetAll()
}

func (s *saleOrderService) TransitionStatus(orderID, newStatus string) (*models.SaleOrder, error) {
	if !models.ValidSaleOrderStatus(newStatus) {
		return nil, fmt.Errorf("%w: unknown sale order status %q", ErrValidation, newStatus)
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: sale order", ErrNotFound)
		}
		return nil, err
	}

	from := models.SaleOrderStatus(order.Status)
	to := models.SaleOrderStatus(newStatus)
	allowed := false
	for _, next := range saleOrderTransitions[from] {
		if next == to {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}

	order.Status = newStatus
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}
