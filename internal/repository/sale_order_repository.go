package repository

import (
	"github.com/JoWinner/car-rental/internal/models"

	"gorm.io/gorm"
)

type SaleOrderRepository interface {
	Create(order *models.SaleOrder) error
	GetByID(id string) (*models.SaleOrder, error)
	GetByUserID(userID uint) ([]models.SaleOrder, error)
	GetAll() ([]models.SaleOrder, error)
	Update(order *models.SaleOrder) error
}

type saleOrderRepository struct {
	db *gorm.DB
}

func NewSaleOrderRepository(db *gorm.DB) SaleOrderRepository {
	return &saleOrderRepository{db: db}
}

func (r *saleOrderRepository) Create(order *models.SaleOrder) error {
	return r.db.Create(order).Error
}

func (r *saleOrderRepository) GetByID(id string) (*models.SaleOrder, error) {
	var order models.SaleOrder
	err := r.db.Preload("Car.Images").First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *saleOrderRepository) GetByUserID(userID uint) ([]models.SaleOrder, error) {
	var orders []models.SaleOrder
	err := r.db.Preload("Car.Images").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *saleOrderRepository) GetAll() ([]models.SaleOrder, error) {
	var orders []models.SaleOrder
	err := r.db.Preload("Car.Images").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *saleOrderRepository) Update(order *models.SaleOrder) error {
	return r.db.Save(order).Error
}
