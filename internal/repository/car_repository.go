package repository

import (
	"github.com/JoWinner/car-rental/internal/models"

	"gorm.io/gorm"
)

// CarFilter holds the query parameters for the public fleet listing.
type CarFilter struct {
	Brand    string
	Category string
	Status   string
	Search   string
	MinPrice *float64
	MaxPrice *float64
	MinSeats *int
	Page     int
	Limit    int
}

// ShopFilter holds the query parameters for the sale listing.
type ShopFilter struct {
	Query        string
	Category     string
	Brand        string
	Transmission string
	MinPrice     *float64
	MaxPrice     *float64
	MinYear      *int
	MaxYear      *int
	SortBy       string
	SortOrder    string
}

type CarStatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type CarRepository interface {
	Create(car *models.Car) error
	GetByID(id string) (*models.Car, error)
	List(filter CarFilter) ([]models.Car, int64, error)
	ListForSale(filter ShopFilter) ([]models.Car, error)
	GetAll() ([]models.Car, error)
	Update(car *models.Car) error
	UpdateStatus(id string, status models.CarStatus) error
	Delete(id string) error
	CountByStatus() ([]CarStatusCount, error)
}

type carRepository struct {
	db *gorm.DB
}

func NewCarRepository(db *gorm.DB) CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) Create(car *models.Car) error {
	return r.db.Create(car).Error
}

func (r *carRepository) GetByID(id string) (*models.Car, error) {
	var car models.Car
	err := r.db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).First(&car, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &car, nil
}

func (r *carRepository) List(filter CarFilter) ([]models.Car, int64, error) {
	qb := r.db.Model(&models.Car{})

	if filter.Status != "" {
		qb = qb.Where("status = ?", filter.Status)
	}
	if filter.Brand != "" {
		qb = qb.Where("brand = ?", filter.Brand)
	}
	if filter.Category != "" {
		qb = qb.Where("category = ?", filter.Category)
	}
	if filter.MinPrice != nil {
		qb = qb.Where("rent_price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		qb = qb.Where("rent_price <= ?", *filter.MaxPrice)
	}
	if filter.MinSeats != nil {
		qb = qb.Where("seats >= ?", *filter.MinSeats)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		qb = qb.Where("name ILIKE ? OR model ILIKE ? OR description ILIKE ?", like, like, like)
	}

	var total int64
	if err := qb.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	var cars []models.Car
	err := qb.Preload("Images").
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset(offset).
		Find(&cars).Error
	return cars, total, err
}

func (r *carRepository) ListForSale(filter ShopFilter) ([]models.Car, error) {
	qb := r.db.Model(&models.Car{}).
		Where("on_sale = ? AND sale_price IS NOT NULL", true)

	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		qb = qb.Where("name ILIKE ? OR model ILIKE ? OR description ILIKE ?", like, like, like)
	}
	if filter.Category != "" {
		qb = qb.Where("category = ?", filter.Category)
	}
	if filter.Brand != "" {
		qb = qb.Where("brand = ?", filter.Brand)
	}
	if filter.Transmission != "" {
		qb = qb.Where("car_transmission = ?", filter.Transmission)
	}
	if filter.MinPrice != nil {
		qb = qb.Where("sale_price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		qb = qb.Where("sale_price <= ?", *filter.MaxPrice)
	}
	if filter.MinYear != nil {
		qb = qb.Where("year >= ?", *filter.MinYear)
	}
	if filter.MaxYear != nil {
		qb = qb.Where("year <= ?", *filter.MaxYear)
	}

	// Sort column is whitelisted by the service layer.
	order := filter.SortBy + " " + filter.SortOrder
	var cars []models.Car
	err := qb.Preload("Images").Order(order).Find(&cars).Error
	return cars, err
}

func (r *carRepository) GetAll() ([]models.Car, error) {
	var cars []models.Car
	err := r.db.Preload("Images").Order("name ASC").Find(&cars).Error
	return cars, err
}

func (r *carRepository) Update(car *models.Car) error {
	return r.db.Save(car).Error
}

func (r *carRepository) UpdateStatus(id string, status models.CarStatus) error {
	return r.db.Model(&models.Car{}).Where("id = ?", id).
		Update("status", string(status)).Error
}

func (r *carRepository) Delete(id string) error {
	return r.db.Delete(&models.Car{}, "id = ?", id).Error
}

func (r *carRepository) CountByStatus() ([]CarStatusCount, error) {
	var counts []CarStatusCount
	err := r.db.Model(&models.Car{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&counts).Error
	return counts, err
}
