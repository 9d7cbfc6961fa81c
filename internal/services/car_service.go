package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/JoWinner/car-rental/internal/models"
	"github.com/JoWinner/car-rental/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const carCacheTTL = 10 * time.Minute

// shopSortColumns whitelists the sortable columns of the sale listing.
var shopSortColumns = map[string]string{
	"createdAt": "created_at",
	"salePrice": "sale_price",
	"year":      "year",
	"name":      "name",
}

type CarInput struct {
	Name            string   `json:"name"`
	Brand           string   `json:"brand"`
	Model           string   `json:"model"`
	Year            int      `json:"year"`
	Seats           int      `json:"seats"`
	Category        string   `json:"category"`
	CarTransmission string   `json:"car_transmission"`
	Status          string   `json:"status"`
	RentPrice       float64  `json:"rent_price"`
	OnRent          bool     `json:"on_rent"`
	OnSale          bool     `json:"on_sale"`
	SalePrice       *float64 `json:"sale_price"`
	Description     string   `json:"description"`
	Features        []string `json:"features"`
	VideoURL        string   `json:"video_url"`
	Images          []string `json:"images"`
}

// PaginationMeta mirrors the listing metadata the frontend pages on.
type PaginationMeta struct {
	Total       int64 `json:"total"`
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	TotalPages  int   `json:"total_pages"`
	HasNextPage bool  `json:"has_next_page"`
	HasPrevPage bool  `json:"has_prev_page"`
}

type CarService interface {
	CreateCar(input CarInput) (*models.Car, error)
	GetCarByID(id string) (*models.Car, error)
	ListCars(filter repository.CarFilter) ([]models.Car, *PaginationMeta, error)
	ListForSale(filter repository.ShopFilter) ([]models.Car, error)
	GetCarForSale(id string) (*models.Car, error)
	UpdateCar(id string, input CarInput) (*models.Car, error)
	DeleteCar(id string) error
}

type carService struct {
	carRepo repository.CarRepository
	cache   Cache
}

func NewCarService(carRepo repository.CarRepository, cache Cache) CarService {
	return &carService{carRepo: carRepo, cache: cache}
}

func validateCarInput(input CarInput) error {
	if len(input.Name) < 2 {
		return fmt.Errorf("%w: name must be at least 2 characters", ErrValidation)
	}
	if !models.ValidCarBrand(input.Brand) {
		return fmt.Errorf("%w: unknown brand %q", ErrValidation, input.Brand)
	}
	if len(input.Model) < 2 {
		return fmt.Errorf("%w: model must be at least 2 characters", ErrValidation)
	}
	if input.Year < 1900 || input.Year > time.Now().Year()+1 {
		return fmt.Errorf("%w: invalid year", ErrValidation)
	}
	if input.Seats < 1 {
		return fmt.Errorf("%w: seats must be at least 1", ErrValidation)
	}
	if !models.ValidCarCategory(input.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, input.Category)
	}
	if input.CarTransmission != "" && !models.ValidCarTransmission(input.CarTransmission) {
		return fmt.Errorf("%w: unknown transmission %q", ErrValidation, input.CarTransmission)
	}
	if input.Status != "" && !models.ValidCarStatus(input.Status) {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, input.Status)
	}
	if input.OnSale && (input.SalePrice == nil || *input.SalePrice <= 0) {
		return fmt.Errorf("%w: sale price is required when car is on sale", ErrValidation)
	}
	if input.OnRent && input.RentPrice <= 0 {
		return fmt.Errorf("%w: rent price is required when car is on rent", ErrValidation)
	}
	return nil
}

func (s *carService) CreateCar(input CarInput) (*models.Car, error) {
	if err := validateCarInput(input); err != nil {
		return nil, err
	}
	if len(input.Images) < 1 {
		return nil, fmt.Errorf("%w: at least one image is required", ErrValidation)
	}
	if len(input.Images) > 8 {
		return nil, fmt.Errorf("%w: maximum 8 images allowed", ErrValidation)
	}

	car := &models.Car{
		ID:              uuid.NewString(),
		Name:            input.Name,
		Brand:           input.Brand,
		Model:           input.Model,
		Year:            input.Year,
		Seats:           input.Seats,
		Category:        input.Category,
		CarTransmission: input.CarTransmission,
		Status:          input.Status,
		RentPrice:       input.RentPrice,
		OnRent:          input.OnRent,
		OnSale:          input.OnSale,
		SalePrice:       input.SalePrice,
		Description:     input.Description,
		Features:        strings.Join(input.Features, ","),
		VideoURL:        input.VideoURL,
	}
	if car.Status == "" {
		car.Status = string(models.CarAvailable)
	}
	if car.CarTransmission == "" {
		car.CarTransmission = string(models.Automatic)
	}
	for i, url := range input.Images {
		car.Images = append(car.Images, models.CarImage{URL: url, Position: i})
	}

	if err := s.carRepo.Create(car); err != nil {
		return nil, err
	}
	return car, nil
}

func (s *carService) GetCarByID(id string) (*models.Car, error) {
	if cached, err := s.cache.GetCar(id); err == nil {
		return cached, nil
	}

	car, err := s.carRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: car", ErrNotFound)
		}
		return nil, err
	}

	_ = s.cache.SetCar(car, carCacheTTL)
	return car, nil
}

func (s *carService) ListCars(filter repository.CarFilter) ([]models.Car, *PaginationMeta, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 9
	}
	if filter.Status != "" && !models.ValidCarStatus(filter.Status) {
		return nil, nil, fmt.Errorf("%w: unknown status %q", ErrValidation, filter.Status)
	}

	cars, total, err := s.carRepo.List(filter)
	if err != nil {
		return nil, nil, err
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	meta := &PaginationMeta{
		Total:       total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  totalPages,
		HasNextPage: filter.Page < totalPages,
		HasPrevPage: filter.Page > 1,
	}
	return cars, meta, nil
}

func (s *carService) ListForSale(filter repository.ShopFilter) ([]models.Car, error) {
	column, ok := shopSortColumns[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	filter.SortBy = column
	if filter.SortOrder != "asc" {
		filter.SortOrder = "desc"
	}
	return s.carRepo.ListForSale(filter)
}

func (s *carService) GetCarForSale(id string) (*models.Car, error) {
	car, err := s.GetCarByID(id)
	if err != nil {
		return nil, err
	}
	if !car.OnSale || car.SalePrice == nil {
		return nil, fmt.Errorf("%w: car is not for sale", ErrNotFound)
	}
	return car, nil
}

func (s *carService) UpdateCar(id string, input CarInput) (*models.Car, error) {
	if err := validateCarInput(input); err != nil {
		return nil, err
	}

	car, err := s.carRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: car", ErrNotFound)
		}
		return nil, err
	}

	car.Name = input.Name
	car.Brand = input.Brand
	car.Model = input.Model
	car.Year = input.Year
	car.Seats = input.Seats
	car.Category = input.Category
	car.Description = input.Description
	car.RentPrice = input.RentPrice
	car.OnRent = input.OnRent
	car.OnSale = input.OnSale
	car.SalePrice = input.SalePrice
	car.VideoURL = input.VideoURL
	if input.CarTransmission != "" {
		car.CarTransmission = input.CarTransmission
	}
	if input.Status != "" {
		car.Status = input.Status
	}
	if input.Features != nil {
		car.Features = strings.Join(input.Features, ",")
	}

	if err := s.carRepo.Update(car); err != nil {
		return nil, err
	}

	_ = s.cache.InvalidateCar(id)
	_ = s.cache.InvalidateDashboard()
	return car, nil
}

func (s *carService) DeleteCar(id string) error {
	if _, err := s.carRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: car", ErrNotFound)
		}
		return err
	}
	if err := s.carRepo.Delete(id); err != nil {
		return err
	}
	_ = s.cache.InvalidateCar(id)
	_ = s.cache.InvalidateDashboard()
	return nil
}
