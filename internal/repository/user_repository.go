package repository

import (
	"github.com/JoWinner/car-rental/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *models.UserProfile) error
	GetByID(id uint) (*models.UserProfile, error)
	GetByExternalID(externalID string) (*models.UserProfile, error)
	GetByEmail(email string) (*models.UserProfile, error)
	GetAll() ([]models.UserProfile, error)
	Update(user *models.UserProfile) error
	CountActive() (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.UserProfile) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetByID(id uint) (*models.UserProfile, error) {
	var user models.UserProfile
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByExternalID(externalID string) (*models.UserProfile, error) {
	var user models.UserProfile
	err := r.db.Where("external_id = ?", externalID).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(email string) (*models.UserProfile, error) {
	var user models.UserProfile
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetAll() ([]models.UserProfile, error) {
	var users []models.UserProfile
	err := r.db.Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *userRepository) Update(user *models.UserProfile) error {
	return r.db.Save(user).Error
}

func (r *userRepository) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&models.UserProfile{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
