package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/JoWinner/car-rental/internal/auth"
	"github.com/JoWinner/car-rental/internal/models"
	"github.com/JoWinner/car-rental/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserService interface {
	Register(name, email, password string) (*models.UserProfile, error)
	Login(email, password string) (*models.UserProfile, error)
	EnsureProfile(externalID, email string) (*models.UserProfile, error)
	GetByID(id uint) (*models.UserProfile, error)
	UpdateProfile(userID uint, name, phoneNumber string) (*models.UserProfile, error)
	GetAllUsers() ([]models.UserProfile, error)
	SetActive(userID uint, active bool) (*models.UserProfile, error)
	SetAdmin(userID uint, admin bool) (*models.UserProfile, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Register(name, email, password string) (*models.UserProfile, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: name and email are required", ErrValidation)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}

	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.UserProfile{
		ExternalID:   uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Login(email, password string) (*models.UserProfile, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}
	if !auth.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrBadCredentials
	}
	if !user.IsActive {
		// Deactivated accounts look the same as bad credentials.
		return nil, ErrBadCredentials
	}
	return user, nil
}

// EnsureProfile maps an external identity to its profile, creating the
// profile on first sight and refreshing a changed email address.
func (s *userService) EnsureProfile(externalID, email string) (*models.UserProfile, error) {
	user, err := s.userRepo.GetByExternalID(externalID)
	if err == nil {
		if email != "" && user.Email != email {
			user.Email = email
			if err := s.userRepo.Update(user); err != nil {
				return nil, err
			}
		}
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = &models.UserProfile{
		ExternalID: externalID,
		Email:      email,
		IsActive:   true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetByID(id uint) (*models.UserProfile, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user", ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateProfile(userID uint, name, phoneNumber string) (*models.UserProfile, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if name != "" {
		user.Name = name
	}
	if phoneNumber != "" {
		user.PhoneNumber = phoneNumber
	}
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetAllUsers() ([]models.UserProfile, error) {
	return s.userRepo.GetAll()
}

func (s *userService) SetActive(userID uint, active bool) (*models.UserProfile, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}
	user.IsActive = active
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) SetAdmin(userID uint, admin bool) (*models.UserProfile, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}
	user.IsAdmin = admin
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
