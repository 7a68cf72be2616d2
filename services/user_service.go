package services

import (
	"errors"
	"fmt"
	"strings"

	"hotel-frontdesk/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrUserNotFound       = errors.New("user_not_found")
	ErrLastAdmin          = errors.New("last_admin")
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// Authenticate verifies the username/password pair against the stored
// bcrypt hash.
func (s *UserService) Authenticate(username, password string) (models.User, error) {
	var user models.User
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return user, ErrInvalidCredentials
	}

	if err := s.DB.First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, ErrInvalidCredentials
		}
		return user, fmt.Errorf("failed to load user %q: %w", username, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func validRole(role string) bool {
	return role == models.RoleAdmin || role == models.RoleStaff
}

func (s *UserService) Create(username, password, role string) (models.User, error) {
	var user models.User

	username = strings.TrimSpace(username)
	if username == "" {
		return user, fmt.Errorf("validation: username is required")
	}
	if password == "" {
		return user, fmt.Errorf("validation: password is required")
	}
	if !validRole(role) {
		return user, fmt.Errorf("validation: role must be %s or %s", models.RoleAdmin, models.RoleStaff)
	}

	var existing models.User
	if err := s.DB.First(&existing, "username = ?", username).Error; err == nil {
		return user, ErrDuplicate
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return user, fmt.Errorf("failed to check username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return user, fmt.Errorf("failed to hash password: %w", err)
	}

	user = models.User{Username: username, PasswordHash: string(hash), Role: role}
	if err := s.DB.Create(&user).Error; err != nil {
		return models.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *UserService) GetAll() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Order("username ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}
	return users, nil
}

func (s *UserService) UpdateRole(userID uint, role string) (models.User, error) {
	var user models.User
	if !validRole(role) {
		return user, fmt.Errorf("validation: role must be %s or %s", models.RoleAdmin, models.RoleStaff)
	}

	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, ErrUserNotFound
		}
		return user, fmt.Errorf("failed to load user %d: %w", userID, err)
	}

	// Demoting the only admin would lock everyone out of administration.
	if user.Role == models.RoleAdmin && role != models.RoleAdmin {
		if last, err := s.lastAdmin(userID); err != nil {
			return user, err
		} else if last {
			return user, ErrLastAdmin
		}
	}

	if err := s.DB.Model(&user).Update("role", role).Error; err != nil {
		return user, fmt.Errorf("failed to update role for user %d: %w", userID, err)
	}
	user.Role = role
	return user, nil
}

func (s *UserService) ResetPassword(userID uint, password string) error {
	if password == "" {
		return fmt.Errorf("validation: password is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	result := s.DB.Model(&models.User{}).
		Where("user_id = ?", userID).
		Update("password_hash", string(hash))
	if result.Error != nil {
		return fmt.Errorf("failed to reset password for user %d: %w", userID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *UserService) Delete(userID uint) error {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to load user %d: %w", userID, err)
	}

	if user.Role == models.RoleAdmin {
		if last, err := s.lastAdmin(userID); err != nil {
			return err
		} else if last {
			return ErrLastAdmin
		}
	}

	if err := s.DB.Delete(&models.User{}, userID).Error; err != nil {
		return fmt.Errorf("failed to delete user %d: %w", userID, err)
	}
	return nil
}

func (s *UserService) lastAdmin(excludingID uint) (bool, error) {
	var others int64
	if err := s.DB.Model(&models.User{}).
		Where("role = ? AND user_id <> ?", models.RoleAdmin, excludingID).
		Count(&others).Error; err != nil {
		return false, fmt.Errorf("failed to count admins: %w", err)
	}
	return others == 0, nil
}
