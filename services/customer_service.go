package services

import (
	"errors"
	"fmt"
	"strings"

	"hotel-frontdesk/models"
	"hotel-frontdesk/utils"

	"gorm.io/gorm"
)

type CustomerService struct {
	DB *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{DB: db}
}

// Create registers a guest. The ID card must pass the national ID checksum
// and be unique.
func (s *CustomerService) Create(customer *models.Customer) error {
	customer.Name = strings.TrimSpace(customer.Name)
	customer.IDCard = strings.TrimSpace(customer.IDCard)
	if customer.Name == "" {
		return fmt.Errorf("validation: name is required")
	}
	if !utils.ValidIDCard(customer.IDCard) {
		return ErrIDCardInvalid
	}
	if customer.Points < 0 {
		customer.Points = 0
	}

	var existing models.Customer
	if err := s.DB.First(&existing, "id_card = ?", customer.IDCard).Error; err == nil {
		return ErrDuplicate
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check id card: %w", err)
	}

	if err := s.DB.Create(customer).Error; err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

func (s *CustomerService) GetAll() ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.DB.Order("customer_id ASC").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve customers: %w", err)
	}
	return customers, nil
}

func (s *CustomerService) GetByID(customerID uint) (models.Customer, error) {
	var customer models.Customer
	if err := s.DB.First(&customer, customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return customer, ErrCustomerNotFound
		}
		return customer, fmt.Errorf("failed to retrieve customer %d: %w", customerID, err)
	}
	return customer, nil
}

func (s *CustomerService) Update(customerID uint, name, contact, idCard string) (models.Customer, error) {
	customer, err := s.GetByID(customerID)
	if err != nil {
		return customer, err
	}

	idCard = strings.TrimSpace(idCard)
	if !utils.ValidIDCard(idCard) {
		return customer, ErrIDCardInvalid
	}
	if idCard != customer.IDCard {
		var other models.Customer
		if err := s.DB.Where("id_card = ? AND customer_id <> ?", idCard, customerID).
			First(&other).Error; err == nil {
			return customer, ErrDuplicate
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return customer, fmt.Errorf("failed to check id card: %w", err)
		}
	}

	updates := map[string]interface{}{
		"name":    strings.TrimSpace(name),
		"contact": strings.TrimSpace(contact),
		"id_card": idCard,
	}
	if err := s.DB.Model(&customer).Updates(updates).Error; err != nil {
		return customer, fmt.Errorf("failed to update customer %d: %w", customerID, err)
	}
	return s.GetByID(customerID)
}

// AddPoints adjusts the loyalty balance, clamping at zero.
func (s *CustomerService) AddPoints(customerID uint, delta int) (models.Customer, error) {
	customer, err := s.GetByID(customerID)
	if err != nil {
		return customer, err
	}
	points := customer.Points + delta
	if points < 0 {
		points = 0
	}
	if err := s.DB.Model(&customer).Update("points", points).Error; err != nil {
		return customer, fmt.Errorf("failed to update points for customer %d: %w", customerID, err)
	}
	customer.Points = points
	return customer, nil
}

// Delete refuses while the customer is referenced by any reservation, so
// the ledger never points at a missing guest.
func (s *CustomerService) Delete(customerID uint) error {
	if _, err := s.GetByID(customerID); err != nil {
		return err
	}

	var referenced int64
	if err := s.DB.Model(&models.Reservation{}).
		Where("customer_id = ?", customerID).
		Count(&referenced).Error; err != nil {
		return fmt.Errorf("failed to count reservations for customer %d: %w", customerID, err)
	}
	if referenced > 0 {
		return ErrCustomerInUse
	}

	if err := s.DB.Delete(&models.Customer{}, customerID).Error; err != nil {
		return fmt.Errorf("failed to delete customer %d: %w", customerID, err)
	}
	return nil
}
