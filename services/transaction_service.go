package services

import (
	"errors"
	"fmt"
	"time"

	"hotel-frontdesk/models"

	"gorm.io/gorm"
)

var ErrTransactionNotFound = errors.New("transaction_not_found")

// TransactionService covers ad-hoc charges and the transaction ledger. Rows
// are immutable once written; only an administrator may delete one.
type TransactionService struct {
	DB  *gorm.DB
	now func() time.Time
}

func NewTransactionService(db *gorm.DB) *TransactionService {
	return &TransactionService{DB: db, now: time.Now}
}

// Create records an ad-hoc charge, optionally tied to a reservation.
func (s *TransactionService) Create(reservationID *uint, amount float64, transactionDate time.Time, description string) (models.Transaction, error) {
	var txn models.Transaction

	if reservationID != nil {
		var reservation models.Reservation
		if err := s.DB.First(&reservation, *reservationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return txn, ErrReservationNotFound
			}
			return txn, fmt.Errorf("failed to load reservation %d: %w", *reservationID, err)
		}
	}

	if transactionDate.IsZero() {
		transactionDate = s.now().UTC()
	}

	txn = models.Transaction{
		ReservationID:   reservationID,
		Amount:          amount,
		TransactionDate: transactionDate,
		Description:     description,
	}
	if err := s.DB.Create(&txn).Error; err != nil {
		return models.Transaction{}, fmt.Errorf("failed to create transaction: %w", err)
	}
	return txn, nil
}

// GetAll lists transactions, newest first, with reservation context for the
// receipt views.
func (s *TransactionService) GetAll() ([]models.Transaction, error) {
	var list []models.Transaction
	if err := s.DB.
		Preload("Reservation").
		Preload("Reservation.Customer").
		Order("transaction_date DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve transactions: %w", err)
	}
	return list, nil
}

func (s *TransactionService) GetByID(transactionID uint) (models.Transaction, error) {
	var txn models.Transaction
	if err := s.DB.
		Preload("Reservation").
		Preload("Reservation.Customer").
		First(&txn, transactionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return txn, ErrTransactionNotFound
		}
		return txn, fmt.Errorf("failed to retrieve transaction %d: %w", transactionID, err)
	}
	return txn, nil
}

func (s *TransactionService) Delete(transactionID uint) error {
	result := s.DB.Delete(&models.Transaction{}, transactionID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction %d: %w", transactionID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}
