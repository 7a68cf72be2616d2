package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hotel-frontdesk/models"
	"hotel-frontdesk/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReservationService is the lifecycle coordinator: the only writer of
// Room.Status and Reservation.Status. Every operation runs as one
// transaction with a row lock on the affected room, so two callers cannot
// both read "available" before either commits.
type ReservationService struct {
	DB  *gorm.DB
	now func() time.Time
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db, now: time.Now}
}

// withRowLock adds FOR UPDATE where the dialect supports it. SQLite
// serializes writers on the database file, so the clause is unnecessary
// there (and a syntax error).
func withRowLock(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// lockRoom loads the room under a row lock inside tx.
func lockRoom(tx *gorm.DB, roomNumber int) (models.Room, error) {
	var room models.Room
	err := withRowLock(tx).
		First(&room, "room_number = ?", roomNumber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return room, ErrRoomNotFound
		}
		return room, fmt.Errorf("failed to load room %d: %w", roomNumber, err)
	}
	return room, nil
}

// recomputeRoomStatus derives Room.Status from ledger contents: Occupied if
// a CheckedIn row exists, Reserved if an active Reserved row still covers
// today or a future date, Vacant otherwise.
func (s *ReservationService) recomputeRoomStatus(tx *gorm.DB, roomNumber int) error {
	today := utils.DateOnly(s.now())

	var checkedIn int64
	if err := tx.Model(&models.Reservation{}).
		Where("room_number = ? AND status = ?", roomNumber, models.ReservationCheckedIn).
		Count(&checkedIn).Error; err != nil {
		return fmt.Errorf("failed to count checked-in reservations: %w", err)
	}

	status := models.RoomVacant
	if checkedIn > 0 {
		status = models.RoomOccupied
	} else {
		var reserved int64
		if err := tx.Model(&models.Reservation{}).
			Where("room_number = ? AND status = ? AND check_out_date > ?",
				roomNumber, models.ReservationReserved, today).
			Count(&reserved).Error; err != nil {
			return fmt.Errorf("failed to count reserved reservations: %w", err)
		}
		if reserved > 0 {
			status = models.RoomReserved
		}
	}

	if err := tx.Model(&models.Room{}).
		Where("room_number = ?", roomNumber).
		Update("status", status).Error; err != nil {
		return fmt.Errorf("failed to update room %d status: %w", roomNumber, err)
	}
	return nil
}

// CreateReservation books a room for a customer over [checkIn, checkOut).
func (s *ReservationService) CreateReservation(roomNumber int, customerID uint, checkIn, checkOut time.Time) (models.Reservation, error) {
	var reservation models.Reservation

	if !checkOut.After(checkIn) {
		return reservation, ErrDateRangeInvalid
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := lockRoom(tx, roomNumber); err != nil {
			return err
		}

		var customer models.Customer
		if err := tx.First(&customer, customerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCustomerNotFound
			}
			return fmt.Errorf("failed to load customer %d: %w", customerID, err)
		}

		if err := checkAvailability(tx, roomNumber, checkIn, checkOut, 0); err != nil {
			return err
		}

		reservation = models.Reservation{
			ReferenceCode: uuid.NewString(),
			RoomNumber:    roomNumber,
			CustomerID:    customerID,
			CheckInDate:   utils.DateOnly(checkIn),
			CheckOutDate:  utils.DateOnly(checkOut),
			Status:        models.ReservationReserved,
		}
		if err := tx.Create(&reservation).Error; err != nil {
			return fmt.Errorf("failed to create reservation: %w", err)
		}

		return s.recomputeRoomStatus(tx, roomNumber)
	})
	if txErr != nil {
		return models.Reservation{}, txErr
	}
	return reservation, nil
}

// ModifyReservation moves a Reserved booking to a new room and/or date
// range, re-running the availability check while excluding the row itself.
func (s *ReservationService) ModifyReservation(reservationID uint, roomNumber int, checkIn, checkOut time.Time) (models.Reservation, error) {
	var reservation models.Reservation

	if !checkOut.After(checkIn) {
		return reservation, ErrDateRangeInvalid
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := withRowLock(tx).
			First(&reservation, reservationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("failed to load reservation %d: %w", reservationID, err)
		}
		if reservation.Status != models.ReservationReserved {
			return ErrInvalidTransition
		}

		oldRoom := reservation.RoomNumber
		if _, err := lockRoom(tx, roomNumber); err != nil {
			return err
		}

		if err := checkAvailability(tx, roomNumber, checkIn, checkOut, reservationID); err != nil {
			return err
		}

		updates := map[string]interface{}{
			"room_number":    roomNumber,
			"check_in_date":  utils.DateOnly(checkIn),
			"check_out_date": utils.DateOnly(checkOut),
		}
		if err := tx.Model(&reservation).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update reservation %d: %w", reservationID, err)
		}

		if err := s.recomputeRoomStatus(tx, roomNumber); err != nil {
			return err
		}
		if oldRoom != roomNumber {
			if err := s.recomputeRoomStatus(tx, oldRoom); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return models.Reservation{}, txErr
	}
	return reservation, nil
}

// CancelReservation cancels a Reserved booking and releases the room if no
// other active reservation still holds it.
func (s *ReservationService) CancelReservation(reservationID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		if err := withRowLock(tx).
			First(&reservation, reservationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("failed to load reservation %d: %w", reservationID, err)
		}
		if reservation.Status != models.ReservationReserved {
			return ErrInvalidTransition
		}

		if err := tx.Model(&reservation).
			Update("status", models.ReservationCancelled).Error; err != nil {
			return fmt.Errorf("failed to cancel reservation %d: %w", reservationID, err)
		}

		return s.recomputeRoomStatus(tx, reservation.RoomNumber)
	})
}

// CheckIn turns the Reserved row for exactly this (room, customer) pair into
// a CheckedIn one. Any other reservation on the room does not qualify.
func (s *ReservationService) CheckIn(roomNumber int, customerID uint) (models.Reservation, error) {
	var reservation models.Reservation

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := lockRoom(tx, roomNumber); err != nil {
			return err
		}

		err := tx.Where("room_number = ? AND customer_id = ? AND status = ?",
			roomNumber, customerID, models.ReservationReserved).
			Order("check_in_date ASC").
			First(&reservation).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoMatchingReservation
			}
			return fmt.Errorf("failed to find reservation for room %d: %w", roomNumber, err)
		}

		if err := tx.Model(&reservation).
			Update("status", models.ReservationCheckedIn).Error; err != nil {
			return fmt.Errorf("failed to check in reservation %d: %w", reservation.ID, err)
		}
		reservation.Status = models.ReservationCheckedIn

		return s.recomputeRoomStatus(tx, roomNumber)
	})
	if txErr != nil {
		return models.Reservation{}, txErr
	}
	return reservation, nil
}

// stayReceipt is the charge breakdown stored on the check-out transaction.
type stayReceipt struct {
	Nights      int     `json:"nights"`
	NightlyRate float64 `json:"nightly_rate"`
}

// CheckOut completes the stay on an occupied room: the CheckedIn reservation
// becomes Completed, the room falls back to Vacant and needs cleaning, and
// one transaction row records the room charge (nightly rate times nights).
func (s *ReservationService) CheckOut(roomNumber int) (models.Transaction, error) {
	var charge models.Transaction

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		room, err := lockRoom(tx, roomNumber)
		if err != nil {
			return err
		}
		if room.Status != models.RoomOccupied {
			return ErrRoomNotOccupied
		}

		var reservation models.Reservation
		if err := tx.Where("room_number = ? AND status = ?",
			roomNumber, models.ReservationCheckedIn).
			First(&reservation).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Status said Occupied but the ledger disagrees; repair
				// rather than charge for a stay that doesn't exist.
				if rErr := s.recomputeRoomStatus(tx, roomNumber); rErr != nil {
					return rErr
				}
				return ErrRoomNotOccupied
			}
			return fmt.Errorf("failed to find checked-in reservation for room %d: %w", roomNumber, err)
		}

		if err := tx.Model(&reservation).
			Update("status", models.ReservationCompleted).Error; err != nil {
			return fmt.Errorf("failed to complete reservation %d: %w", reservation.ID, err)
		}

		if err := tx.Model(&models.Room{}).
			Where("room_number = ?", roomNumber).
			Updates(map[string]interface{}{
				"status":       models.RoomVacant,
				"clean_status": models.RoomDirty,
			}).Error; err != nil {
			return fmt.Errorf("failed to release room %d: %w", roomNumber, err)
		}

		nights := reservation.Nights()
		receipt, _ := json.Marshal(stayReceipt{Nights: nights, NightlyRate: room.Price})

		reservationID := reservation.ID
		charge = models.Transaction{
			ReservationID:   &reservationID,
			Amount:          room.Price * float64(nights),
			TransactionDate: s.now().UTC(),
			Description:     "Room charge",
			Details:         datatypes.JSON(receipt),
		}
		if err := tx.Create(&charge).Error; err != nil {
			return fmt.Errorf("failed to record room charge: %w", err)
		}

		// The derived status after releasing the room may still be Reserved
		// when another future booking holds it.
		return s.recomputeRoomStatus(tx, roomNumber)
	})
	if txErr != nil {
		return models.Transaction{}, txErr
	}
	return charge, nil
}

// GetAllWithRelations lists reservations with their room and customer.
func (s *ReservationService) GetAllWithRelations() ([]models.Reservation, error) {
	var list []models.Reservation
	if err := s.DB.
		Preload("Room").
		Preload("Customer").
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve reservations: %w", err)
	}
	return list, nil
}

// GetByID loads one reservation with relations.
func (s *ReservationService) GetByID(reservationID uint) (models.Reservation, error) {
	var reservation models.Reservation
	if err := s.DB.
		Preload("Room").
		Preload("Customer").
		First(&reservation, reservationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return reservation, ErrReservationNotFound
		}
		return reservation, fmt.Errorf("failed to retrieve reservation %d: %w", reservationID, err)
	}
	return reservation, nil
}
