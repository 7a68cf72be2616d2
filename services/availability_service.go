package services

import (
	"errors"
	"fmt"
	"time"

	"hotel-frontdesk/models"

	"gorm.io/gorm"
)

// AvailabilityService answers whether a room can take a booking for a
// candidate date range. Pure read: it never mutates the ledger.
type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// CheckAvailability returns nil when [checkIn, checkOut) is free for the
// room, ErrConflict when an active reservation overlaps it. Pass a non-zero
// excludingReservationID when re-checking during a modification so the row
// being modified doesn't conflict with itself.
func (s *AvailabilityService) CheckAvailability(roomNumber int, checkIn, checkOut time.Time, excludingReservationID uint) error {
	return checkAvailability(s.DB, roomNumber, checkIn, checkOut, excludingReservationID)
}

// checkAvailability is the transaction-aware form used by the lifecycle
// coordinator inside its check-then-act transactions.
func checkAvailability(db *gorm.DB, roomNumber int, checkIn, checkOut time.Time, excludingReservationID uint) error {
	if !checkOut.After(checkIn) {
		return ErrDateRangeInvalid
	}

	var room models.Room
	if err := db.First(&room, "room_number = ?", roomNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomNotFound
		}
		return fmt.Errorf("failed to load room %d: %w", roomNumber, err)
	}

	// Two half-open intervals [a,b) and [c,d) overlap iff a < d && c < b.
	q := db.Model(&models.Reservation{}).
		Where("room_number = ?", roomNumber).
		Where("status IN ?", []string{models.ReservationReserved, models.ReservationCheckedIn}).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn)
	if excludingReservationID != 0 {
		q = q.Where("reservation_id <> ?", excludingReservationID)
	}

	var overlapping int64
	if err := q.Count(&overlapping).Error; err != nil {
		return fmt.Errorf("failed to scan reservations for room %d: %w", roomNumber, err)
	}
	if overlapping > 0 {
		return ErrConflict
	}
	return nil
}
