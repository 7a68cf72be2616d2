package services

import (
	"errors"
	"fmt"

	"hotel-frontdesk/models"

	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// Create registers a room. New rooms always start Vacant; occupancy state is
// owned by the lifecycle coordinator afterwards.
func (s *RoomService) Create(room *models.Room) error {
	if room.RoomNumber <= 0 {
		return ErrRoomNotFound
	}
	if room.Price < 0 {
		return fmt.Errorf("validation: price must be non-negative")
	}
	room.Status = models.RoomVacant
	if room.CleanStatus == "" {
		room.CleanStatus = models.RoomClean
	}

	var existing models.Room
	if err := s.DB.First(&existing, "room_number = ?", room.RoomNumber).Error; err == nil {
		return ErrDuplicate
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check room %d: %w", room.RoomNumber, err)
	}

	if err := s.DB.Create(room).Error; err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Order("room_number ASC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) GetByNumber(roomNumber int) (models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, "room_number = ?", roomNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return room, ErrRoomNotFound
		}
		return room, fmt.Errorf("failed to retrieve room %d: %w", roomNumber, err)
	}
	return room, nil
}

// Update changes the descriptive fields only. Occupancy status stays with
// the lifecycle coordinator; clean status is a front-desk edit here, same as
// the housekeeping form.
func (s *RoomService) Update(roomNumber int, roomType string, price float64, cleanStatus string) (models.Room, error) {
	room, err := s.GetByNumber(roomNumber)
	if err != nil {
		return room, err
	}
	if price < 0 {
		return room, fmt.Errorf("validation: price must be non-negative")
	}
	if cleanStatus != models.RoomClean && cleanStatus != models.RoomDirty {
		return room, fmt.Errorf("validation: clean status must be %s or %s", models.RoomClean, models.RoomDirty)
	}

	updates := map[string]interface{}{
		"room_type":    roomType,
		"price":        price,
		"clean_status": cleanStatus,
	}
	if err := s.DB.Model(&models.Room{}).
		Where("room_number = ?", roomNumber).
		Updates(updates).Error; err != nil {
		return room, fmt.Errorf("failed to update room %d: %w", roomNumber, err)
	}
	return s.GetByNumber(roomNumber)
}

// Delete refuses while the room still has active reservations.
func (s *RoomService) Delete(roomNumber int) error {
	if _, err := s.GetByNumber(roomNumber); err != nil {
		return err
	}

	var active int64
	if err := s.DB.Model(&models.Reservation{}).
		Where("room_number = ? AND status IN ?", roomNumber,
			[]string{models.ReservationReserved, models.ReservationCheckedIn}).
		Count(&active).Error; err != nil {
		return fmt.Errorf("failed to count reservations for room %d: %w", roomNumber, err)
	}
	if active > 0 {
		return ErrRoomInUse
	}

	if err := s.DB.Delete(&models.Room{}, "room_number = ?", roomNumber).Error; err != nil {
		return fmt.Errorf("failed to delete room %d: %w", roomNumber, err)
	}
	return nil
}
