package models

import (
	"time"
)

// Room occupancy states. This is the single internal vocabulary; any
// display translation happens in the client.
const (
	RoomVacant   = "Vacant"
	RoomReserved = "Reserved"
	RoomOccupied = "Occupied"
)

const (
	RoomClean = "Clean"
	RoomDirty = "Dirty"
)

type Room struct {
	// Room numbers come from the front desk, not a sequence.
	RoomNumber int `json:"roomNumber" gorm:"primaryKey;autoIncrement:false;column:room_number"`

	RoomType    string  `json:"roomType" gorm:"column:room_type;size:100"`
	Price       float64 `json:"price"`
	Status      string  `json:"status" gorm:"size:32;default:Vacant"`
	CleanStatus string  `json:"cleanStatus" gorm:"column:clean_status;size:32;default:Clean"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
