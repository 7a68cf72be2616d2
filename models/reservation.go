package models

import (
	"time"
)

// Reservation lifecycle. Reserved -> CheckedIn -> Completed, with
// Reserved -> Cancelled as the only other valid transition. Cancelled and
// Completed are terminal.
const (
	ReservationReserved  = "Reserved"
	ReservationCheckedIn = "CheckedIn"
	ReservationCancelled = "Cancelled"
	ReservationCompleted = "Completed"
)

type Reservation struct {
	ID uint `gorm:"primaryKey;column:reservation_id" json:"reservation_id"`

	ReferenceCode string `gorm:"column:reference_code;size:64;index" json:"reference_code"`

	RoomNumber int  `gorm:"index;column:room_number" json:"room_number"`
	CustomerID uint `gorm:"index;column:customer_id" json:"customer_id"`

	// Calendar days, half-open [check_in_date, check_out_date).
	CheckInDate  time.Time `gorm:"column:check_in_date" json:"check_in_date"`
	CheckOutDate time.Time `gorm:"column:check_out_date" json:"check_out_date"`

	Status string `gorm:"size:32;index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Room     Room     `gorm:"foreignKey:RoomNumber;references:RoomNumber" json:"room,omitempty"`
	Customer Customer `gorm:"foreignKey:CustomerID;references:ID" json:"customer,omitempty"`
}

// Nights returns the stay length in whole nights.
func (r Reservation) Nights() int {
	n := int(r.CheckOutDate.Sub(r.CheckInDate).Hours() / 24)
	if n < 1 {
		n = 1
	}
	return n
}

// Active reports whether the reservation still holds its room.
func (r Reservation) Active() bool {
	return r.Status == ReservationReserved || r.Status == ReservationCheckedIn
}
