package models

import (
	"time"

	"gorm.io/datatypes"
)

type Transaction struct {
	ID uint `gorm:"primaryKey;column:transaction_id" json:"transaction_id"`

	ReservationID *uint `gorm:"index;column:reservation_id" json:"reservation_id"`

	Amount          float64   `json:"amount"`
	TransactionDate time.Time `gorm:"column:transaction_date" json:"transaction_date"`
	Description     string    `gorm:"size:255" json:"description"`

	// Charge breakdown written at check-out (nights, nightly rate).
	Details datatypes.JSON `gorm:"column:details" json:"details,omitempty"`

	CreatedAt time.Time `json:"created_at"`

	Reservation *Reservation `gorm:"foreignKey:ReservationID;references:ID" json:"reservation,omitempty"`
}
