package models

import (
	"time"
)

type Customer struct {
	ID uint `gorm:"primaryKey;column:customer_id" json:"customer_id"`

	Name    string `json:"name" gorm:"size:255"`
	Contact string `json:"contact" gorm:"size:100"`
	IDCard  string `json:"id_card" gorm:"column:id_card;uniqueIndex;size:32"`
	Points  int    `json:"points" gorm:"default:0"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
