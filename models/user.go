package models

import (
	"time"
)

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

type User struct {
	ID uint `gorm:"primaryKey;column:user_id" json:"user_id"`

	Username     string `gorm:"uniqueIndex;size:150" json:"username"`
	PasswordHash string `gorm:"column:password_hash;size:255" json:"-"`
	Role         string `gorm:"size:32;default:staff" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
