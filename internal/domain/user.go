package domain

import "time"

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleCustomer UserRole = "customer"
)

type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:255" validate:"required,max=255"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255" validate:"required,email,max=255"`
	PasswordHash string    `json:"-" gorm:"column:password_hash"`
	FullName     string    `json:"full_name" validate:"required,max=255"`
	Phone        string    `json:"phone,omitempty" gorm:"size:20"`
	Address      string    `json:"address,omitempty" gorm:"size:255"`
	Role         UserRole  `json:"role" gorm:"size:16;default:customer"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
