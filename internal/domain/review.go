package domain

import "time"

type Review struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	CustomerID int64     `json:"customer_id" gorm:"index" validate:"required"`
	BookingID  int64     `json:"booking_id" gorm:"uniqueIndex" validate:"required"`
	Rating     int       `json:"rating" validate:"required,gte=1,lte=5"`
	Comment    string    `json:"comment,omitempty" gorm:"type:text"`
	ReviewDate time.Time `json:"review_date"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Customer *User    `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Booking  *Booking `json:"booking,omitempty" gorm:"foreignKey:BookingID"`
}
