package domain

import "time"

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingCheckedIn  BookingStatus = "checked_in"
	BookingCheckedOut BookingStatus = "checked_out"
	BookingCancelled  BookingStatus = "cancelled"
)

// RoomStatusFor maps a booking status to the room status it implies.
// pending/confirmed hold the room, checked_in occupies it, the two terminal
// states release it.
func RoomStatusFor(s BookingStatus) RoomStatus {
	switch s {
	case BookingCheckedIn:
		return RoomOccupied
	case BookingCheckedOut, BookingCancelled:
		return RoomAvailable
	default:
		return RoomReserved
	}
}

type Booking struct {
	ID              int64         `json:"id" gorm:"primaryKey"`
	CustomerID      int64         `json:"customer_id" gorm:"index" validate:"required"`
	RoomID          int64         `json:"room_id" gorm:"index" validate:"required"`
	CheckInDate     time.Time     `json:"check_in_date" validate:"required"`
	CheckOutDate    time.Time     `json:"check_out_date" validate:"required"`
	TotalNights     int           `json:"total_nights"`
	TotalAmount     float64       `json:"total_amount"`
	Status          BookingStatus `json:"status" gorm:"size:16;default:pending"`
	SpecialRequests string        `json:"special_requests,omitempty" gorm:"type:text"`
	BookingDate     time.Time     `json:"booking_date"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`

	Customer *User            `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Room     *Room            `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	Services []BookingService `json:"services,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
	Review   *Review          `json:"review,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
}
