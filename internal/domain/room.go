package domain

import "time"

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
	RoomReserved    RoomStatus = "reserved"
)

type RoomType struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	TypeName     string    `json:"type_name" gorm:"uniqueIndex;size:255" validate:"required,max=255"`
	Description  string    `json:"description" gorm:"type:text"`
	BasePrice    float64   `json:"base_price" validate:"gte=0"`
	MaxOccupancy int       `json:"max_occupancy" validate:"gte=1"`
	Amenities    string    `json:"amenities" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Rooms []Room `json:"rooms,omitempty" gorm:"foreignKey:RoomTypeID"`
}

func (RoomType) TableName() string { return "room_types" }

type Room struct {
	ID         int64      `json:"id" gorm:"primaryKey"`
	RoomNumber string     `json:"room_number" gorm:"uniqueIndex;size:10" validate:"required,max=10"`
	RoomTypeID int64      `json:"room_type_id" validate:"required"`
	Status     RoomStatus `json:"status" gorm:"size:16;default:available"`
	Floor      int        `json:"floor" validate:"gte=1"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	RoomType *RoomType `json:"room_type,omitempty" gorm:"foreignKey:RoomTypeID"`
}
