package catalog

type CreateRoomTypeRequest struct {
	TypeName     string  `json:"type_name" validate:"required,max=255"`
	Description  string  `json:"description" validate:"required"`
	BasePrice    float64 `json:"base_price" validate:"gte=0"`
	MaxOccupancy int     `json:"max_occupancy" validate:"required,gte=1"`
	Amenities    string  `json:"amenities" validate:"required"`
}

type UpdateRoomTypeRequest struct {
	TypeName     *string  `json:"type_name" validate:"omitempty,max=255"`
	Description  *string  `json:"description"`
	BasePrice    *float64 `json:"base_price" validate:"omitempty,gte=0"`
	MaxOccupancy *int     `json:"max_occupancy" validate:"omitempty,gte=1"`
	Amenities    *string  `json:"amenities"`
}

type CreateRoomRequest struct {
	RoomNumber string `json:"room_number" validate:"required,max=10"`
	RoomTypeID int64  `json:"room_type_id" validate:"required"`
	Status     string `json:"status" validate:"required,oneof=available occupied maintenance reserved"`
	Floor      int    `json:"floor" validate:"required,gte=1"`
}

type UpdateRoomRequest struct {
	RoomNumber *string `json:"room_number" validate:"omitempty,max=10"`
	RoomTypeID *int64  `json:"room_type_id"`
	Status     *string `json:"status" validate:"omitempty,oneof=available occupied maintenance reserved"`
	Floor      *int    `json:"floor" validate:"omitempty,gte=1"`
}

type CreateServiceRequest struct {
	ServiceName string  `json:"service_name" validate:"required,max=255"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Category    string  `json:"category" validate:"required,oneof=food laundry spa transport other"`
	IsActive    *bool   `json:"is_active"`
}

type UpdateServiceRequest struct {
	ServiceName *string  `json:"service_name" validate:"omitempty,max=255"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Category    *string  `json:"category" validate:"omitempty,oneof=food laundry spa transport other"`
	IsActive    *bool    `json:"is_active"`
}
