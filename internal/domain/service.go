package domain

import "time"

type ServiceCategory string

const (
	CategoryFood      ServiceCategory = "food"
	CategoryLaundry   ServiceCategory = "laundry"
	CategorySpa       ServiceCategory = "spa"
	CategoryTransport ServiceCategory = "transport"
	CategoryOther     ServiceCategory = "other"
)

type Service struct {
	ID          int64           `json:"id" gorm:"primaryKey"`
	ServiceName string          `json:"service_name" gorm:"size:255" validate:"required,max=255"`
	Description string          `json:"description" gorm:"type:text"`
	Price       float64         `json:"price" validate:"gte=0"`
	Category    ServiceCategory `json:"category" gorm:"size:16"`
	IsActive    bool            `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type BookingServiceStatus string

const (
	ServiceRequested BookingServiceStatus = "requested"
	ServiceConfirmed BookingServiceStatus = "confirmed"
	ServiceCompleted BookingServiceStatus = "completed"
	ServiceCancelled BookingServiceStatus = "cancelled"
)

// BookingService is a priced line item attached to a booking. UnitPrice is a
// snapshot of the service price at add time so later price changes do not
// rewrite history.
type BookingService struct {
	ID          int64                `json:"id" gorm:"primaryKey"`
	BookingID   int64                `json:"booking_id" gorm:"index" validate:"required"`
	ServiceID   int64                `json:"service_id" gorm:"index" validate:"required"`
	Quantity    int                  `json:"quantity" validate:"gte=1"`
	UnitPrice   float64              `json:"unit_price"`
	TotalPrice  float64              `json:"total_price"`
	ServiceDate time.Time            `json:"service_date"`
	Status      BookingServiceStatus `json:"status" gorm:"size:16;default:requested"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`

	Booking *Booking `json:"booking,omitempty" gorm:"foreignKey:BookingID"`
	Service *Service `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
}
