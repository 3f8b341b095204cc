package booking

import "time"

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// today returns the current date at midnight UTC, the granularity all
// booking math runs at.
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

type CreateBookingRequest struct {
	RoomID          int64  `json:"room_id" validate:"required"`
	CheckInDate     string `json:"check_in_date" validate:"required"`
	CheckOutDate    string `json:"check_out_date" validate:"required"`
	SpecialRequests string `json:"special_requests"`
}

// UpdateBookingRequest covers both roles; the service enforces which fields
// each role may touch.
type UpdateBookingRequest struct {
	CheckInDate     *string `json:"check_in_date"`
	CheckOutDate    *string `json:"check_out_date"`
	Status          *string `json:"status" validate:"omitempty,oneof=pending confirmed checked_in checked_out cancelled"`
	SpecialRequests *string `json:"special_requests"`
}

type AddServiceRequest struct {
	BookingID   int64  `json:"booking_id" validate:"required"`
	ServiceID   int64  `json:"service_id" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,gte=1"`
	ServiceDate string `json:"service_date" validate:"required"`
}

type UpdateServiceItemRequest struct {
	Quantity    *int    `json:"quantity" validate:"omitempty,gte=1"`
	ServiceDate *string `json:"service_date"`
	Status      *string `json:"status" validate:"omitempty,oneof=requested confirmed completed cancelled"`
}
