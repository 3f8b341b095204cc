package report

import (
	"time"

	"hotelier/internal/domain"
	"hotelier/internal/repository"
)

const dateLayout = "2006-01-02"

// DateRange is an inclusive day range. Reports default to the last month
// when the caller does not narrow it.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func defaultRange() DateRange {
	now := time.Now().UTC()
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return DateRange{Start: end.AddDate(0, -1, 0), End: end}
}

type RoomCounts struct {
	Total       int64 `json:"total"`
	Available   int64 `json:"available"`
	Occupied    int64 `json:"occupied"`
	Reserved    int64 `json:"reserved"`
	Maintenance int64 `json:"maintenance"`
}

type DashboardReport struct {
	Date             string           `json:"date"`
	Rooms            RoomCounts       `json:"rooms"`
	TodayCheckIns    int64            `json:"today_check_ins"`
	TodayCheckOuts   int64            `json:"today_check_outs"`
	TodayNewBookings int64            `json:"today_new_bookings"`
	MonthRevenue     float64          `json:"month_revenue"`
	UpcomingBookings []domain.Booking `json:"upcoming_bookings"`
}

type BookingsDay struct {
	Date     string  `json:"date"`
	Bookings int64   `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

type BookingsSummary struct {
	StartDate           string           `json:"start_date"`
	EndDate             string           `json:"end_date"`
	TotalBookings       int64            `json:"total_bookings"`
	TotalRevenue        float64          `json:"total_revenue"`
	AverageBookingValue float64          `json:"average_booking_value"`
	StatusCounts        map[string]int64 `json:"status_counts"`
	Days                []BookingsDay    `json:"days"`
}

type OccupancyDay struct {
	Date          string  `json:"date"`
	OccupiedRooms int64   `json:"occupied_rooms"`
	OccupancyRate float64 `json:"occupancy_rate"`
}

type OccupancyReport struct {
	StartDate            string         `json:"start_date"`
	EndDate              string         `json:"end_date"`
	TotalRooms           int64          `json:"total_rooms"`
	AverageOccupancyRate float64        `json:"average_occupancy_rate"`
	Days                 []OccupancyDay `json:"days"`
}

type RevenueReport struct {
	StartDate    string                          `json:"start_date"`
	EndDate      string                          `json:"end_date"`
	TotalRevenue float64                         `json:"total_revenue"`
	RoomTypes    []repository.RoomTypeRevenueRow `json:"room_types"`
}

type ServiceUsageReport struct {
	StartDate    string                       `json:"start_date"`
	EndDate      string                       `json:"end_date"`
	TotalRevenue float64                      `json:"total_revenue"`
	Services     []repository.ServiceUsageRow `json:"services"`
}

type CustomerStat struct {
	CustomerID   int64   `json:"customer_id"`
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	BookingCount int64   `json:"booking_count"`
	TotalSpent   float64 `json:"total_spent"`
	AverageSpent float64 `json:"average_spent"`
}

type CustomerReport struct {
	StartDate    string         `json:"start_date"`
	EndDate      string         `json:"end_date"`
	NewCustomers int64          `json:"new_customers"`
	Customers    []CustomerStat `json:"customers"`
}

type MonthFinancial struct {
	Month          string  `json:"month"`
	Bookings       int64   `json:"bookings"`
	RoomRevenue    float64 `json:"room_revenue"`
	ServiceRevenue float64 `json:"service_revenue"`
	TotalRevenue   float64 `json:"total_revenue"`
}

type FinancialReport struct {
	Year                int              `json:"year"`
	TotalRoomRevenue    float64          `json:"total_room_revenue"`
	TotalServiceRevenue float64          `json:"total_service_revenue"`
	TotalRevenue        float64          `json:"total_revenue"`
	Months              []MonthFinancial `json:"months"`
}

// ServiceExportRow is the flat shape used by the service export in both
// formats.
type ServiceExportRow struct {
	ItemID      int64     `json:"item_id"`
	BookingID   int64     `json:"booking_id"`
	ServiceName string    `json:"service_name"`
	Category    string    `json:"category"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	TotalPrice  float64   `json:"total_price"`
	ServiceDate time.Time `json:"service_date"`
	Status      string    `json:"status"`
}
