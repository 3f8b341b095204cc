package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"hotelier/internal/domain"
)

// ReportRepository holds the read-side aggregation queries. Grouped joins
// stick to portable SQL so the same queries run on postgres and the sqlite
// used in tests; date-keyed series are bucketed by the report service in Go.
type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

type RoomTypeRevenueRow struct {
	TypeName            string  `json:"type_name"`
	BasePrice           float64 `json:"base_price"`
	TotalBookings       int64   `json:"total_bookings"`
	TotalNights         int64   `json:"total_nights"`
	TotalRevenue        float64 `json:"total_revenue"`
	AverageBookingValue float64 `json:"average_booking_value"`
}

type ServiceUsageRow struct {
	ServiceName   string  `json:"service_name"`
	Category      string  `json:"category"`
	UsageCount    int64   `json:"usage_count"`
	TotalQuantity int64   `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
}

type CustomerStatsRow struct {
	CustomerID   int64   `json:"customer_id"`
	BookingCount int64   `json:"booking_count"`
	TotalSpent   float64 `json:"total_spent"`
}

// BookingsBetween returns bookings whose booking_date falls in [start, end].
func (r *ReportRepository) BookingsBetween(ctx context.Context, start, end time.Time) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.WithContext(ctx).
		Where("booking_date >= ? AND booking_date <= ?", start, end).
		Order("booking_date").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// BookingsOverlapping returns non-cancelled bookings whose stay intersects
// [start, end), for occupancy series.
func (r *ReportRepository) BookingsOverlapping(ctx context.Context, start, end time.Time) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.WithContext(ctx).
		Where("status <> ?", domain.BookingCancelled).
		Where("check_in_date < ? AND check_out_date > ?", end, start).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// BookingsExport joins customer and room data for the flat booking export.
type BookingExportRow struct {
	BookingID     int64     `json:"booking_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	RoomNumber    string    `json:"room_number"`
	RoomType      string    `json:"room_type"`
	CheckInDate   time.Time `json:"check_in_date"`
	CheckOutDate  time.Time `json:"check_out_date"`
	TotalNights   int       `json:"total_nights"`
	TotalAmount   float64   `json:"total_amount"`
	Status        string    `json:"status"`
	BookingDate   time.Time `json:"booking_date"`
}

func (r *ReportRepository) BookingsExport(ctx context.Context, start, end time.Time) ([]BookingExportRow, error) {
	var rows []BookingExportRow
	err := r.db.WithContext(ctx).
		Table("bookings").
		Select(`bookings.id AS booking_id,
			users.full_name AS customer_name,
			users.email AS customer_email,
			rooms.room_number,
			room_types.type_name AS room_type,
			bookings.check_in_date,
			bookings.check_out_date,
			bookings.total_nights,
			bookings.total_amount,
			bookings.status,
			bookings.booking_date`).
		Joins("JOIN users ON users.id = bookings.customer_id").
		Joins("JOIN rooms ON rooms.id = bookings.room_id").
		Joins("JOIN room_types ON room_types.id = rooms.room_type_id").
		Where("bookings.booking_date >= ? AND bookings.booking_date <= ?", start, end).
		Order("bookings.booking_date").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ReportRepository) RevenueByRoomType(ctx context.Context, start, end time.Time) ([]RoomTypeRevenueRow, error) {
	var rows []RoomTypeRevenueRow
	err := r.db.WithContext(ctx).
		Table("bookings").
		Select(`room_types.type_name,
			room_types.base_price,
			COUNT(*) AS total_bookings,
			SUM(bookings.total_nights) AS total_nights,
			SUM(bookings.total_amount) AS total_revenue,
			AVG(bookings.total_amount) AS average_booking_value`).
		Joins("JOIN rooms ON rooms.id = bookings.room_id").
		Joins("JOIN room_types ON room_types.id = rooms.room_type_id").
		Where("bookings.booking_date >= ? AND bookings.booking_date <= ?", start, end).
		Group("room_types.type_name, room_types.base_price").
		Order("total_revenue DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ReportRepository) ServiceUsage(ctx context.Context, start, end time.Time) ([]ServiceUsageRow, error) {
	var rows []ServiceUsageRow
	err := r.db.WithContext(ctx).
		Table("booking_services").
		Select(`services.service_name,
			services.category,
			COUNT(*) AS usage_count,
			SUM(booking_services.quantity) AS total_quantity,
			SUM(booking_services.total_price) AS total_revenue`).
		Joins("JOIN services ON services.id = booking_services.service_id").
		Where("booking_services.service_date >= ? AND booking_services.service_date <= ?", start, end).
		Group("services.service_name, services.category").
		Order("total_revenue DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ServiceLineItemsBetween returns line items (with their service) dated in
// [start, end], for the service export and the yearly financial report.
func (r *ReportRepository) ServiceLineItemsBetween(ctx context.Context, start, end time.Time) ([]domain.BookingService, error) {
	var items []domain.BookingService
	err := r.db.WithContext(ctx).
		Preload("Service").
		Where("service_date >= ? AND service_date <= ?", start, end).
		Order("service_date").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// CustomerBookingStats groups booking count and spend per customer over the
// period. The caller joins in the user rows.
func (r *ReportRepository) CustomerBookingStats(ctx context.Context, start, end time.Time) ([]CustomerStatsRow, error) {
	var rows []CustomerStatsRow
	err := r.db.WithContext(ctx).
		Table("bookings").
		Select("customer_id, COUNT(*) AS booking_count, SUM(total_amount) AS total_spent").
		Where("booking_date >= ? AND booking_date <= ?", start, end).
		Group("customer_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ReportRepository) AllCustomers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := r.db.WithContext(ctx).
		Where("role = ?", domain.RoleCustomer).
		Order("id").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *ReportRepository) CountNewCustomers(ctx context.Context, start, end time.Time) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("role = ?", domain.RoleCustomer).
		Where("created_at >= ? AND created_at <= ?", start, end).
		Count(&cnt).Error
	return cnt, err
}

func (r *ReportRepository) CountRooms(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Room{}).Count(&cnt).Error
	return cnt, err
}

func (r *ReportRepository) CountRoomsByStatus(ctx context.Context, status domain.RoomStatus) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Room{}).
		Where("status = ?", status).
		Count(&cnt).Error
	return cnt, err
}

func (r *ReportRepository) CountBookingsByDateField(ctx context.Context, field string, dayStart, dayEnd time.Time) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where(field+" >= ? AND "+field+" < ?", dayStart, dayEnd).
		Count(&cnt).Error
	return cnt, err
}

func (r *ReportRepository) SumBookingAmount(ctx context.Context, start, end time.Time) (float64, error) {
	var total *float64
	err := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Select("SUM(total_amount)").
		Where("booking_date >= ? AND booking_date <= ?", start, end).
		Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return *total, nil
}

func (r *ReportRepository) UpcomingConfirmed(ctx context.Context, after time.Time, limit int) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Room").
		Where("check_in_date > ?", after).
		Where("status = ?", domain.BookingConfirmed).
		Order("check_in_date").
		Limit(limit).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
