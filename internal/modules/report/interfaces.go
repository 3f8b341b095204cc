package report

import (
	"context"
	"time"

	"hotelier/internal/domain"
	"hotelier/internal/repository"
)

// Repository is the read-side aggregation surface the report service draws
// from.
type Repository interface {
	BookingsBetween(ctx context.Context, start, end time.Time) ([]domain.Booking, error)
	BookingsOverlapping(ctx context.Context, start, end time.Time) ([]domain.Booking, error)
	BookingsExport(ctx context.Context, start, end time.Time) ([]repository.BookingExportRow, error)
	RevenueByRoomType(ctx context.Context, start, end time.Time) ([]repository.RoomTypeRevenueRow, error)
	ServiceUsage(ctx context.Context, start, end time.Time) ([]repository.ServiceUsageRow, error)
	ServiceLineItemsBetween(ctx context.Context, start, end time.Time) ([]domain.BookingService, error)
	CustomerBookingStats(ctx context.Context, start, end time.Time) ([]repository.CustomerStatsRow, error)
	AllCustomers(ctx context.Context) ([]domain.User, error)
	CountNewCustomers(ctx context.Context, start, end time.Time) (int64, error)
	CountRooms(ctx context.Context) (int64, error)
	CountRoomsByStatus(ctx context.Context, status domain.RoomStatus) (int64, error)
	CountBookingsByDateField(ctx context.Context, field string, dayStart, dayEnd time.Time) (int64, error)
	SumBookingAmount(ctx context.Context, start, end time.Time) (float64, error)
	UpcomingConfirmed(ctx context.Context, after time.Time, limit int) ([]domain.Booking, error)
}
