package booking

import (
	"context"
	"time"

	"hotelier/internal/domain"
	"hotelier/internal/repository"
)

// BookingRepository defines the booking storage operations, including the
// transactional paths that keep room status in sync.
type BookingRepository interface {
	CreateReserving(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByIDWithDetails(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, f repository.BookingFilter) ([]domain.Booking, error)
	HasConflict(ctx context.Context, roomID int64, checkIn, checkOut time.Time, excludeID int64) (bool, error)
	Save(ctx context.Context, b *domain.Booking) error
	SaveWithRoomStatus(ctx context.Context, b *domain.Booking, status domain.RoomStatus) error
	Delete(ctx context.Context, b *domain.Booking, releaseRoom bool) error
}

type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

type BookingServiceRepository interface {
	Create(ctx context.Context, bs *domain.BookingService) error
	GetByID(ctx context.Context, id int64) (*domain.BookingService, error)
	List(ctx context.Context, f repository.BookingServiceFilter) ([]domain.BookingService, error)
	Update(ctx context.Context, bs *domain.BookingService) error
	Delete(ctx context.Context, id int64) error
}
