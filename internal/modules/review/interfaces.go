package review

import (
	"context"

	"hotelier/internal/domain"
	"hotelier/internal/repository"
)

type ReviewRepository interface {
	Create(ctx context.Context, r *domain.Review) error
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	List(ctx context.Context, f repository.ReviewFilter) ([]domain.Review, error)
	ExistsForBooking(ctx context.Context, bookingID int64) (bool, error)
	Update(ctx context.Context, r *domain.Review) error
	Delete(ctx context.Context, id int64) error
}

type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}
