package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotelier/internal/domain"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// ReviewFilter narrows List results; zero values mean "no filter".
type ReviewFilter struct {
	BookingID  int64
	CustomerID int64
	Rating     int
}

// Create inserts the review. The unique index on booking_id backstops the
// one-review-per-booking rule under concurrent submits; a postgres unique
// violation surfaces as ErrDuplicateReview.
func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(rv).Error
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateReview
	}
	return err
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	var rv domain.Review
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Booking.Room.RoomType").
		First(&rv, id).Error
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewRepository) List(ctx context.Context, f ReviewFilter) ([]domain.Review, error) {
	q := r.db.WithContext(ctx).Preload("Customer").Preload("Booking.Room.RoomType")
	if f.BookingID > 0 {
		q = q.Where("booking_id = ?", f.BookingID)
	}
	if f.CustomerID > 0 {
		q = q.Where("customer_id = ?", f.CustomerID)
	}
	if f.Rating > 0 {
		q = q.Where("rating = ?", f.Rating)
	}

	var reviews []domain.Review
	if err := q.Order("id").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepository) ExistsForBooking(ctx context.Context, bookingID int64) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Review{}).
		Where("booking_id = ?", bookingID).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *ReviewRepository) Update(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(rv).Error
}

func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Review{}, id).Error
}
