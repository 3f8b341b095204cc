package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotelier/internal/domain"
)

type BookingServiceRepository struct {
	db *gorm.DB
}

func NewBookingServiceRepository(db *gorm.DB) *BookingServiceRepository {
	return &BookingServiceRepository{db: db}
}

// BookingServiceFilter narrows List results; zero values mean "no filter".
type BookingServiceFilter struct {
	BookingID int64
	ServiceID int64
	Status    string
}

func (r *BookingServiceRepository) Create(ctx context.Context, bs *domain.BookingService) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(bs).Error
}

func (r *BookingServiceRepository) GetByID(ctx context.Context, id int64) (*domain.BookingService, error) {
	var bs domain.BookingService
	err := r.db.WithContext(ctx).
		Preload("Booking").
		Preload("Service").
		First(&bs, id).Error
	if err != nil {
		return nil, err
	}
	return &bs, nil
}

func (r *BookingServiceRepository) List(ctx context.Context, f BookingServiceFilter) ([]domain.BookingService, error) {
	q := r.db.WithContext(ctx).Preload("Booking").Preload("Service")
	if f.BookingID > 0 {
		q = q.Where("booking_id = ?", f.BookingID)
	}
	if f.ServiceID > 0 {
		q = q.Where("service_id = ?", f.ServiceID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var items []domain.BookingService
	if err := q.Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *BookingServiceRepository) Update(ctx context.Context, bs *domain.BookingService) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(bs).Error
}

func (r *BookingServiceRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.BookingService{}, id).Error
}
