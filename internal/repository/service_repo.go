package repository

import (
	"context"

	"gorm.io/gorm"

	"hotelier/internal/domain"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

// ServiceFilter narrows List results. IsActive is a tri-state: nil means
// "no filter".
type ServiceFilter struct {
	Category string
	IsActive *bool
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	var s domain.Service
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ServiceRepository) List(ctx context.Context, f ServiceFilter) ([]domain.Service, error) {
	q := r.db.WithContext(ctx)
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.IsActive != nil {
		q = q.Where("is_active = ?", *f.IsActive)
	}

	var services []domain.Service
	if err := q.Order("id").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *ServiceRepository) CountUsages(ctx context.Context, serviceID int64) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.BookingService{}).
		Where("service_id = ?", serviceID).
		Count(&cnt).Error
	return cnt, err
}

func (r *ServiceRepository) Update(ctx context.Context, s *domain.Service) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *ServiceRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Service{}, id).Error
}
