package repository

import (
	"context"

	"gorm.io/gorm"

	"hotelier/internal/domain"
)

type RoomTypeRepository struct {
	db *gorm.DB
}

func NewRoomTypeRepository(db *gorm.DB) *RoomTypeRepository {
	return &RoomTypeRepository{db: db}
}

func (r *RoomTypeRepository) Create(ctx context.Context, rt *domain.RoomType) error {
	return r.db.WithContext(ctx).Create(rt).Error
}

func (r *RoomTypeRepository) GetByID(ctx context.Context, id int64) (*domain.RoomType, error) {
	var rt domain.RoomType
	if err := r.db.WithContext(ctx).First(&rt, id).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *RoomTypeRepository) GetByIDWithRooms(ctx context.Context, id int64) (*domain.RoomType, error) {
	var rt domain.RoomType
	if err := r.db.WithContext(ctx).Preload("Rooms").First(&rt, id).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *RoomTypeRepository) List(ctx context.Context) ([]domain.RoomType, error) {
	var types []domain.RoomType
	if err := r.db.WithContext(ctx).Order("id").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (r *RoomTypeRepository) NameTaken(ctx context.Context, name string, excludeID int64) (bool, error) {
	var cnt int64
	q := r.db.WithContext(ctx).Model(&domain.RoomType{}).Where("type_name = ?", name)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *RoomTypeRepository) CountRooms(ctx context.Context, roomTypeID int64) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Room{}).
		Where("room_type_id = ?", roomTypeID).
		Count(&cnt).Error
	return cnt, err
}

func (r *RoomTypeRepository) Update(ctx context.Context, rt *domain.RoomType) error {
	return r.db.WithContext(ctx).Omit("Rooms").Save(rt).Error
}

func (r *RoomTypeRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.RoomType{}, id).Error
}
