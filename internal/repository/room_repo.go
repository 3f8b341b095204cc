package repository

import (
	"context"

	"gorm.io/gorm"

	"hotelier/internal/domain"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// RoomFilter narrows List results; zero values mean "no filter".
type RoomFilter struct {
	Status     string
	RoomTypeID int64
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var room domain.Room
	if err := r.db.WithContext(ctx).Preload("RoomType").First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *RoomRepository) List(ctx context.Context, f RoomFilter) ([]domain.Room, error) {
	q := r.db.WithContext(ctx).Preload("RoomType")
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.RoomTypeID > 0 {
		q = q.Where("room_type_id = ?", f.RoomTypeID)
	}

	var rooms []domain.Room
	if err := q.Order("id").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *RoomRepository) NumberTaken(ctx context.Context, roomNumber string, excludeID int64) (bool, error) {
	var cnt int64
	q := r.db.WithContext(ctx).Model(&domain.Room{}).Where("room_number = ?", roomNumber)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *RoomRepository) CountBookings(ctx context.Context, roomID int64) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("room_id = ?", roomID).
		Count(&cnt).Error
	return cnt, err
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	return r.db.WithContext(ctx).Omit("RoomType").Save(room).Error
}

func (r *RoomRepository) UpdateStatus(ctx context.Context, roomID int64, status domain.RoomStatus) error {
	return r.db.WithContext(ctx).Model(&domain.Room{}).
		Where("id = ?", roomID).
		Update("status", status).Error
}

func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Room{}, id).Error
}
