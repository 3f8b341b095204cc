package catalog

import (
	"context"

	"hotelier/internal/domain"
	"hotelier/internal/repository"
)

type RoomTypeRepository interface {
	Create(ctx context.Context, rt *domain.RoomType) error
	GetByID(ctx context.Context, id int64) (*domain.RoomType, error)
	GetByIDWithRooms(ctx context.Context, id int64) (*domain.RoomType, error)
	List(ctx context.Context) ([]domain.RoomType, error)
	NameTaken(ctx context.Context, name string, excludeID int64) (bool, error)
	CountRooms(ctx context.Context, roomTypeID int64) (int64, error)
	Update(ctx context.Context, rt *domain.RoomType) error
	Delete(ctx context.Context, id int64) error
}

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	List(ctx context.Context, f repository.RoomFilter) ([]domain.Room, error)
	NumberTaken(ctx context.Context, roomNumber string, excludeID int64) (bool, error)
	CountBookings(ctx context.Context, roomID int64) (int64, error)
	Update(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, id int64) error
}

type ServiceRepository interface {
	Create(ctx context.Context, s *domain.Service) error
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	List(ctx context.Context, f repository.ServiceFilter) ([]domain.Service, error)
	CountUsages(ctx context.Context, serviceID int64) (int64, error)
	Update(ctx context.Context, s *domain.Service) error
	Delete(ctx context.Context, id int64) error
}
