package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hotelier/internal/domain"
	"hotelier/internal/repository"
)

// Service covers the hotel catalog: room types, rooms and the ancillary
// services guests can book.
type Service struct {
	roomTypes RoomTypeRepository
	rooms     RoomRepository
	services  ServiceRepository
}

func NewService(roomTypes RoomTypeRepository, rooms RoomRepository, services ServiceRepository) *Service {
	return &Service{roomTypes: roomTypes, rooms: rooms, services: services}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// ---- room types ----

func (s *Service) ListRoomTypes(ctx context.Context) ([]domain.RoomType, error) {
	return s.roomTypes.List(ctx)
}

func (s *Service) GetRoomType(ctx context.Context, id int64) (*domain.RoomType, error) {
	rt, err := s.roomTypes.GetByIDWithRooms(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return rt, nil
}

func (s *Service) CreateRoomType(ctx context.Context, req CreateRoomTypeRequest) (*domain.RoomType, error) {
	taken, err := s.roomTypes.NameTaken(ctx, req.TypeName, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrRoomTypeNameTaken
	}

	rt := &domain.RoomType{
		TypeName:     req.TypeName,
		Description:  req.Description,
		BasePrice:    req.BasePrice,
		MaxOccupancy: req.MaxOccupancy,
		Amenities:    req.Amenities,
	}
	if err := s.roomTypes.Create(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (s *Service) UpdateRoomType(ctx context.Context, id int64, req UpdateRoomTypeRequest) (*domain.RoomType, error) {
	rt, err := s.roomTypes.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}

	if req.TypeName != nil && *req.TypeName != rt.TypeName {
		taken, err := s.roomTypes.NameTaken(ctx, *req.TypeName, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrRoomTypeNameTaken
		}
		rt.TypeName = *req.TypeName
	}
	if req.Description != nil {
		rt.Description = *req.Description
	}
	if req.BasePrice != nil {
		rt.BasePrice = *req.BasePrice
	}
	if req.MaxOccupancy != nil {
		rt.MaxOccupancy = *req.MaxOccupancy
	}
	if req.Amenities != nil {
		rt.Amenities = *req.Amenities
	}

	if err := s.roomTypes.Update(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (s *Service) DeleteRoomType(ctx context.Context, id int64) error {
	if _, err := s.roomTypes.GetByID(ctx, id); err != nil {
		return notFound(err)
	}
	cnt, err := s.roomTypes.CountRooms(ctx, id)
	if err != nil {
		return err
	}
	if cnt > 0 {
		return ErrRoomTypeInUse
	}
	return s.roomTypes.Delete(ctx, id)
}

// ---- rooms ----

func (s *Service) ListRooms(ctx context.Context, f repository.RoomFilter) ([]domain.Room, error) {
	return s.rooms.List(ctx, f)
}

func (s *Service) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return room, nil
}

func (s *Service) CreateRoom(ctx context.Context, req CreateRoomRequest) (*domain.Room, error) {
	taken, err := s.rooms.NumberTaken(ctx, req.RoomNumber, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrRoomNumberTaken
	}

	if _, err := s.roomTypes.GetByID(ctx, req.RoomTypeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomTypeMissing
		}
		return nil, err
	}

	room := &domain.Room{
		RoomNumber: req.RoomNumber,
		RoomTypeID: req.RoomTypeID,
		Status:     domain.RoomStatus(req.Status),
		Floor:      req.Floor,
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) UpdateRoom(ctx context.Context, id int64, req UpdateRoomRequest) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}

	if req.RoomNumber != nil && *req.RoomNumber != room.RoomNumber {
		taken, err := s.rooms.NumberTaken(ctx, *req.RoomNumber, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrRoomNumberTaken
		}
		room.RoomNumber = *req.RoomNumber
	}
	if req.RoomTypeID != nil {
		if _, err := s.roomTypes.GetByID(ctx, *req.RoomTypeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrRoomTypeMissing
			}
			return nil, err
		}
		room.RoomTypeID = *req.RoomTypeID
		room.RoomType = nil
	}
	if req.Status != nil {
		room.Status = domain.RoomStatus(*req.Status)
	}
	if req.Floor != nil {
		room.Floor = *req.Floor
	}

	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) DeleteRoom(ctx context.Context, id int64) error {
	if _, err := s.rooms.GetByID(ctx, id); err != nil {
		return notFound(err)
	}
	cnt, err := s.rooms.CountBookings(ctx, id)
	if err != nil {
		return err
	}
	if cnt > 0 {
		return ErrRoomInUse
	}
	return s.rooms.Delete(ctx, id)
}

// ---- services ----

// ListServices hides inactive services from everyone but admins unless the
// caller filters explicitly.
func (s *Service) ListServices(ctx context.Context, f repository.ServiceFilter, isAdmin bool) ([]domain.Service, error) {
	if f.IsActive == nil && !isAdmin {
		active := true
		f.IsActive = &active
	}
	return s.services.List(ctx, f)
}

// GetService returns not-found for inactive services requested by
// non-admins, so their existence does not leak.
func (s *Service) GetService(ctx context.Context, id int64, isAdmin bool) (*domain.Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if !svc.IsActive && !isAdmin {
		return nil, ErrNotFound
	}
	return svc, nil
}

func (s *Service) CreateService(ctx context.Context, req CreateServiceRequest) (*domain.Service, error) {
	svc := &domain.Service{
		ServiceName: req.ServiceName,
		Description: req.Description,
		Price:       req.Price,
		Category:    domain.ServiceCategory(req.Category),
		IsActive:    true,
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) UpdateService(ctx context.Context, id int64, req UpdateServiceRequest) (*domain.Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}

	if req.ServiceName != nil {
		svc.ServiceName = *req.ServiceName
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if req.Category != nil {
		svc.Category = domain.ServiceCategory(*req.Category)
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}

	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) DeleteService(ctx context.Context, id int64) error {
	if _, err := s.services.GetByID(ctx, id); err != nil {
		return notFound(err)
	}
	cnt, err := s.services.CountUsages(ctx, id)
	if err != nil {
		return err
	}
	if cnt > 0 {
		return ErrServiceInUse
	}
	return s.services.Delete(ctx, id)
}
