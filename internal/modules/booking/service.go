package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"hotelier/internal/domain"
	"hotelier/internal/repository"
)

// Service implements the booking lifecycle. Writes that change a booking's
// status go through the repository's transactional paths so the room status
// never drifts out of sync.
type Service struct {
	bookings BookingRepository
	rooms    RoomRepository
	services ServiceRepository
	items    BookingServiceRepository
}

func NewService(bookings BookingRepository, rooms RoomRepository, services ServiceRepository, items BookingServiceRepository) *Service {
	return &Service{bookings: bookings, rooms: rooms, services: services, items: items}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func nightsBetween(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn) / (24 * time.Hour))
}

// Create books a room for the customer. The conflict check and the room
// status flip happen inside one transaction in the repository.
func (s *Service) Create(ctx context.Context, customerID int64, req CreateBookingRequest) (*domain.Booking, error) {
	checkIn, err := parseDate(req.CheckInDate)
	if err != nil {
		return nil, ErrValidation
	}
	checkOut, err := parseDate(req.CheckOutDate)
	if err != nil {
		return nil, ErrValidation
	}
	if checkIn.Before(today()) || !checkOut.After(checkIn) {
		return nil, ErrValidation
	}

	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		return nil, notFound(err)
	}
	if room.RoomType == nil {
		return nil, gorm.ErrInvalidData
	}

	nights := nightsBetween(checkIn, checkOut)
	b := &domain.Booking{
		CustomerID:      customerID,
		RoomID:          room.ID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		TotalNights:     nights,
		TotalAmount:     float64(nights) * room.RoomType.BasePrice,
		Status:          domain.BookingPending,
		SpecialRequests: req.SpecialRequests,
		BookingDate:     today(),
	}

	if err := s.bookings.CreateReserving(ctx, b); err != nil {
		switch {
		case errors.Is(err, repository.ErrRoomUnavailable):
			return nil, ErrRoomUnavailable
		case errors.Is(err, repository.ErrDateConflict):
			return nil, ErrDateConflict
		}
		return nil, err
	}
	return s.bookings.GetByIDWithDetails(ctx, b.ID)
}

// List is the admin index with optional filters.
func (s *Service) List(ctx context.Context, f repository.BookingFilter) ([]domain.Booking, error) {
	return s.bookings.List(ctx, f)
}

// ListForCustomer returns the customer's own bookings.
func (s *Service) ListForCustomer(ctx context.Context, customerID int64, status string) ([]domain.Booking, error) {
	return s.bookings.List(ctx, repository.BookingFilter{CustomerID: customerID, Status: status})
}

// Get loads a booking with its room, services and review. Customers can
// only see their own bookings.
func (s *Service) Get(ctx context.Context, id, userID int64, role domain.UserRole) (*domain.Booking, error) {
	b, err := s.bookings.GetByIDWithDetails(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if role != domain.RoleAdmin && b.CustomerID != userID {
		return nil, ErrForbidden
	}
	return b, nil
}

// Update applies role-dependent changes. Customers may edit special
// requests and cancel; admins may also move dates and set any status.
func (s *Service) Update(ctx context.Context, id, userID int64, role domain.UserRole, req UpdateBookingRequest) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	admin := role == domain.RoleAdmin
	if !admin && b.CustomerID != userID {
		return nil, ErrForbidden
	}

	if req.SpecialRequests != nil {
		b.SpecialRequests = *req.SpecialRequests
	}

	if admin && (req.CheckInDate != nil || req.CheckOutDate != nil) {
		checkIn, checkOut := b.CheckInDate, b.CheckOutDate
		if req.CheckInDate != nil {
			if checkIn, err = parseDate(*req.CheckInDate); err != nil {
				return nil, ErrValidation
			}
		}
		if req.CheckOutDate != nil {
			if checkOut, err = parseDate(*req.CheckOutDate); err != nil {
				return nil, ErrValidation
			}
		}
		if !checkOut.After(checkIn) {
			return nil, ErrValidation
		}

		conflict, err := s.bookings.HasConflict(ctx, b.RoomID, checkIn, checkOut, b.ID)
		if err != nil {
			return nil, err
		}
		if conflict {
			return nil, ErrDateConflict
		}

		room, err := s.rooms.GetByID(ctx, b.RoomID)
		if err != nil {
			return nil, err
		}
		if room.RoomType == nil {
			return nil, gorm.ErrInvalidData
		}
		b.CheckInDate = checkIn
		b.CheckOutDate = checkOut
		b.TotalNights = nightsBetween(checkIn, checkOut)
		b.TotalAmount = float64(b.TotalNights) * room.RoomType.BasePrice
	}

	if req.Status == nil {
		if err := s.bookings.Save(ctx, b); err != nil {
			return nil, err
		}
		return s.bookings.GetByIDWithDetails(ctx, b.ID)
	}

	next := domain.BookingStatus(*req.Status)
	if !admin {
		if next != domain.BookingCancelled {
			return nil, ErrStatusNotAllowed
		}
		if b.Status == domain.BookingCheckedIn || b.Status == domain.BookingCheckedOut {
			return nil, ErrCannotCancel
		}
	}
	b.Status = next
	if err := s.bookings.SaveWithRoomStatus(ctx, b, domain.RoomStatusFor(next)); err != nil {
		return nil, err
	}
	return s.bookings.GetByIDWithDetails(ctx, b.ID)
}

// Delete removes a booking that never went through a stay. Deleting a
// pending booking releases the room; a cancelled one already did.
func (s *Service) Delete(ctx context.Context, id, userID int64, role domain.UserRole) error {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return notFound(err)
	}
	if role != domain.RoleAdmin && b.CustomerID != userID {
		return ErrForbidden
	}
	if b.Status != domain.BookingPending && b.Status != domain.BookingCancelled {
		return ErrNotDeletable
	}
	return s.bookings.Delete(ctx, b, b.Status != domain.BookingCancelled)
}

// ---- booking services ----

// AddService attaches an ancillary service to a booking, snapshotting the
// unit price at request time.
func (s *Service) AddService(ctx context.Context, userID int64, role domain.UserRole, req AddServiceRequest) (*domain.BookingService, error) {
	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, notFound(err)
	}
	if role != domain.RoleAdmin && b.CustomerID != userID {
		return nil, ErrForbidden
	}

	svc, err := s.services.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	if !svc.IsActive {
		return nil, ErrServiceInactive
	}

	serviceDate, err := parseDate(req.ServiceDate)
	if err != nil {
		return nil, ErrValidation
	}

	item := &domain.BookingService{
		BookingID:   b.ID,
		ServiceID:   svc.ID,
		Quantity:    req.Quantity,
		UnitPrice:   svc.Price,
		TotalPrice:  float64(req.Quantity) * svc.Price,
		ServiceDate: serviceDate,
		Status:      domain.ServiceRequested,
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return s.items.GetByID(ctx, item.ID)
}

// ListServiceItems is the admin index over booking-service rows.
func (s *Service) ListServiceItems(ctx context.Context, f repository.BookingServiceFilter) ([]domain.BookingService, error) {
	return s.items.List(ctx, f)
}

func (s *Service) GetServiceItem(ctx context.Context, id, userID int64, role domain.UserRole) (*domain.BookingService, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if role != domain.RoleAdmin && (item.Booking == nil || item.Booking.CustomerID != userID) {
		return nil, ErrForbidden
	}
	return item, nil
}

// UpdateServiceItem edits an attached service. Customers may change the
// quantity or cancel while the item is still requested or confirmed;
// admins may also move the date and set any status.
func (s *Service) UpdateServiceItem(ctx context.Context, id, userID int64, role domain.UserRole, req UpdateServiceItemRequest) (*domain.BookingService, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	admin := role == domain.RoleAdmin
	if !admin {
		if item.Booking == nil || item.Booking.CustomerID != userID {
			return nil, ErrForbidden
		}
		if item.Status != domain.ServiceRequested && item.Status != domain.ServiceConfirmed {
			return nil, ErrItemLocked
		}
		if req.Status != nil && domain.BookingServiceStatus(*req.Status) != domain.ServiceCancelled {
			return nil, ErrStatusNotAllowed
		}
		if req.ServiceDate != nil {
			return nil, ErrStatusNotAllowed
		}
	}

	if req.Quantity != nil {
		item.Quantity = *req.Quantity
		item.TotalPrice = float64(item.Quantity) * item.UnitPrice
	}
	if req.ServiceDate != nil {
		d, err := parseDate(*req.ServiceDate)
		if err != nil {
			return nil, ErrValidation
		}
		item.ServiceDate = d
	}
	if req.Status != nil {
		item.Status = domain.BookingServiceStatus(*req.Status)
	}

	if err := s.items.Update(ctx, item); err != nil {
		return nil, err
	}
	return s.items.GetByID(ctx, item.ID)
}

// DeleteServiceItem detaches a service from a booking. Completed items are
// already billed and stay.
func (s *Service) DeleteServiceItem(ctx context.Context, id, userID int64, role domain.UserRole) error {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return notFound(err)
	}
	if role != domain.RoleAdmin && (item.Booking == nil || item.Booking.CustomerID != userID) {
		return ErrForbidden
	}
	if item.Status == domain.ServiceCompleted {
		return ErrItemCompleted
	}
	return s.items.Delete(ctx, item.ID)
}
