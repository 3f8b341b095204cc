package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"hotelier/internal/domain"
	"hotelier/internal/repository"
)

// Mock repositories
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CreateReserving(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByIDWithDetails(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) List(ctx context.Context, f repository.BookingFilter) ([]domain.Booking, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) HasConflict(ctx context.Context, roomID int64, checkIn, checkOut time.Time, excludeID int64) (bool, error) {
	args := m.Called(ctx, roomID, checkIn, checkOut, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) Save(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) SaveWithRoomStatus(ctx context.Context, b *domain.Booking, status domain.RoomStatus) error {
	args := m.Called(ctx, b, status)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, b *domain.Booking, releaseRoom bool) error {
	args := m.Called(ctx, b, releaseRoom)
	return args.Error(0)
}

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

type MockBookingServiceRepository struct {
	mock.Mock
}

func (m *MockBookingServiceRepository) Create(ctx context.Context, bs *domain.BookingService) error {
	args := m.Called(ctx, bs)
	if bs != nil {
		bs.ID = 555
	}
	return args.Error(0)
}

func (m *MockBookingServiceRepository) GetByID(ctx context.Context, id int64) (*domain.BookingService, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingService), args.Error(1)
}

func (m *MockBookingServiceRepository) List(ctx context.Context, f repository.BookingServiceFilter) ([]domain.BookingService, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookingService), args.Error(1)
}

func (m *MockBookingServiceRepository) Update(ctx context.Context, bs *domain.BookingService) error {
	args := m.Called(ctx, bs)
	return args.Error(0)
}

func (m *MockBookingServiceRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestService() (*Service, *MockBookingRepository, *MockRoomRepository, *MockServiceRepository, *MockBookingServiceRepository) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	services := new(MockServiceRepository)
	items := new(MockBookingServiceRepository)
	return NewService(bookings, rooms, services, items), bookings, rooms, services, items
}

func futureDate(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format(dateLayout)
}

func TestService_Create_Success(t *testing.T) {
	service, bookings, rooms, _, _ := newTestService()

	rooms.On("GetByID", mock.Anything, int64(10)).Return(&domain.Room{
		ID:         10,
		RoomTypeID: 2,
		Status:     domain.RoomAvailable,
		RoomType:   &domain.RoomType{ID: 2, TypeName: "Deluxe", BasePrice: 15000},
	}, nil)
	bookings.On("CreateReserving", mock.Anything, mock.Anything).Return(nil)
	bookings.On("GetByIDWithDetails", mock.Anything, int64(999)).Return(&domain.Booking{
		ID:          999,
		CustomerID:  7,
		RoomID:      10,
		TotalNights: 5,
		TotalAmount: 75000,
		Status:      domain.BookingPending,
	}, nil)

	req := CreateBookingRequest{
		RoomID:       10,
		CheckInDate:  futureDate(10),
		CheckOutDate: futureDate(15),
	}

	b, err := service.Create(context.Background(), 7, req)

	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.Equal(t, 5, b.TotalNights)
	assert.Equal(t, 75000.0, b.TotalAmount)
	assert.Equal(t, domain.BookingPending, b.Status)

	created := bookings.Calls[0].Arguments.Get(1).(*domain.Booking)
	assert.Equal(t, int64(7), created.CustomerID)
	assert.Equal(t, 5, created.TotalNights)
	assert.Equal(t, 75000.0, created.TotalAmount)
}

func TestService_Create_CheckOutBeforeCheckIn(t *testing.T) {
	service, _, _, _, _ := newTestService()

	req := CreateBookingRequest{
		RoomID:       10,
		CheckInDate:  futureDate(15),
		CheckOutDate: futureDate(10),
	}

	_, err := service.Create(context.Background(), 7, req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Create_CheckInInPast(t *testing.T) {
	service, _, _, _, _ := newTestService()

	req := CreateBookingRequest{
		RoomID:       10,
		CheckInDate:  futureDate(-2),
		CheckOutDate: futureDate(3),
	}

	_, err := service.Create(context.Background(), 7, req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Create_DateConflict(t *testing.T) {
	service, bookings, rooms, _, _ := newTestService()

	rooms.On("GetByID", mock.Anything, int64(10)).Return(&domain.Room{
		ID:       10,
		Status:   domain.RoomAvailable,
		RoomType: &domain.RoomType{BasePrice: 15000},
	}, nil)
	bookings.On("CreateReserving", mock.Anything, mock.Anything).Return(repository.ErrDateConflict)

	req := CreateBookingRequest{
		RoomID:       10,
		CheckInDate:  futureDate(10),
		CheckOutDate: futureDate(12),
	}

	_, err := service.Create(context.Background(), 7, req)
	assert.ErrorIs(t, err, ErrDateConflict)
}

func TestService_Create_RoomUnavailable(t *testing.T) {
	service, bookings, rooms, _, _ := newTestService()

	rooms.On("GetByID", mock.Anything, int64(10)).Return(&domain.Room{
		ID:       10,
		Status:   domain.RoomMaintenance,
		RoomType: &domain.RoomType{BasePrice: 15000},
	}, nil)
	bookings.On("CreateReserving", mock.Anything, mock.Anything).Return(repository.ErrRoomUnavailable)

	req := CreateBookingRequest{
		RoomID:       10,
		CheckInDate:  futureDate(10),
		CheckOutDate: futureDate(12),
	}

	_, err := service.Create(context.Background(), 7, req)
	assert.ErrorIs(t, err, ErrRoomUnavailable)
}

func TestService_Create_RoomNotFound(t *testing.T) {
	service, _, rooms, _, _ := newTestService()

	rooms.On("GetByID", mock.Anything, int64(10)).Return(nil, gorm.ErrRecordNotFound)

	req := CreateBookingRequest{
		RoomID:       10,
		CheckInDate:  futureDate(10),
		CheckOutDate: futureDate(12),
	}

	_, err := service.Create(context.Background(), 7, req)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Get_ForbiddenForOtherCustomer(t *testing.T) {
	service, bookings, _, _, _ := newTestService()

	bookings.On("GetByIDWithDetails", mock.Anything, int64(1)).Return(&domain.Booking{
		ID:         1,
		CustomerID: 7,
	}, nil)

	_, err := service.Get(context.Background(), 1, 8, domain.RoleCustomer)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Get_AdminSeesAny(t *testing.T) {
	service, bookings, _, _, _ := newTestService()

	bookings.On("GetByIDWithDetails", mock.Anything, int64(1)).Return(&domain.Booking{
		ID:         1,
		CustomerID: 7,
	}, nil)

	b, err := service.Get(context.Background(), 1, 2, domain.RoleAdmin)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), b.ID)
}

func TestService_Update_CustomerCancel(t *testing.T) {
	service, bookings, _, _, _ := newTestService()

	bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID:         1,
		CustomerID: 7,
		RoomID:     10,
		Status:     domain.BookingConfirmed,
	}, nil)
	bookings.On("SaveWithRoomStatus", mock.Anything, mock.Anything, domain.RoomAvailable).Return(nil)
	bookings.On("GetByIDWithDetails", mock.Anything, int64(1)).Return(&domain.Booking{
		ID:     1,
		Status: domain.BookingCancelled,
	}, nil)

	cancelled := string(domain.BookingCancelled)
	b, err := service.Update(context.Background(), 1, 7, domain.RoleCustomer, UpdateBookingRequest{Status: &cancelled})

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, b.Status)
	bookings.AssertExpectations(t)
}

func TestService_Update_CustomerCannotCancelCheckedIn(t *testing.T) {
	service, bookings, _, _, _ := newTestService()

	bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID:         1,
		CustomerID: 7,
		Status:     domain.BookingCheckedIn,
	}, nil)

	cancelled := string(domain.BookingCancelled)
	_, err := service.Update(context.Background(), 1, 7, domain.RoleCustomer, UpdateBookingRequest{Status: &cancelled})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestService_Update_CustomerCannotConfirm(t *testing.T) {
	service, bookings, _, _, _ := newTestService()

	bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID:         1,
		CustomerID: 7,
		Status:     domain.BookingPending,
	}, nil)

	confirmed := string(domain.BookingConfirmed)
	_, err := service.Update(context.Background(), 1, 7, domain.RoleCustomer, UpdateBookingRequest{Status: &confirmed})
	assert.ErrorIs(t, err, ErrStatusNotAllowed)
}

func TestService_Update_AdminMovesDates(t *testing.T) {
	service, bookings, rooms, _, _ := newTestService()

	bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID:         1,
		CustomerID: 7,
		RoomID:     10,
		Status:     domain.BookingConfirmed,
	}, nil)
	bookings.On("HasConflict", mock.Anything, int64(10), mock.Anything, mock.Anything, int64(1)).Return(false, nil)
	rooms.On("GetByID", mock.Anything, int64(10)).Return(&domain.Room{
		ID:       10,
		RoomType: &domain.RoomType{BasePrice: 20000},
	}, nil)
	bookings.On("Save", mock.Anything, mock.Anything).Return(nil)
	bookings.On("GetByIDWithDetails", mock.Anything, int64(1)).Return(&domain.Booking{ID: 1}, nil)

	checkIn := futureDate(20)
	checkOut := futureDate(23)
	_, err := service.Update(context.Background(), 1, 2, domain.RoleAdmin, UpdateBookingRequest{
		CheckInDate:  &checkIn,
		CheckOutDate: &checkOut,
	})

	assert.NoError(t, err)
	saved := bookings.Calls[len(bookings.Calls)-2].Arguments.Get(1).(*domain.Booking)
	assert.Equal(t, 3, saved.TotalNights)
	assert.Equal(t, 60000.0, saved.TotalAmount)
}

func TestService_Update_AdminDateConflict(t *testing.T) {
	service, bookings, _, _, _ := newTestService()

	bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID:         1,
		CustomerID: 7,
		RoomID:     10,
		Status:     domain.BookingConfirmed,
	}, nil)
	bookings.On("HasConflict", mock.Anything, int64(10), mock.Anything, mock.Anything, int64(1)).Return(true, nil)

	checkIn := futureDate(20)
	checkOut := futureDate(23)
	_, err := service.Update(context.Background(), 1, 2, domain.RoleAdmin, UpdateBookingRequest{
		CheckInDate:  &checkIn,
		CheckOutDate: &checkOut,
	})
	assert.ErrorIs(t, err, ErrDateConflict)
}

func TestService_Delete_OnlyPendingOrCancelled(t *testing.T) {
	service, bookings, _, _, _ := newTestService()

	bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID:         1,
		CustomerID: 7,
		Status:     domain.BookingConfirmed,
	}, nil)

	err := service.Delete(context.Background(), 1, 7, domain.RoleCustomer)
	assert.ErrorIs(t, err, ErrNotDeletable)
}

func TestService_Delete_PendingReleasesRoom(t *testing.T) {
	service, bookings, _, _, _ := newTestService()

	b := &domain.Booking{
		ID:         1,
		CustomerID: 7,
		RoomID:     10,
		Status:     domain.BookingPending,
	}
	bookings.On("GetByID", mock.Anything, int64(1)).Return(b, nil)
	bookings.On("Delete", mock.Anything, b, true).Return(nil)

	err := service.Delete(context.Background(), 1, 7, domain.RoleCustomer)
	assert.NoError(t, err)
	bookings.AssertExpectations(t)
}

func TestService_Delete_CancelledKeepsRoomStatus(t *testing.T) {
	service, bookings, _, _, _ := newTestService()

	b := &domain.Booking{
		ID:         1,
		CustomerID: 7,
		RoomID:     10,
		Status:     domain.BookingCancelled,
	}
	bookings.On("GetByID", mock.Anything, int64(1)).Return(b, nil)
	bookings.On("Delete", mock.Anything, b, false).Return(nil)

	err := service.Delete(context.Background(), 1, 7, domain.RoleCustomer)
	assert.NoError(t, err)
	bookings.AssertExpectations(t)
}

func TestService_AddService_SnapshotsUnitPrice(t *testing.T) {
	service, bookings, _, services, items := newTestService()

	bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID:         1,
		CustomerID: 7,
	}, nil)
	services.On("GetByID", mock.Anything, int64(3)).Return(&domain.Service{
		ID:       3,
		Price:    3500,
		IsActive: true,
	}, nil)
	items.On("Create", mock.Anything, mock.Anything).Return(nil)
	items.On("GetByID", mock.Anything, int64(555)).Return(&domain.BookingService{
		ID:         555,
		UnitPrice:  3500,
		TotalPrice: 7000,
		Status:     domain.ServiceRequested,
	}, nil)

	req := AddServiceRequest{
		BookingID:   1,
		ServiceID:   3,
		Quantity:    2,
		ServiceDate: futureDate(11),
	}

	item, err := service.AddService(context.Background(), 7, domain.RoleCustomer, req)

	assert.NoError(t, err)
	assert.Equal(t, 3500.0, item.UnitPrice)
	assert.Equal(t, 7000.0, item.TotalPrice)
	assert.Equal(t, domain.ServiceRequested, item.Status)
}

func TestService_AddService_InactiveService(t *testing.T) {
	service, bookings, _, services, _ := newTestService()

	bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID:         1,
		CustomerID: 7,
	}, nil)
	services.On("GetByID", mock.Anything, int64(3)).Return(&domain.Service{
		ID:       3,
		IsActive: false,
	}, nil)

	req := AddServiceRequest{
		BookingID:   1,
		ServiceID:   3,
		Quantity:    1,
		ServiceDate: futureDate(11),
	}

	_, err := service.AddService(context.Background(), 7, domain.RoleCustomer, req)
	assert.ErrorIs(t, err, ErrServiceInactive)
}

func TestService_UpdateServiceItem_LockedForCustomer(t *testing.T) {
	service, _, _, _, items := newTestService()

	items.On("GetByID", mock.Anything, int64(5)).Return(&domain.BookingService{
		ID:      5,
		Status:  domain.ServiceCompleted,
		Booking: &domain.Booking{CustomerID: 7},
	}, nil)

	qty := 3
	_, err := service.UpdateServiceItem(context.Background(), 5, 7, domain.RoleCustomer, UpdateServiceItemRequest{Quantity: &qty})
	assert.ErrorIs(t, err, ErrItemLocked)
}

func TestService_UpdateServiceItem_QuantityRecomputesTotal(t *testing.T) {
	service, _, _, _, items := newTestService()

	items.On("GetByID", mock.Anything, int64(5)).Return(&domain.BookingService{
		ID:        5,
		Quantity:  1,
		UnitPrice: 2000,
		Status:    domain.ServiceRequested,
		Booking:   &domain.Booking{CustomerID: 7},
	}, nil).Once()
	items.On("Update", mock.Anything, mock.Anything).Return(nil)
	items.On("GetByID", mock.Anything, int64(5)).Return(&domain.BookingService{
		ID:         5,
		Quantity:   3,
		TotalPrice: 6000,
	}, nil).Once()

	qty := 3
	item, err := service.UpdateServiceItem(context.Background(), 5, 7, domain.RoleCustomer, UpdateServiceItemRequest{Quantity: &qty})

	assert.NoError(t, err)
	assert.Equal(t, 6000.0, item.TotalPrice)

	updated := items.Calls[1].Arguments.Get(1).(*domain.BookingService)
	assert.Equal(t, 3, updated.Quantity)
	assert.Equal(t, 6000.0, updated.TotalPrice)
}

func TestService_DeleteServiceItem_CompletedStays(t *testing.T) {
	service, _, _, _, items := newTestService()

	items.On("GetByID", mock.Anything, int64(5)).Return(&domain.BookingService{
		ID:      5,
		Status:  domain.ServiceCompleted,
		Booking: &domain.Booking{CustomerID: 7},
	}, nil)

	err := service.DeleteServiceItem(context.Background(), 5, 7, domain.RoleCustomer)
	assert.ErrorIs(t, err, ErrItemCompleted)
}
