package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"hotelier/internal/domain"
	"hotelier/internal/repository"
)

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, r *domain.Review) error {
	args := m.Called(ctx, r)
	if r != nil {
		r.ID = 77
	}
	return args.Error(0)
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) List(ctx context.Context, f repository.ReviewFilter) ([]domain.Review, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockReviewRepository) ExistsForBooking(ctx context.Context, bookingID int64) (bool, error) {
	args := m.Called(ctx, bookingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewRepository) Update(ctx context.Context, r *domain.Review) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func TestService_Create_Success(t *testing.T) {
	reviews := new(MockReviewRepository)
	bookings := new(MockBookingRepository)
	service := NewService(reviews, bookings)

	bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID:         1,
		CustomerID: 7,
		Status:     domain.BookingCheckedOut,
	}, nil)
	reviews.On("ExistsForBooking", mock.Anything, int64(1)).Return(false, nil)
	reviews.On("Create", mock.Anything, mock.Anything).Return(nil)
	reviews.On("GetByID", mock.Anything, int64(77)).Return(&domain.Review{
		ID:        77,
		BookingID: 1,
		Rating:    5,
	}, nil)

	r, err := service.Create(context.Background(), 7, CreateReviewRequest{
		BookingID: 1,
		Rating:    5,
		Comment:   "Great stay",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(77), r.ID)

	created := reviews.Calls[1].Arguments.Get(1).(*domain.Review)
	assert.Equal(t, int64(7), created.CustomerID)
	assert.False(t, created.ReviewDate.IsZero())
}

func TestService_Create_NotCheckedOut(t *testing.T) {
	reviews := new(MockReviewRepository)
	bookings := new(MockBookingRepository)
	service := NewService(reviews, bookings)

	bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID:         1,
		CustomerID: 7,
		Status:     domain.BookingConfirmed,
	}, nil)

	_, err := service.Create(context.Background(), 7, CreateReviewRequest{BookingID: 1, Rating: 4})
	assert.ErrorIs(t, err, ErrNotCheckedOut)
}

func TestService_Create_NotBookingOwner(t *testing.T) {
	reviews := new(MockReviewRepository)
	bookings := new(MockBookingRepository)
	service := NewService(reviews, bookings)

	bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID:         1,
		CustomerID: 7,
		Status:     domain.BookingCheckedOut,
	}, nil)

	_, err := service.Create(context.Background(), 8, CreateReviewRequest{BookingID: 1, Rating: 4})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Create_Duplicate(t *testing.T) {
	reviews := new(MockReviewRepository)
	bookings := new(MockBookingRepository)
	service := NewService(reviews, bookings)

	bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID:         1,
		CustomerID: 7,
		Status:     domain.BookingCheckedOut,
	}, nil)
	reviews.On("ExistsForBooking", mock.Anything, int64(1)).Return(true, nil)

	_, err := service.Create(context.Background(), 7, CreateReviewRequest{BookingID: 1, Rating: 4})
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}

func TestService_Create_BookingMissing(t *testing.T) {
	reviews := new(MockReviewRepository)
	bookings := new(MockBookingRepository)
	service := NewService(reviews, bookings)

	bookings.On("GetByID", mock.Anything, int64(9)).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.Create(context.Background(), 7, CreateReviewRequest{BookingID: 9, Rating: 4})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_Update_OnlyAuthor(t *testing.T) {
	reviews := new(MockReviewRepository)
	service := NewService(reviews, new(MockBookingRepository))

	reviews.On("GetByID", mock.Anything, int64(77)).Return(&domain.Review{
		ID:         77,
		CustomerID: 7,
		Rating:     4,
	}, nil)

	rating := 2
	_, err := service.Update(context.Background(), 77, 8, UpdateReviewRequest{Rating: &rating})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Delete_AdminMayModerate(t *testing.T) {
	reviews := new(MockReviewRepository)
	service := NewService(reviews, new(MockBookingRepository))

	reviews.On("GetByID", mock.Anything, int64(77)).Return(&domain.Review{
		ID:         77,
		CustomerID: 7,
	}, nil)
	reviews.On("Delete", mock.Anything, int64(77)).Return(nil)

	err := service.Delete(context.Background(), 77, 2, domain.RoleAdmin)
	assert.NoError(t, err)
	reviews.AssertExpectations(t)
}

func TestService_Delete_StrangerForbidden(t *testing.T) {
	reviews := new(MockReviewRepository)
	service := NewService(reviews, new(MockBookingRepository))

	reviews.On("GetByID", mock.Anything, int64(77)).Return(&domain.Review{
		ID:         77,
		CustomerID: 7,
	}, nil)

	err := service.Delete(context.Background(), 77, 8, domain.RoleCustomer)
	assert.ErrorIs(t, err, ErrForbidden)
}
