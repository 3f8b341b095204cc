package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hotelier/internal/database"
	"hotelier/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedRoom(t *testing.T, db *gorm.DB, status domain.RoomStatus) (*domain.User, *domain.Room) {
	t.Helper()
	user := &domain.User{
		Username:     "guest",
		Email:        "guest@mail.kz",
		PasswordHash: "x",
		Role:         domain.RoleCustomer,
	}
	require.NoError(t, db.Create(user).Error)

	rt := &domain.RoomType{TypeName: "Standard", BasePrice: 15000, MaxOccupancy: 2}
	require.NoError(t, db.Create(rt).Error)

	room := &domain.Room{RoomNumber: "101", RoomTypeID: rt.ID, Status: status, Floor: 1}
	require.NoError(t, db.Create(room).Error)
	return user, room
}

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func TestBookingRepository_CreateReserving_FlipsRoomStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepository(db)
	user, room := seedRoom(t, db, domain.RoomAvailable)

	b := &domain.Booking{
		CustomerID:   user.ID,
		RoomID:       room.ID,
		CheckInDate:  d(2026, 9, 10),
		CheckOutDate: d(2026, 9, 15),
		TotalNights:  5,
		TotalAmount:  75000,
		Status:       domain.BookingPending,
		BookingDate:  d(2026, 9, 1),
	}
	require.NoError(t, repo.CreateReserving(context.Background(), b))
	assert.NotZero(t, b.ID)

	var got domain.Room
	require.NoError(t, db.First(&got, room.ID).Error)
	assert.Equal(t, domain.RoomReserved, got.Status)
}

func TestBookingRepository_CreateReserving_RoomNotAvailable(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepository(db)
	user, room := seedRoom(t, db, domain.RoomMaintenance)

	b := &domain.Booking{
		CustomerID:   user.ID,
		RoomID:       room.ID,
		CheckInDate:  d(2026, 9, 10),
		CheckOutDate: d(2026, 9, 15),
	}
	err := repo.CreateReserving(context.Background(), b)
	assert.ErrorIs(t, err, ErrRoomUnavailable)

	var cnt int64
	db.Model(&domain.Booking{}).Count(&cnt)
	assert.Zero(t, cnt)
}

func TestBookingRepository_CreateReserving_OverlapRejected(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepository(db)
	user, room := seedRoom(t, db, domain.RoomAvailable)

	first := &domain.Booking{
		CustomerID:   user.ID,
		RoomID:       room.ID,
		CheckInDate:  d(2026, 9, 10),
		CheckOutDate: d(2026, 9, 15),
		Status:       domain.BookingConfirmed,
	}
	require.NoError(t, db.Create(first).Error)

	overlap := &domain.Booking{
		CustomerID:   user.ID,
		RoomID:       room.ID,
		CheckInDate:  d(2026, 9, 14),
		CheckOutDate: d(2026, 9, 16),
	}
	err := repo.CreateReserving(context.Background(), overlap)
	assert.ErrorIs(t, err, ErrDateConflict)
}

func TestBookingRepository_CreateReserving_BackToBackAllowed(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepository(db)
	user, room := seedRoom(t, db, domain.RoomAvailable)

	first := &domain.Booking{
		CustomerID:   user.ID,
		RoomID:       room.ID,
		CheckInDate:  d(2026, 9, 10),
		CheckOutDate: d(2026, 9, 15),
		Status:       domain.BookingConfirmed,
	}
	require.NoError(t, db.Create(first).Error)

	// check-in on the previous guest's check-out day
	adjacent := &domain.Booking{
		CustomerID:   user.ID,
		RoomID:       room.ID,
		CheckInDate:  d(2026, 9, 15),
		CheckOutDate: d(2026, 9, 18),
	}
	assert.NoError(t, repo.CreateReserving(context.Background(), adjacent))
}

func TestBookingRepository_CreateReserving_CancelledDoesNotBlock(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepository(db)
	user, room := seedRoom(t, db, domain.RoomAvailable)

	cancelled := &domain.Booking{
		CustomerID:   user.ID,
		RoomID:       room.ID,
		CheckInDate:  d(2026, 9, 10),
		CheckOutDate: d(2026, 9, 15),
		Status:       domain.BookingCancelled,
	}
	require.NoError(t, db.Create(cancelled).Error)

	b := &domain.Booking{
		CustomerID:   user.ID,
		RoomID:       room.ID,
		CheckInDate:  d(2026, 9, 12),
		CheckOutDate: d(2026, 9, 14),
	}
	assert.NoError(t, repo.CreateReserving(context.Background(), b))
}

func TestBookingRepository_HasConflict_ExcludesSelf(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepository(db)
	user, room := seedRoom(t, db, domain.RoomAvailable)

	b := &domain.Booking{
		CustomerID:   user.ID,
		RoomID:       room.ID,
		CheckInDate:  d(2026, 9, 10),
		CheckOutDate: d(2026, 9, 15),
		Status:       domain.BookingConfirmed,
	}
	require.NoError(t, db.Create(b).Error)

	// moving the same booking by a day conflicts only with itself
	conflict, err := repo.HasConflict(context.Background(), room.ID, d(2026, 9, 11), d(2026, 9, 16), b.ID)
	require.NoError(t, err)
	assert.False(t, conflict)

	conflict, err = repo.HasConflict(context.Background(), room.ID, d(2026, 9, 11), d(2026, 9, 16), 0)
	require.NoError(t, err)
	assert.True(t, conflict)
}

func TestBookingRepository_SaveWithRoomStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepository(db)
	user, room := seedRoom(t, db, domain.RoomReserved)

	b := &domain.Booking{
		CustomerID:   user.ID,
		RoomID:       room.ID,
		CheckInDate:  d(2026, 9, 10),
		CheckOutDate: d(2026, 9, 15),
		Status:       domain.BookingConfirmed,
	}
	require.NoError(t, db.Create(b).Error)

	b.Status = domain.BookingCheckedIn
	require.NoError(t, repo.SaveWithRoomStatus(context.Background(), b, domain.RoomOccupied))

	var gotRoom domain.Room
	require.NoError(t, db.First(&gotRoom, room.ID).Error)
	assert.Equal(t, domain.RoomOccupied, gotRoom.Status)

	var gotBooking domain.Booking
	require.NoError(t, db.First(&gotBooking, b.ID).Error)
	assert.Equal(t, domain.BookingCheckedIn, gotBooking.Status)
}

func TestBookingRepository_Delete_ReleasesRoomAndOwnedRows(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepository(db)
	user, room := seedRoom(t, db, domain.RoomReserved)

	b := &domain.Booking{
		CustomerID:   user.ID,
		RoomID:       room.ID,
		CheckInDate:  d(2026, 9, 10),
		CheckOutDate: d(2026, 9, 15),
		Status:       domain.BookingPending,
	}
	require.NoError(t, db.Create(b).Error)

	svc := &domain.Service{ServiceName: "Breakfast", Price: 3500, Category: domain.CategoryFood, IsActive: true}
	require.NoError(t, db.Create(svc).Error)
	require.NoError(t, db.Create(&domain.BookingService{
		BookingID: b.ID, ServiceID: svc.ID, Quantity: 1, UnitPrice: 3500, TotalPrice: 3500,
		ServiceDate: d(2026, 9, 11), Status: domain.ServiceRequested,
	}).Error)

	require.NoError(t, repo.Delete(context.Background(), b, true))

	var cnt int64
	db.Model(&domain.Booking{}).Count(&cnt)
	assert.Zero(t, cnt)
	db.Model(&domain.BookingService{}).Count(&cnt)
	assert.Zero(t, cnt)

	var gotRoom domain.Room
	require.NoError(t, db.First(&gotRoom, room.ID).Error)
	assert.Equal(t, domain.RoomAvailable, gotRoom.Status)
}

func TestBookingRepository_List_Filters(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepository(db)
	user, room := seedRoom(t, db, domain.RoomAvailable)

	other := &domain.User{Username: "other", Email: "other@mail.kz", PasswordHash: "x", Role: domain.RoleCustomer}
	require.NoError(t, db.Create(other).Error)

	require.NoError(t, db.Create(&domain.Booking{
		CustomerID: user.ID, RoomID: room.ID,
		CheckInDate: d(2026, 9, 10), CheckOutDate: d(2026, 9, 12),
		Status: domain.BookingConfirmed,
	}).Error)
	require.NoError(t, db.Create(&domain.Booking{
		CustomerID: other.ID, RoomID: room.ID,
		CheckInDate: d(2026, 10, 1), CheckOutDate: d(2026, 10, 3),
		Status: domain.BookingPending,
	}).Error)

	mine, err := repo.List(context.Background(), BookingFilter{CustomerID: user.ID})
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	pending, err := repo.List(context.Background(), BookingFilter{Status: string(domain.BookingPending)})
	require.NoError(t, err)
	assert.Len(t, pending, 1)
	assert.Equal(t, other.ID, pending[0].CustomerID)

	september, err := repo.List(context.Background(), BookingFilter{
		StartDate: d(2026, 9, 1), EndDate: d(2026, 9, 30),
	})
	require.NoError(t, err)
	assert.Len(t, september, 1)
}
