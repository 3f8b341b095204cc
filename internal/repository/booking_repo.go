package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotelier/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// BookingFilter narrows List results; zero values mean "no filter".
type BookingFilter struct {
	CustomerID int64
	Status     string
	StartDate  time.Time
	EndDate    time.Time
}

// forUpdate adds a row lock on engines that support it. SQLite serializes
// writers on its own and rejects FOR UPDATE syntax.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// CreateReserving inserts the booking and flips the room to reserved in one
// transaction. The room row is locked first so two concurrent requests for
// the same room cannot both pass the conflict check and double-book it.
// Returns ErrRoomUnavailable or ErrDateConflict on business violations.
func (r *BookingRepository) CreateReserving(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room domain.Room
		if err := forUpdate(tx).First(&room, b.RoomID).Error; err != nil {
			return err
		}
		if room.Status != domain.RoomAvailable {
			return ErrRoomUnavailable
		}

		conflict, err := countConflicts(tx, b.RoomID, b.CheckInDate, b.CheckOutDate, 0)
		if err != nil {
			return err
		}
		if conflict > 0 {
			return ErrDateConflict
		}

		if err := tx.Omit(clause.Associations).Create(b).Error; err != nil {
			return err
		}

		return tx.Model(&domain.Room{}).
			Where("id = ?", b.RoomID).
			Update("status", domain.RoomReserved).Error
	})
}

// countConflicts uses the half-open interval test: an existing booking
// conflicts iff existing.check_in < new.check_out AND
// existing.check_out > new.check_in. Back-to-back stays (checkout day equal
// to the next checkin day) do not conflict. Cancelled bookings never hold
// the room.
func countConflicts(tx *gorm.DB, roomID int64, checkIn, checkOut time.Time, excludeID int64) (int64, error) {
	var cnt int64
	q := tx.Model(&domain.Booking{}).
		Where("room_id = ?", roomID).
		Where("status <> ?", domain.BookingCancelled).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&cnt).Error
	return cnt, err
}

// HasConflict runs the overlap test outside a transaction, excluding the
// booking itself when admins move dates on an existing booking.
func (r *BookingRepository) HasConflict(ctx context.Context, roomID int64, checkIn, checkOut time.Time, excludeID int64) (bool, error) {
	cnt, err := countConflicts(r.db.WithContext(ctx), roomID, checkIn, checkOut, excludeID)
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// GetByIDWithDetails preloads everything the show endpoint returns.
func (r *BookingRepository) GetByIDWithDetails(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Room.RoomType").
		Preload("Services.Service").
		Preload("Review").
		First(&b, id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) List(ctx context.Context, f BookingFilter) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).Preload("Customer").Preload("Room.RoomType")
	if f.CustomerID > 0 {
		q = q.Where("customer_id = ?", f.CustomerID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if !f.StartDate.IsZero() && !f.EndDate.IsZero() {
		q = q.Where(
			"(check_in_date BETWEEN ? AND ?) OR (check_out_date BETWEEN ? AND ?)",
			f.StartDate, f.EndDate, f.StartDate, f.EndDate,
		)
	}

	var bookings []domain.Booking
	if err := q.Order("id").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// SaveWithRoomStatus persists booking changes and the implied room status in
// one transaction, keeping the room in sync with the booking lifecycle.
func (r *BookingRepository) SaveWithRoomStatus(ctx context.Context, b *domain.Booking, status domain.RoomStatus) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(b).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Room{}).
			Where("id = ?", b.RoomID).
			Update("status", status).Error
	})
}

func (r *BookingRepository) Save(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(b).Error
}

// Delete removes the booking and its owned rows (service line items and
// review). When releaseRoom is set the room reverts to available in the same
// transaction.
func (r *BookingRepository) Delete(ctx context.Context, b *domain.Booking, releaseRoom bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("booking_id = ?", b.ID).Delete(&domain.BookingService{}).Error; err != nil {
			return err
		}
		if err := tx.Where("booking_id = ?", b.ID).Delete(&domain.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&domain.Booking{}, b.ID).Error; err != nil {
			return err
		}
		if releaseRoom {
			return tx.Model(&domain.Room{}).
				Where("id = ?", b.RoomID).
				Update("status", domain.RoomAvailable).Error
		}
		return nil
	})
}
