package review

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"hotelier/internal/domain"
	"hotelier/internal/repository"
)

// Service handles guest reviews. A booking can be reviewed once, by its
// customer, after check-out.
type Service struct {
	reviews  ReviewRepository
	bookings BookingRepository
}

func NewService(reviews ReviewRepository, bookings BookingRepository) *Service {
	return &Service{reviews: reviews, bookings: bookings}
}

func (s *Service) Create(ctx context.Context, customerID int64, req CreateReviewRequest) (*domain.Review, error) {
	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if b.CustomerID != customerID {
		return nil, ErrForbidden
	}
	if b.Status != domain.BookingCheckedOut {
		return nil, ErrNotCheckedOut
	}

	exists, err := s.reviews.ExistsForBooking(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyReviewed
	}

	now := time.Now().UTC()
	r := &domain.Review{
		CustomerID: customerID,
		BookingID:  b.ID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		ReviewDate: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
	}
	if err := s.reviews.Create(ctx, r); err != nil {
		if errors.Is(err, repository.ErrDuplicateReview) {
			return nil, ErrAlreadyReviewed
		}
		return nil, err
	}
	return s.reviews.GetByID(ctx, r.ID)
}

func (s *Service) List(ctx context.Context, f repository.ReviewFilter) ([]domain.Review, error) {
	return s.reviews.List(ctx, f)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Review, error) {
	r, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return r, nil
}

// Update lets the author revise their rating or comment.
func (s *Service) Update(ctx context.Context, id, userID int64, req UpdateReviewRequest) (*domain.Review, error) {
	r, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if r.CustomerID != userID {
		return nil, ErrForbidden
	}

	if req.Rating != nil {
		r.Rating = *req.Rating
	}
	if req.Comment != nil {
		r.Comment = *req.Comment
	}

	if err := s.reviews.Update(ctx, r); err != nil {
		return nil, err
	}
	return s.reviews.GetByID(ctx, r.ID)
}

// Delete removes a review. The author or an admin may do it.
func (s *Service) Delete(ctx context.Context, id, userID int64, role domain.UserRole) error {
	r, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if role != domain.RoleAdmin && r.CustomerID != userID {
		return ErrForbidden
	}
	return s.reviews.Delete(ctx, id)
}
