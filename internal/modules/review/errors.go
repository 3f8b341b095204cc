package review

import "errors"

var (
	ErrNotFound        = errors.New("review not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrForbidden       = errors.New("forbidden")
	ErrNotCheckedOut   = errors.New("booking has not been checked out")
	ErrAlreadyReviewed = errors.New("review already exists for this booking")
)
