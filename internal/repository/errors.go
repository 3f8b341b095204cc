package repository

import "errors"

// Storage-level business violations raised inside transactional paths.
// Services translate these into their own sentinels.
var (
	ErrRoomUnavailable = errors.New("room is not available")
	ErrDateConflict    = errors.New("room is already booked for the requested dates")
	ErrDuplicateReview = errors.New("review already exists for this booking")
)
