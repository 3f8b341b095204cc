package booking

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrNotFound         = errors.New("booking not found")
	ErrForbidden        = errors.New("forbidden")
	ErrRoomUnavailable  = errors.New("room is not available for booking")
	ErrDateConflict     = errors.New("room is already booked for the requested dates")
	ErrCannotCancel     = errors.New("cannot cancel a checked-in or checked-out booking")
	ErrNotDeletable     = errors.New("only pending or cancelled bookings can be deleted")
	ErrStatusNotAllowed = errors.New("status not allowed for this role")
	ErrServiceNotFound  = errors.New("service not found")
	ErrServiceInactive  = errors.New("service is not available")
	ErrItemLocked       = errors.New("service item is completed or cancelled")
	ErrItemCompleted    = errors.New("service item is completed")
)
