package catalog

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrRoomTypeNameTaken = errors.New("room type name already taken")
	ErrRoomNumberTaken   = errors.New("room number already taken")
	ErrRoomTypeMissing   = errors.New("room type does not exist")
	ErrRoomTypeInUse     = errors.New("room type has rooms associated with it")
	ErrRoomInUse         = errors.New("room has bookings associated with it")
	ErrServiceInUse      = errors.New("service is used in bookings")
)
