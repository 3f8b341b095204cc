package user

import "errors"

var (
	ErrNotFound   = errors.New("user not found")
	ErrUserExists = errors.New("username or email already taken")
)
