package auth

import "errors"

var (
	ErrUserExists         = errors.New("username or email already taken")
	ErrInvalidCredentials = errors.New("the provided credentials are incorrect")
)
