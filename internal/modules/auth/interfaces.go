package auth

import (
	"context"
	"time"

	"hotelier/internal/domain"
)

// UserRepository defines the user storage operations the auth flow needs.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UsernameOrEmailTaken(ctx context.Context, username, email string, excludeID int64) (bool, error)
}

// TokenRevoker denylists access tokens on logout.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, userID int64, expiresAt time.Time) error
}
