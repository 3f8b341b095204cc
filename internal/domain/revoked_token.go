package domain

import "time"

// RevokedToken denylists an access token JTI after logout. Rows past their
// expiry are dead weight and are purged by cmd/token_cleanup.
type RevokedToken struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	JTI       string    `json:"jti" gorm:"column:jti;uniqueIndex;size:36"`
	UserID    int64     `json:"user_id" gorm:"index"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
