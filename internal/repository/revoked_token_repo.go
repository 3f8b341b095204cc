package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"hotelier/internal/domain"
)

type RevokedTokenRepository struct {
	db *gorm.DB
}

func NewRevokedTokenRepository(db *gorm.DB) *RevokedTokenRepository {
	return &RevokedTokenRepository{db: db}
}

func (r *RevokedTokenRepository) Revoke(ctx context.Context, jti string, userID int64, expiresAt time.Time) error {
	return r.db.WithContext(ctx).Create(&domain.RevokedToken{
		JTI:       jti,
		UserID:    userID,
		ExpiresAt: expiresAt,
	}).Error
}

func (r *RevokedTokenRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.RevokedToken{}).
		Where("jti = ?", jti).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// PurgeExpired drops denylist rows whose tokens have expired anyway.
func (r *RevokedTokenRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&domain.RevokedToken{})
	return tx.RowsAffected, tx.Error
}
