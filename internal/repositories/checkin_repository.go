package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"aura/internal/models/db_models"
)

type CheckInRepository interface {
	Create(ctx context.Context, checkIn *db_models.CheckIn) error
	// ListRecent returns at most limit check-ins, newest first.
	ListRecent(ctx context.Context, userID string, limit int) ([]db_models.CheckIn, error)
	Latest(ctx context.Context, userID string) (*db_models.CheckIn, error)
}

type checkInRepository struct {
	db *gorm.DB
}

func NewCheckInRepository(db *gorm.DB) CheckInRepository {
	return &checkInRepository{
		db: db,
	}
}

func (r *checkInRepository) Create(ctx context.Context, checkIn *db_models.CheckIn) error {
	return r.db.WithContext(ctx).Create(checkIn).Error
}

func (r *checkInRepository) ListRecent(ctx context.Context, userID string, limit int) ([]db_models.CheckIn, error) {
	checkIns := make([]db_models.CheckIn, 0, limit)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("logged_at DESC").
		Limit(limit).
		Find(&checkIns).Error

	if err != nil {
		return nil, err
	}
	return checkIns, nil
}

func (r *checkInRepository) Latest(ctx context.Context, userID string) (*db_models.CheckIn, error) {
	var checkIn db_models.CheckIn
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("logged_at DESC").
		First(&checkIn).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &checkIn, nil
}
