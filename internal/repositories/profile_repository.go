package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"aura/internal/models/db_models"
	"aura/pkg/utils"
)

// ProfileRepository persists one WellnessProfile per user. Save compares the
// profile's Version with the stored one and bumps it on success; a mismatch
// writes nothing and returns utils.ErrVersionConflict.
type ProfileRepository interface {
	FindByUser(ctx context.Context, userID string) (*db_models.WellnessProfile, error)
	Create(ctx context.Context, profile *db_models.WellnessProfile) error
	Save(ctx context.Context, profile *db_models.WellnessProfile) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

func (r *profileRepository) FindByUser(ctx context.Context, userID string) (*db_models.WellnessProfile, error) {
	var profile db_models.WellnessProfile
	err := r.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &profile, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *db_models.WellnessProfile) error {
	if profile.Version == 0 {
		profile.Version = 1
	}

	err := r.db.WithContext(ctx).Create(profile).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.ErrVersionConflict
	}
	return err
}

func (r *profileRepository) Save(ctx context.Context, profile *db_models.WellnessProfile) error {
	expected := profile.Version
	profile.Version = expected + 1

	res := r.db.WithContext(ctx).
		Model(profile).
		Where("version = ?", expected).
		Select("*").
		Omit("ID", "CreatedAt", "DeletedAt").
		Updates(profile)

	if res.Error != nil {
		profile.Version = expected
		return res.Error
	}
	if res.RowsAffected == 0 {
		profile.Version = expected
		return utils.ErrVersionConflict
	}

	return nil
}
