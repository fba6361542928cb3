package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"aura/internal/models/db_models"
	"aura/internal/repositories"
	mem "aura/pkg/memcache"
	"aura/pkg/utils"
)

const maxWriteAttempts = 3

// ErrSkipSave lets a mutation report that it changed nothing, so the store
// returns the loaded profile without writing.
var ErrSkipSave = errors.New("skip save")

// ProfileStore is the only path by which services read or write profiles.
// Writes for one user are serialized in-process and version checked against
// the repository; a conflicting write is re-read and re-applied.
type ProfileStore interface {
	Get(ctx context.Context, userID string) (*db_models.WellnessProfile, error)
	GetOrCreate(ctx context.Context, userID string, newProfile func() *db_models.WellnessProfile) (*db_models.WellnessProfile, error)
	// Mutate applies fn to the stored profile and saves it. fn may run more
	// than once and must only touch the profile it is given.
	Mutate(ctx context.Context, userID string, fn func(p *db_models.WellnessProfile) error) (*db_models.WellnessProfile, error)
	// Upsert is Mutate, starting from newProfile when none is stored.
	Upsert(ctx context.Context, userID string, newProfile func() *db_models.WellnessProfile, fn func(p *db_models.WellnessProfile) error) (*db_models.WellnessProfile, error)
}

type profileStore struct {
	repo  repositories.ProfileRepository
	locks *mem.UserLocks
	log   *zap.Logger
}

func NewProfileStore(repo repositories.ProfileRepository, locks *mem.UserLocks, log *zap.Logger) ProfileStore {
	return &profileStore{repo: repo, locks: locks, log: log}
}

func (s *profileStore) Get(ctx context.Context, userID string) (*db_models.WellnessProfile, error) {
	p, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, utils.DBError("find profile", err)
	}
	if p == nil {
		return nil, utils.ErrProfileNotFound
	}
	return p, nil
}

func (s *profileStore) GetOrCreate(ctx context.Context, userID string, newProfile func() *db_models.WellnessProfile) (*db_models.WellnessProfile, error) {
	if p, err := s.repo.FindByUser(ctx, userID); err != nil || p != nil {
		if err != nil {
			return nil, utils.DBError("find profile", err)
		}
		return p, nil
	}

	return s.write(ctx, userID, newProfile, func(*db_models.WellnessProfile) error { return ErrSkipSave })
}

func (s *profileStore) Mutate(ctx context.Context, userID string, fn func(p *db_models.WellnessProfile) error) (*db_models.WellnessProfile, error) {
	return s.write(ctx, userID, nil, fn)
}

func (s *profileStore) Upsert(ctx context.Context, userID string, newProfile func() *db_models.WellnessProfile, fn func(p *db_models.WellnessProfile) error) (*db_models.WellnessProfile, error) {
	return s.write(ctx, userID, newProfile, fn)
}

func (s *profileStore) write(
	ctx context.Context,
	userID string,
	newProfile func() *db_models.WellnessProfile,
	fn func(p *db_models.WellnessProfile) error,
) (*db_models.WellnessProfile, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	var lastErr error
	for attempt := 1; attempt <= maxWriteAttempts; attempt++ {
		p, err := s.repo.FindByUser(ctx, userID)
		if err != nil {
			return nil, utils.DBError("find profile", err)
		}

		creating := p == nil
		if creating {
			if newProfile == nil {
				return nil, utils.ErrProfileNotFound
			}
			p = newProfile()
			p.UserID = userID
		}

		err = fn(p)
		switch {
		case errors.Is(err, ErrSkipSave):
			if !creating {
				return p, nil
			}
		case err != nil:
			return nil, err
		}

		if creating {
			err = s.repo.Create(ctx, p)
		} else {
			err = s.repo.Save(ctx, p)
		}
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, utils.ErrVersionConflict) {
			return nil, utils.DBError("save profile", err)
		}

		lastErr = err
		s.log.Debug("profile write conflict, retrying",
			zap.String("user_id", userID),
			zap.Int("attempt", attempt))
	}

	s.log.Warn("profile write conflict persisted", zap.String("user_id", userID))
	return nil, lastErr
}
