package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"aura/internal/models/db_models"
	"aura/internal/repositories"
	"aura/internal/wellness"
	mem "aura/pkg/memcache"
	"aura/pkg/utils"
)

func placeholder(userID string) func() *db_models.WellnessProfile {
	return func() *db_models.WellnessProfile { return wellness.PlaceholderProfile(userID) }
}

func TestProfileStore_MutateMissingProfile(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.store.Mutate(context.Background(), "u1", func(*db_models.WellnessProfile) error { return nil })
	assert.ErrorIs(t, err, utils.ErrProfileNotFound)
}

func TestProfileStore_GetOrCreateOnce(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	first, err := env.store.GetOrCreate(ctx, "u1", placeholder("u1"))
	require.NoError(t, err)
	second, err := env.store.GetOrCreate(ctx, "u1", placeholder("u1"))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "User", second.Name)
	assert.False(t, second.OnboardingCompleted)
}

func TestProfileStore_MutationErrorWritesNothing(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	_, err := env.store.GetOrCreate(ctx, "u1", placeholder("u1"))
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = env.store.Mutate(ctx, "u1", func(p *db_models.WellnessProfile) error {
		p.Name = "changed"
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := env.store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "User", got.Name)
	assert.EqualValues(t, 1, got.Version)
}

func TestProfileStore_ConcurrentWritesAreNotLost(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	_, err := env.store.GetOrCreate(ctx, "u1", placeholder("u1"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := env.store.Mutate(ctx, "u1", func(p *db_models.WellnessProfile) error {
				p.CompletedTasks = append(p.CompletedTasks, fmt.Sprintf("task-%d", i))
				return nil
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	got, err := env.store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, got.CompletedTasks, 10)
	assert.EqualValues(t, 11, got.Version)
}

// conflictingRepo fails the first n saves as if another process had won.
type conflictingRepo struct {
	repositories.ProfileRepository
	n     int
	saves int
}

func (r *conflictingRepo) Save(ctx context.Context, p *db_models.WellnessProfile) error {
	r.saves++
	if r.saves <= r.n {
		return utils.ErrVersionConflict
	}
	return r.ProfileRepository.Save(ctx, p)
}

func TestProfileStore_RetriesVersionConflicts(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	_, err := env.store.GetOrCreate(ctx, "u1", placeholder("u1"))
	require.NoError(t, err)

	repo := &conflictingRepo{ProfileRepository: env.profiles, n: 2}
	store := NewProfileStore(repo, mem.NewUserLocks(), zap.NewNop())

	calls := 0
	p, err := store.Mutate(ctx, "u1", func(p *db_models.WellnessProfile) error {
		calls++
		p.CompletedTasks = append(p.CompletedTasks, "walk")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []string{"walk"}, []string(p.CompletedTasks))
}

func TestProfileStore_GivesUpAfterMaxAttempts(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	_, err := env.store.GetOrCreate(ctx, "u1", placeholder("u1"))
	require.NoError(t, err)

	repo := &conflictingRepo{ProfileRepository: env.profiles, n: maxWriteAttempts}
	store := NewProfileStore(repo, mem.NewUserLocks(), zap.NewNop())

	_, err = store.Mutate(ctx, "u1", func(p *db_models.WellnessProfile) error {
		p.Name = "never"
		return nil
	})
	assert.ErrorIs(t, err, utils.ErrVersionConflict)
}
