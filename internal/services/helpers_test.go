package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"aura/internal/models/response_models"
	"aura/internal/repositories"
	"aura/internal/testutil"
	mem "aura/pkg/memcache"
	"aura/pkg/utils"
)

const testUser = "64b7f0c2a1b2c3d4e5f60718"

var testLoc = time.FixedZone("ICT", 7*3600)

type testEnv struct {
	profiles repositories.ProfileRepository
	checkIns repositories.CheckInRepository
	store    ProfileStore
	recs     *mem.Recommendations
	rt       Runtime
	now      *time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewSQLite(t)

	now := time.Date(2026, 10, 14, 15, 30, 0, 0, testLoc)
	env := &testEnv{
		profiles: repositories.NewProfileRepository(db),
		checkIns: repositories.NewCheckInRepository(db),
		recs:     mem.NewRecommendations(),
		now:      &now,
	}
	env.rt = Runtime{
		Clock:     func() time.Time { return *env.now },
		Location:  testLoc,
		Logger:    zap.NewNop(),
		AITimeout: 200 * time.Millisecond,
	}
	env.store = NewProfileStore(env.profiles, mem.NewUserLocks(), zap.NewNop())
	return env
}

// stubGen is a GenerativeClient returning canned output.
type stubGen struct {
	mu      sync.Mutex
	reply   string
	err     error
	block   bool
	prompts []string
	opts    []utils.GenerationOptions
}

func (s *stubGen) Generate(ctx context.Context, prompt string, opts utils.GenerationOptions) (string, error) {
	s.mu.Lock()
	s.prompts = append(s.prompts, prompt)
	s.opts = append(s.opts, opts)
	s.mu.Unlock()

	if s.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return s.reply, s.err
}

func (s *stubGen) Close() error { return nil }

type stubSentiment struct {
	label string
	err   error
}

func (s stubSentiment) Classify(context.Context, string) (string, error) {
	return s.label, s.err
}

type stubRecommender struct {
	set       response_models.RecommendationSet
	err       error
	gotMood   string
	gotText   string
	callCount int
}

func (s *stubRecommender) Recommend(_ context.Context, description, mood string) (response_models.RecommendationSet, error) {
	s.callCount++
	s.gotText, s.gotMood = description, mood
	return s.set, s.err
}
