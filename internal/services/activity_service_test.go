package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aura/internal/models/request_models"
	"aura/internal/wellness"
	"aura/pkg/utils"
)

func TestCompleteActivity_DedicationBadgeOnFifth(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	_, err := env.store.GetOrCreate(ctx, testUser, placeholder(testUser))
	require.NoError(t, err)

	svc := NewActivityService(env.store, wellness.NewBadgeEvaluator(wellness.Catalog), env.rt)

	for i := 1; i <= 6; i++ {
		res, err := svc.CompleteActivity(ctx, testUser, request_models.CompleteActivityRequest{
			Activity:  fmt.Sprintf("activity %d", i),
			Sentiment: "positive",
		})
		require.NoError(t, err)
		assert.Equal(t, "Activity completed successfully", res.Message)
		assert.Len(t, res.CompletedActivities, i)

		if i == 5 {
			require.Len(t, res.NewBadges, 1)
			assert.Equal(t, "Dedication Master", res.NewBadges[0].Name)
		} else {
			assert.Empty(t, res.NewBadges)
		}

		stored, err := env.store.Get(ctx, testUser)
		require.NoError(t, err)
		if i < 5 {
			assert.Empty(t, stored.Badges)
		} else {
			assert.Len(t, stored.Badges, 1)
		}
	}
}

func TestCompleteActivity_CompletedAt(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	_, err := env.store.GetOrCreate(ctx, testUser, placeholder(testUser))
	require.NoError(t, err)
	svc := NewActivityService(env.store, wellness.NewBadgeEvaluator(wellness.Catalog), env.rt)

	res, err := svc.CompleteActivity(ctx, testUser, request_models.CompleteActivityRequest{
		Activity:    "yoga",
		CompletedAt: "2026-10-13T08:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-10-13T08:00:00Z", res.CompletedActivities[0].CompletedAt.UTC().Format("2006-01-02T15:04:05Z07:00"))

	_, err = svc.CompleteActivity(ctx, testUser, request_models.CompleteActivityRequest{Activity: "yoga", CompletedAt: "yesterday"})
	var verr *utils.ValidationError
	assert.ErrorAs(t, err, &verr)

	hist, err := svc.History(ctx, testUser)
	require.NoError(t, err)
	assert.Len(t, hist.CompletedActivities, 1)
}

func TestActivityHistory_MissingProfile(t *testing.T) {
	env := newTestEnv(t)
	svc := NewActivityService(env.store, wellness.NewBadgeEvaluator(wellness.Catalog), env.rt)

	_, err := svc.History(context.Background(), testUser)
	assert.ErrorIs(t, err, utils.ErrProfileNotFound)
}
