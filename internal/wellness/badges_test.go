package wellness

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aura/internal/models/db_models"
	"aura/pkg/utils"
)

func profileWithActivities(n int) *db_models.WellnessProfile {
	p := PlaceholderProfile("u1")
	for i := 0; i < n; i++ {
		p.CompletedActivities = append(p.CompletedActivities, db_models.CompletedActivity{
			Activity:    fmt.Sprintf("activity-%d", i),
			Sentiment:   "positive",
			CompletedAt: day(2025, 5, 1),
		})
	}
	return p
}

func TestEvaluate_DedicationAfterFifthActivity(t *testing.T) {
	ev := NewBadgeEvaluator(Catalog)
	now := day(2025, 5, 2)

	p := profileWithActivities(4)
	assert.Empty(t, ev.Evaluate(p, now))
	assert.Empty(t, p.Badges)

	p = profileWithActivities(5)
	awarded := ev.Evaluate(p, now)

	require.Len(t, awarded, 1)
	require.Len(t, p.Badges, 1)
	b := p.Badges[0]
	assert.Equal(t, BadgeDedication, b.Key)
	assert.Equal(t, "Dedication Master", b.Name)
	assert.Equal(t, now, b.EarnedAt)
	assert.False(t, b.Shared.Twitter)
	assert.False(t, b.Shared.LinkedIn)
	assert.NotEmpty(t, b.ID)
}

func TestEvaluate_Idempotent(t *testing.T) {
	ev := NewBadgeEvaluator(Catalog)
	p := profileWithActivities(5)

	ev.Evaluate(p, time.Now())
	again := ev.Evaluate(p, time.Now())

	assert.Empty(t, again)
	assert.Len(t, p.Badges, 1)

	p.CompletedActivities = append(p.CompletedActivities, db_models.CompletedActivity{Activity: "sixth"})
	ev.Evaluate(p, time.Now())
	assert.Len(t, p.Badges, 1)
}

func TestEvaluate_LegacyKeylessBadgeCounts(t *testing.T) {
	ev := NewBadgeEvaluator(Catalog)
	p := profileWithActivities(5)
	p.Badges = append(p.Badges, db_models.Badge{ID: "old", Name: "Dedication Master"})

	assert.Empty(t, ev.Evaluate(p, time.Now()))
	assert.Len(t, p.Badges, 1)
}

func TestMarkShared(t *testing.T) {
	p := PlaceholderProfile("u1")
	p.Badges = append(p.Badges, db_models.Badge{ID: "b1", Key: BadgeDedication})

	changed, err := MarkShared(p, "b1", db_models.PlatformTwitter)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, p.Badges[0].Shared.Twitter)
	assert.False(t, p.Badges[0].Shared.LinkedIn)

	changed, err = MarkShared(p, "b1", db_models.PlatformTwitter)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestMarkShared_Errors(t *testing.T) {
	p := PlaceholderProfile("u1")
	p.Badges = append(p.Badges, db_models.Badge{ID: "b1"})

	_, err := MarkShared(p, "missing", db_models.PlatformLinkedIn)
	assert.ErrorIs(t, err, utils.ErrBadgeNotFound)

	_, err = MarkShared(p, "b1", "myspace")
	var verr *utils.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.False(t, p.Badges[0].Shared.LinkedIn)
}
