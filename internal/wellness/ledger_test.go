package wellness

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aura/internal/models/db_models"
	"aura/pkg/utils"
)

var testLoc = time.FixedZone("ICT", 7*3600)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, testLoc)
}

func TestUpsertDayEntry_SameDayOverwrites(t *testing.T) {
	var mood []db_models.MoodEntry

	mood, err := Mood.UpsertDayEntry(mood, time.Date(2025, 5, 1, 8, 30, 0, 0, testLoc), 3)
	require.NoError(t, err)
	mood, err = Mood.UpsertDayEntry(mood, time.Date(2025, 5, 1, 21, 0, 0, 0, testLoc), 5)
	require.NoError(t, err)

	require.Len(t, mood, 1)
	assert.Equal(t, 5, mood[0].Rating)
	assert.Equal(t, day(2025, 5, 1), mood[0].Date)
}

func TestUpsertDayEntry_NewDayAppends(t *testing.T) {
	steps := []db_models.StepEntry{{Date: day(2025, 5, 3), Count: 100}}

	steps, err := Steps.UpsertDayEntry(steps, day(2025, 5, 1), 200)
	require.NoError(t, err)

	require.Len(t, steps, 2)
	// appended, not inserted in date order
	assert.Equal(t, day(2025, 5, 1), steps[1].Date)
}

func TestUpsertDayEntry_ConstraintViolationLeavesLedger(t *testing.T) {
	cases := []struct {
		name string
		run  func() (int, error)
	}{
		{"negative steps", func() (int, error) {
			out, err := Steps.UpsertDayEntry([]db_models.StepEntry{}, day(2025, 5, 1), -1)
			return len(out), err
		}},
		{"sleep over 24h", func() (int, error) {
			out, err := Sleep.UpsertDayEntry([]db_models.SleepEntry{}, day(2025, 5, 1), 24.5)
			return len(out), err
		}},
		{"mood below 1", func() (int, error) {
			out, err := Mood.UpsertDayEntry([]db_models.MoodEntry{}, day(2025, 5, 1), 0)
			return len(out), err
		}},
		{"mood above 5", func() (int, error) {
			out, err := Mood.UpsertDayEntry([]db_models.MoodEntry{}, day(2025, 5, 1), 6)
			return len(out), err
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := tc.run()
			var verr *utils.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Zero(t, n)
		})
	}
}

func TestSleepBoundsInclusive(t *testing.T) {
	assert.NoError(t, Sleep.Validate(0))
	assert.NoError(t, Sleep.Validate(24))
	assert.NoError(t, Steps.Validate(0))
	assert.NoError(t, Mood.Validate(1))
	assert.NoError(t, Mood.Validate(5))
}

func TestReadWindow_FiltersAndSorts(t *testing.T) {
	entries := []db_models.SleepEntry{
		{Date: day(2025, 5, 9), Duration: 6},
		{Date: day(2025, 4, 20), Duration: 9},
		{Date: day(2025, 5, 5), Duration: 7.5},
		{Date: day(2025, 5, 7), Duration: 8},
	}
	since := day(2025, 5, 5)

	got := Sleep.Window(entries, since, testLoc)

	assert.Equal(t, []DayValue[float64]{
		{Date: "2025-05-05", Value: 7.5},
		{Date: "2025-05-07", Value: 8},
		{Date: "2025-05-09", Value: 6},
	}, got)
	// storage order untouched
	assert.Equal(t, day(2025, 5, 9), entries[0].Date)
}

func TestReadWindow_Restartable(t *testing.T) {
	entries := []db_models.StepEntry{
		{Date: day(2025, 5, 2), Count: 2},
		{Date: day(2025, 5, 1), Count: 1},
	}
	seq := Steps.ReadWindow(entries, day(2025, 5, 1), testLoc)

	first := slices.Collect(seq)
	second := slices.Collect(seq)

	assert.Equal(t, first, second)
	assert.Len(t, first, 2)
	assert.Equal(t, 1, first[0].Value)
}

func TestReadWindow_StopsEarly(t *testing.T) {
	entries := []db_models.MoodEntry{
		{Date: day(2025, 5, 1), Rating: 1},
		{Date: day(2025, 5, 2), Rating: 2},
		{Date: day(2025, 5, 3), Rating: 3},
	}

	var seen []int
	for dv := range Mood.ReadWindow(entries, day(2025, 4, 1), testLoc) {
		seen = append(seen, dv.Value)
		if len(seen) == 2 {
			break
		}
	}

	assert.Equal(t, []int{1, 2}, seen)
}

func TestWindow_EmptyIsNotNil(t *testing.T) {
	got := Steps.Window(nil, day(2025, 5, 1), testLoc)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestWindow_SevenDayBoundary(t *testing.T) {
	entries := []db_models.MoodEntry{
		{Date: day(2025, 5, 3), Rating: 2},
		{Date: day(2025, 5, 9), Rating: 4},
	}

	atMidnight := day(2025, 5, 10)
	assert.Len(t, Mood.Window(entries, WindowStart(atMidnight), testLoc), 2)
	assert.Equal(t, Stats{Count: 2, Average: 3}, Mood.WindowStats(entries, atMidnight))

	justAfter := atMidnight.Add(time.Second)
	got := Mood.Window(entries, WindowStart(justAfter), testLoc)
	require.Len(t, got, 1)
	assert.Equal(t, "2025-05-09", got[0].Date)
	assert.Equal(t, Stats{Count: 1, Average: 4}, Mood.WindowStats(entries, justAfter))
}
