package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	in := time.Date(2025, 3, 9, 23, 59, 59, 999, loc)

	got := StartOfDay(in)

	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}

func TestSameDay(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	a := time.Date(2025, 3, 9, 1, 0, 0, 0, loc)

	assert.True(t, SameDay(a, time.Date(2025, 3, 9, 22, 0, 0, 0, loc)))
	// 2025-03-08T20:00Z is 2025-03-09T03:00 in ICT
	assert.True(t, SameDay(a, time.Date(2025, 3, 8, 20, 0, 0, 0, time.UTC)))
	assert.False(t, SameDay(a, time.Date(2025, 3, 10, 0, 0, 0, 0, loc)))
}

func TestFormatISODate(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	midnight := time.Date(2025, 3, 9, 0, 0, 0, 0, loc)

	assert.Equal(t, "2025-03-09", FormatISODate(midnight, loc))
	assert.Equal(t, "2025-03-08", FormatISODate(midnight, time.UTC))
	assert.Equal(t, "", FormatISODate(time.Time{}, loc))
}

func TestParseClientTime(t *testing.T) {
	got, ok := ParseClientTime("2025-03-09T10:11:12.345Z", nil)
	require.True(t, ok)
	assert.Equal(t, 345000000, got.Nanosecond())

	got, ok = ParseClientTime("2025-03-09", time.UTC)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), got)

	_, ok = ParseClientTime("yesterday", time.UTC)
	assert.False(t, ok)
}
