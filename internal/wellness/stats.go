package wellness

import (
	"math"
	"time"

	"aura/internal/models/db_models"
)

// WindowDays is the length of the rolling dashboard window.
const WindowDays = 7

// CheckInSampleSize bounds how many recent check-ins feed the mood average.
const CheckInSampleSize = 30

type Stats struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

// WindowStart is now minus WindowDays, keeping now's time of day.
func WindowStart(now time.Time) time.Time {
	return now.AddDate(0, 0, -WindowDays)
}

// Round2 rounds half away from zero to two decimals.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func average(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return Round2(sum / float64(n))
}

// WindowStats averages the entries of the last WindowDays days before now.
func (s Series[E, V]) WindowStats(entries []E, now time.Time) Stats {
	since := WindowStart(now)

	var sum float64
	var n int
	for _, e := range entries {
		if s.date(e).Before(since) {
			continue
		}
		sum += float64(s.value(e))
		n++
	}
	return Stats{Count: n, Average: average(sum, n)}
}

// CheckInMoodStats averages the mood of at most CheckInSampleSize check-ins.
// checkIns are expected newest first, as the store returns them.
func CheckInMoodStats(checkIns []db_models.CheckIn) Stats {
	if len(checkIns) > CheckInSampleSize {
		checkIns = checkIns[:CheckInSampleSize]
	}

	var sum float64
	for _, c := range checkIns {
		sum += float64(c.Mood)
	}
	return Stats{Count: len(checkIns), Average: average(sum, len(checkIns))}
}
