// Package wellness holds the profile engine: day-keyed history ledgers,
// rolling statistics and the badge catalog. It is storage-agnostic and works
// on db_models values in memory; callers persist the result.
package wellness

import (
	"iter"
	"math"
	"slices"
	"time"

	"aura/internal/models/db_models"
	"aura/pkg/utils"
)

type Number interface {
	~int | ~float64
}

// DayValue is a ledger entry projected for reading.
type DayValue[V Number] struct {
	Date  string
	Value V
}

// Series describes one ledger kind: how to read an entry's date and value,
// how to build an entry, and which values are acceptable.
type Series[E any, V Number] struct {
	Field string
	date  func(E) time.Time
	value func(E) V
	build func(time.Time, V) E
	check func(V) string
}

var Steps = Series[db_models.StepEntry, int]{
	Field: "stepCount",
	date:  func(e db_models.StepEntry) time.Time { return e.Date },
	value: func(e db_models.StepEntry) int { return e.Count },
	build: func(d time.Time, v int) db_models.StepEntry { return db_models.StepEntry{Date: d, Count: v} },
	check: func(v int) string {
		if v < 0 {
			return "Invalid step count value"
		}
		return ""
	},
}

var Sleep = Series[db_models.SleepEntry, float64]{
	Field: "sleepDuration",
	date:  func(e db_models.SleepEntry) time.Time { return e.Date },
	value: func(e db_models.SleepEntry) float64 { return e.Duration },
	build: func(d time.Time, v float64) db_models.SleepEntry { return db_models.SleepEntry{Date: d, Duration: v} },
	check: func(v float64) string {
		if math.IsNaN(v) || v < 0 || v > 24 {
			return "Invalid sleep duration value"
		}
		return ""
	},
}

var Mood = Series[db_models.MoodEntry, int]{
	Field: "rating",
	date:  func(e db_models.MoodEntry) time.Time { return e.Date },
	value: func(e db_models.MoodEntry) int { return e.Rating },
	build: func(d time.Time, v int) db_models.MoodEntry { return db_models.MoodEntry{Date: d, Rating: v} },
	check: func(v int) string {
		if v < 1 || v > 5 {
			return "Invalid mood rating"
		}
		return ""
	},
}

// Validate checks v against the series constraint without touching any ledger.
func (s Series[E, V]) Validate(v V) error {
	if msg := s.check(v); msg != "" {
		return utils.NewValidationError(s.Field, msg)
	}
	return nil
}

// UpsertDayEntry writes v for the calendar day of date. An existing entry for
// that day is overwritten in place; otherwise a new entry is appended, so the
// stored order is insertion order, not chronological.
func (s Series[E, V]) UpsertDayEntry(entries []E, date time.Time, v V) ([]E, error) {
	if err := s.Validate(v); err != nil {
		return entries, err
	}

	day := utils.StartOfDay(date)
	for i, e := range entries {
		if utils.SameDay(day, s.date(e)) {
			entries[i] = s.build(day, v)
			return entries, nil
		}
	}
	return append(entries, s.build(day, v)), nil
}

// ReadWindow yields entries dated at or after since, ascending by date, with
// dates rendered as ISO calendar days in loc. Filtering and sorting happen on
// each iteration; the ledger itself is not reordered.
func (s Series[E, V]) ReadWindow(entries []E, since time.Time, loc *time.Location) iter.Seq[DayValue[V]] {
	return func(yield func(DayValue[V]) bool) {
		window := make([]E, 0, len(entries))
		for _, e := range entries {
			if !s.date(e).Before(since) {
				window = append(window, e)
			}
		}
		slices.SortStableFunc(window, func(a, b E) int {
			return s.date(a).Compare(s.date(b))
		})

		for _, e := range window {
			if !yield(DayValue[V]{Date: utils.FormatISODate(s.date(e), loc), Value: s.value(e)}) {
				return
			}
		}
	}
}

// Window collects ReadWindow into a slice; never nil.
func (s Series[E, V]) Window(entries []E, since time.Time, loc *time.Location) []DayValue[V] {
	out := make([]DayValue[V], 0)
	for dv := range s.ReadWindow(entries, since, loc) {
		out = append(out, dv)
	}
	return out
}
