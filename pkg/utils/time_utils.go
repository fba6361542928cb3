package utils

import "time"

const ISODate = "2006-01-02"

// Clock returns the current time. Services take one so tests can pin "now".
type Clock func() time.Time

// SystemClock reports wall-clock time in loc.
func SystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return func() time.Time { return time.Now().In(loc) }
}

// StartOfDay truncates t to midnight in t's own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day in a's location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// FormatISODate renders the calendar date of t in loc, without a time part.
// Returns "" for the zero time to let callers decide how to render.
func FormatISODate(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(ISODate)
}

// ParseClientTime accepts RFC3339 timestamps (with or without fractional
// seconds) and bare ISO dates interpreted in loc.
func ParseClientTime(raw string, loc *time.Location) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t, true
	}
	if loc == nil {
		loc = time.Local
	}
	if t, err := time.ParseInLocation(ISODate, raw, loc); err == nil {
		return t, true
	}
	return time.Time{}, false
}
