package appointment

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// ParseClock converts "H:MM", "HH:MM" or "HH:MM:SS" into minutes since
// midnight. "24:00" is accepted so a window may close at midnight.
func ParseClock(s string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}

	h, ok := clockPart(parts[0], 1, 24)
	if !ok {
		return 0, false
	}
	m, ok := clockPart(parts[1], 2, 59)
	if !ok {
		return 0, false
	}
	if len(parts) == 3 {
		if _, ok := clockPart(parts[2], 2, 59); !ok {
			return 0, false
		}
	}
	if h == 24 && m != 0 {
		return 0, false
	}

	return h*60 + m, true
}

func clockPart(s string, minLen, max int) (int, bool) {
	if len(s) < minLen || len(s) > 2 {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > max {
		return 0, false
	}
	return n, true
}

// NormalizeClock returns the canonical "HH:MM" form of a clock string.
func NormalizeClock(s string) (string, bool) {
	mins, ok := ParseClock(s)
	if !ok || mins >= 24*60 {
		return "", false
	}
	return FormatClock(mins), true
}

func FormatClock(mins int) string {
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}

// Weekday returns the lowercase English weekday name used as schedule key.
// It never depends on a display locale.
func Weekday(date time.Time) string {
	return strings.ToLower(date.Weekday().String())
}

// ParseDate parses a YYYY-MM-DD civil date into UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
}

// DateOnly drops the clock and location of t, keeping its civil date.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
