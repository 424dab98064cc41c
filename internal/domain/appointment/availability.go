package appointment

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// span is a validated active window, in minutes since midnight.
type span struct {
	start int
	end   int
}

// windowsFor returns the active, well-formed windows of the doctor for the
// weekday of date. Windows with missing or malformed times are skipped.
func windowsFor(doctor *models.Doctor, date time.Time) []span {
	if doctor == nil {
		return nil
	}

	day := Weekday(date)
	var out []span
	for _, w := range doctor.Schedules {
		if !w.IsActive || !strings.EqualFold(strings.TrimSpace(w.DayOfWeek), day) {
			continue
		}
		start, ok1 := ParseClock(w.StartTime)
		end, ok2 := ParseClock(w.EndTime)
		if !ok1 || !ok2 || start >= end {
			continue
		}
		out = append(out, span{start: start, end: end})
	}
	return out
}

func hasActiveWindow(doctor *models.Doctor) bool {
	if doctor == nil {
		return false
	}
	for _, w := range doctor.Schedules {
		if w.IsActive {
			return true
		}
	}
	return false
}

// IsAvailable reports whether the doctor's weekly schedule covers the slot
// time on date. Windows are half-open: a slot equal to end_time is outside.
func IsAvailable(doctor *models.Doctor, date time.Time, slot string) bool {
	at, ok := ParseClock(slot)
	if !ok {
		return false
	}

	for _, w := range windowsFor(doctor, date) {
		if w.start <= at && at < w.end {
			return true
		}
	}
	return false
}
