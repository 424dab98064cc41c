package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func TestIsAvailable_NoSchedule(t *testing.T) {
	assert.False(t, IsAvailable(nil, monday, "09:00"))
	assert.False(t, IsAvailable(doctorWith(), monday, "09:00"))
	assert.False(t, IsAvailable(&models.Doctor{ID: 2}, tuesday, "13:00"))
}

func TestIsAvailable_HalfOpenBoundary(t *testing.T) {
	doc := doctorWith(window("monday", "09:00", "12:00"))

	assert.True(t, IsAvailable(doc, monday, "09:00"))
	assert.True(t, IsAvailable(doc, monday, "11:00"))
	assert.False(t, IsAvailable(doc, monday, "12:00"))
	assert.False(t, IsAvailable(doc, monday, "08:00"))
}

func TestIsAvailable_WrongWeekday(t *testing.T) {
	doc := doctorWith(window("monday", "09:00", "12:00"))

	assert.False(t, IsAvailable(doc, tuesday, "09:00"))
}

func TestIsAvailable_CaseInsensitiveDayAndSeconds(t *testing.T) {
	doc := doctorWith(window(" Monday", "09:00:00", "12:00:00"))

	assert.True(t, IsAvailable(doc, monday, "10:00"))
	assert.True(t, IsAvailable(doc, monday, "10:00:00"))
	assert.True(t, IsAvailable(doc, monday, "10:30"))
}

func TestIsAvailable_InactiveAndMalformedWindowsSkipped(t *testing.T) {
	inactive := window("monday", "09:00", "12:00")
	inactive.IsActive = false

	doc := doctorWith(
		inactive,
		window("monday", "", "12:00"),
		window("monday", "13:00", "noon"),
		window("monday", "15:00", "14:00"),
		window("monday", "14:00", "16:00"),
	)

	assert.False(t, IsAvailable(doc, monday, "10:00"))
	assert.False(t, IsAvailable(doc, monday, "13:00"))
	assert.True(t, IsAvailable(doc, monday, "14:00"))
	assert.True(t, IsAvailable(doc, monday, "15:00"))
}

func TestIsAvailable_OverlappingWindowsTolerated(t *testing.T) {
	doc := doctorWith(
		window("monday", "09:00", "12:00"),
		window("monday", "11:00", "14:00"),
	)

	assert.True(t, IsAvailable(doc, monday, "11:00"))
	assert.True(t, IsAvailable(doc, monday, "13:00"))
	assert.False(t, IsAvailable(doc, monday, "14:00"))
}

func TestIsAvailable_MalformedSlot(t *testing.T) {
	doc := doctorWith(window("monday", "09:00", "12:00"))

	assert.False(t, IsAvailable(doc, monday, "nine"))
	assert.False(t, IsAvailable(doc, monday, ""))
}

func TestIsAvailable_Idempotent(t *testing.T) {
	doc := doctorWith(window("monday", "09:00", "17:00"))

	first := IsAvailable(doc, monday, "14:00")
	second := IsAvailable(doc, monday, "14:00")

	assert.True(t, first)
	assert.Equal(t, first, second)
}
