package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Mars/Olympus"))
	assert.True(t, IsValid("UTC"))
}

func TestLocation_Fallback(t *testing.T) {
	assert.NotNil(t, Location("Mars/Olympus"))
	assert.Equal(t, "UTC", Location("UTC").String())
}

func TestToday_UsesClinicDate(t *testing.T) {
	// 18:30 UTC on the 6th is already the 7th at UTC+7.
	now := time.Date(2030, time.January, 6, 18, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2030, time.January, 6, 0, 0, 0, 0, time.UTC), Today(now, "UTC"))

	jakarta := Today(now, "Asia/Jakarta")
	if Location("Asia/Jakarta").String() == "Asia/Jakarta" {
		assert.Equal(t, time.Date(2030, time.January, 7, 0, 0, 0, 0, time.UTC), jakarta)
	}
}
