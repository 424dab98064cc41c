package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"STORAGE_DRIVER", "BREAK_HOURS", "GRID_START_HOUR", "GRID_END_HOUR", "COMPARE_LIMIT", "SLOT_LOCK_TTL", "SERVER_PORT"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "postgres", cfg.StorageDriver)
	assert.Equal(t, 9, cfg.GridStartHour)
	assert.Equal(t, 17, cfg.GridEndHour)
	assert.Empty(t, cfg.BreakHours)
	assert.Equal(t, 3, cfg.CompareLimit)
	assert.Equal(t, 10*time.Second, cfg.SlotLockTTL)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "Memory")
	t.Setenv("BREAK_HOURS", "12, x ,13")
	t.Setenv("GRID_END_HOUR", "20")
	t.Setenv("SLOT_LOCK_TTL", "3s")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg := Load()

	assert.Equal(t, "memory", cfg.StorageDriver)
	assert.Equal(t, []int{12, 13}, cfg.BreakHours)
	assert.Equal(t, 20, cfg.GridEndHour)
	assert.Equal(t, 3*time.Second, cfg.SlotLockTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("COMPARE_LIMIT", "three")
	t.Setenv("SLOT_LOCK_TTL", "-1s")

	cfg := Load()

	assert.Equal(t, 3, cfg.CompareLimit)
	assert.Equal(t, 10*time.Second, cfg.SlotLockTTL)
}
