package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func TestCanTransition(t *testing.T) {
	allowed := [][2]Status{
		{StatusScheduled, StatusConfirmed},
		{StatusConfirmed, StatusInProgress},
		{StatusConfirmed, StatusExamined},
		{StatusInProgress, StatusExamined},
		{StatusExamined, StatusDispensed},
		{StatusExamined, StatusCompleted},
		{StatusDispensed, StatusCompleted},
		{StatusScheduled, StatusCancelled},
		{StatusExamined, StatusCancelled},
	}
	for _, tr := range allowed {
		assert.NoError(t, CanTransition(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}

	rejected := [][2]Status{
		{StatusScheduled, StatusCompleted},
		{StatusCompleted, StatusCancelled},
		{StatusCancelled, StatusScheduled},
		{StatusConfirmed, StatusScheduled},
		{StatusScheduled, Status("archived")},
	}
	for _, tr := range rejected {
		assert.ErrorIs(t, CanTransition(tr[0], tr[1]), ErrInvalidState, "%s -> %s", tr[0], tr[1])
	}
}

func TestTransition_SetsTimestamps(t *testing.T) {
	now := time.Date(2030, time.January, 7, 10, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusScheduled)}
	require.NoError(t, Transition(ap, StatusCancelled, now))
	assert.Equal(t, string(StatusCancelled), ap.Status)
	require.NotNil(t, ap.CancelledAt)
	assert.True(t, ap.CancelledAt.Equal(now))

	ap = &models.Appointment{Status: string(StatusExamined)}
	require.NoError(t, Transition(ap, StatusCompleted, now))
	require.NotNil(t, ap.CompletedAt)

	ap = &models.Appointment{Status: string(StatusScheduled)}
	assert.ErrorIs(t, Transition(ap, StatusCompleted, now), ErrInvalidState)
	assert.Equal(t, string(StatusScheduled), ap.Status)
}
