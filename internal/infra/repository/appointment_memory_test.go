package repository

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

var monday = time.Date(2030, time.January, 7, 0, 0, 0, 0, time.UTC)

func newAppointment(code, at string) *models.Appointment {
	return &models.Appointment{
		AppointmentCode: code,
		DoctorID:        1,
		PatientNoRM:     "RM-001",
		AppointmentDate: monday,
		AppointmentTime: at,
		Status:          string(domain.StatusScheduled),
	}
}

func TestMemory_GetDoctorReturnsCopy(t *testing.T) {
	repo := NewAppointmentMemoryRepository(models.Doctor{
		ID:        1,
		Name:      "dr. Sari",
		Schedules: []models.ScheduleWindow{{DayOfWeek: "monday", StartTime: "09:00", EndTime: "12:00", IsActive: true}},
	})

	d, err := repo.GetDoctor(context.Background(), 1)
	require.NoError(t, err)
	d.Schedules[0].IsActive = false

	again, err := repo.GetDoctor(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, again.Schedules[0].IsActive)

	_, err = repo.GetDoctor(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrDoctorNotFound)
}

func TestMemory_ListDoctorsByPoli(t *testing.T) {
	repo := NewAppointmentMemoryRepository(
		models.Doctor{ID: 1, Name: "dr. B", Poli: "umum"},
		models.Doctor{ID: 2, Name: "dr. A", Poli: "Anak"},
		models.Doctor{ID: 3, Name: "dr. C", Poli: "umum"},
	)

	all, err := repo.ListDoctors(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "dr. A", all[0].Name)

	umum, err := repo.ListDoctors(context.Background(), "UMUM")
	require.NoError(t, err)
	assert.Len(t, umum, 2)
}

func TestMemory_UniqueActiveSlot(t *testing.T) {
	ctx := context.Background()
	repo := NewAppointmentMemoryRepository()

	require.NoError(t, repo.CreateAppointment(ctx, newAppointment("A1", "09:00")))
	assert.ErrorIs(t, repo.CreateAppointment(ctx, newAppointment("A2", "09:00")), domain.ErrSlotTaken)

	cancelled := newAppointment("A3", "10:00")
	cancelled.Status = string(domain.StatusCancelled)
	require.NoError(t, repo.CreateAppointment(ctx, cancelled))
	require.NoError(t, repo.CreateAppointment(ctx, newAppointment("A4", "10:00")))
}

func TestMemory_UpdateDoesNotConflictWithItself(t *testing.T) {
	ctx := context.Background()
	repo := NewAppointmentMemoryRepository()

	ap := newAppointment("A1", "09:00")
	require.NoError(t, repo.CreateAppointment(ctx, ap))
	require.NoError(t, repo.CreateAppointment(ctx, newAppointment("A2", "10:00")))

	ap.Notes = "kontrol"
	require.NoError(t, repo.UpdateAppointment(ctx, ap))

	ap.AppointmentTime = "10:00"
	assert.ErrorIs(t, repo.UpdateAppointment(ctx, ap), domain.ErrSlotTaken)

	stored, err := repo.GetAppointment(ctx, "A1")
	require.NoError(t, err)
	assert.Equal(t, "09:00", stored.AppointmentTime)
	assert.Equal(t, "kontrol", stored.Notes)
}

func TestMemory_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewAppointmentMemoryRepository()

	require.NoError(t, repo.CreateAppointment(ctx, newAppointment("A2", "11:00")))
	require.NoError(t, repo.CreateAppointment(ctx, newAppointment("A1", "09:00")))
	next := newAppointment("A3", "09:00")
	next.AppointmentDate = monday.AddDate(0, 0, 1)
	require.NoError(t, repo.CreateAppointment(ctx, next))

	day, err := repo.ListAppointmentsForDay(ctx, 1, monday)
	require.NoError(t, err)
	require.Len(t, day, 2)
	assert.Equal(t, "A1", day[0].AppointmentCode)

	week, err := repo.ListAppointmentsForPeriod(ctx, 1, monday, monday.AddDate(0, 0, 7))
	require.NoError(t, err)
	assert.Len(t, week, 3)

	require.NoError(t, repo.DeleteAppointment(ctx, "A1"))
	assert.ErrorIs(t, repo.DeleteAppointment(ctx, "A1"), domain.ErrAppointmentNotFound)

	_, err = repo.GetAppointment(ctx, "A1")
	assert.ErrorIs(t, err, domain.ErrAppointmentNotFound)
}

func TestMemory_ConcurrentCreateSingleWinner(t *testing.T) {
	ctx := context.Background()
	repo := NewAppointmentMemoryRepository()

	const n = 20
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ap := newAppointment("A"+string(rune('a'+i)), "09:00")
			errs[i] = repo.CreateAppointment(ctx, ap)
		}(i)
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrSlotTaken)
	}
	assert.Equal(t, 1, ok)
}

func TestLoadDoctorsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doctors.json")
	body := `[{"id": 1, "name": "dr. Sari", "poli": "umum",
	  "schedule": [{"day_of_week": "Monday", "start_time": "09:00", "end_time": "17:00", "is_active": true}]}]`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	docs, err := LoadDoctorsFile(path)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Len(t, docs[0].Schedules, 1)
	assert.Equal(t, "Monday", docs[0].Schedules[0].DayOfWeek)

	_, err = LoadDoctorsFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
