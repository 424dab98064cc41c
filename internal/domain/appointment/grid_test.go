package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func statesOf(slots []SlotView) map[string]SlotState {
	out := make(map[string]SlotState, len(slots))
	for _, s := range slots {
		out[s.Time] = s.State
	}
	return out
}

func TestPolicyTimes(t *testing.T) {
	assert.Equal(t,
		[]string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00"},
		DefaultPolicy().Times(),
	)
}

func TestBuildGrid(t *testing.T) {
	p := Policy{GridStartHour: 9, GridEndHour: 17, BreakHours: []int{12}}
	doc := doctorWith(window("monday", "09:00", "14:00"))
	aps := []models.Appointment{
		booking("A1", 1, monday, "10:00", StatusScheduled),
		booking("A2", 1, monday, "11:00", StatusCancelled),
	}

	got := p.BuildGrid(doc, monday, aps)
	require.Len(t, got, 8)

	states := statesOf(got)
	assert.Equal(t, SlotAvailable, states["09:00"])
	assert.Equal(t, SlotBooked, states["10:00"])
	assert.Equal(t, SlotAvailable, states["11:00"])
	assert.Equal(t, SlotBreak, states["12:00"])
	assert.Equal(t, SlotAvailable, states["13:00"])
	assert.Equal(t, SlotNotAvailable, states["14:00"])
	assert.Equal(t, "A1", got[1].AppointmentCode)
}

func TestBuildGrid_BookingKeptAfterScheduleEdit(t *testing.T) {
	doc := doctorWith(window("monday", "09:00", "10:00"))
	aps := []models.Appointment{booking("A1", 1, monday, "15:00", StatusConfirmed)}

	states := statesOf(DefaultPolicy().BuildGrid(doc, monday, aps))

	assert.Equal(t, SlotBooked, states["15:00"])
	assert.Equal(t, SlotNotAvailable, states["14:00"])
}

func TestCompare(t *testing.T) {
	a := &models.Doctor{ID: 1, Name: "dr. A", Schedules: []models.ScheduleWindow{window("monday", "09:00", "17:00")}}
	b := &models.Doctor{ID: 2, Name: "dr. B"}
	c := &models.Doctor{ID: 3, Name: "dr. C", Schedules: []models.ScheduleWindow{window("monday", "09:00", "10:00")}}

	aps := map[uint][]models.Appointment{
		3: {booking("C1", 3, monday, "09:00", StatusScheduled)},
	}

	cmp := DefaultPolicy().Compare(monday, []*models.Doctor{a, b, c}, aps)

	assert.Equal(t, "2030-01-07", cmp.Date)
	assert.Equal(t, "monday", cmp.Weekday)
	require.Len(t, cmp.Doctors, 3)
	assert.Equal(t, DoctorAvailable, cmp.Doctors[0].Status)
	assert.Equal(t, DoctorNotPracticing, cmp.Doctors[1].Status)
	assert.Equal(t, DoctorFull, cmp.Doctors[2].Status)
	assert.Equal(t, SlotBooked, cmp.Doctors[2].Slots[0].State)
}

func TestCalendar(t *testing.T) {
	doc := doctorWith(window("monday", "09:00", "10:00"))
	aps := []models.Appointment{booking("A1", 1, monday, "09:00", StatusScheduled)}

	days := DefaultPolicy().Calendar(doc, monday.AddDate(0, 0, -1), tuesday, aps)

	require.Len(t, days, 3)
	assert.Equal(t, "sunday", days[0].Weekday)
	assert.Equal(t, DoctorNotPracticing, days[0].Status)
	assert.Equal(t, DoctorFull, days[1].Status)
	assert.Equal(t, 1, days[1].Booked)
	assert.Equal(t, DoctorNotPracticing, days[2].Status)
}
