package appointment

import (
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

var (
	monday  = time.Date(2030, time.January, 7, 0, 0, 0, 0, time.UTC)
	tuesday = time.Date(2030, time.January, 8, 0, 0, 0, 0, time.UTC)
)

func doctorWith(windows ...models.ScheduleWindow) *models.Doctor {
	return &models.Doctor{ID: 1, Name: "dr. Sari", Poli: "umum", Schedules: windows}
}

func window(day, start, end string) models.ScheduleWindow {
	return models.ScheduleWindow{DayOfWeek: day, StartTime: start, EndTime: end, IsActive: true}
}

func booking(code string, doctorID uint, date time.Time, at string, status Status) models.Appointment {
	return models.Appointment{
		AppointmentCode: code,
		DoctorID:        doctorID,
		AppointmentDate: date,
		AppointmentTime: at,
		Status:          string(status),
	}
}
