package appointment

import (
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type DoctorStatus string

const (
	DoctorAvailable     DoctorStatus = "available"
	DoctorFull          DoctorStatus = "full"
	DoctorNotPracticing DoctorStatus = "not_practicing"
	DoctorNotAvailable  DoctorStatus = "not_available"
)

// Classify computes the doctor's badge status for a date. It is a read
// model; booking decisions go through the guard.
func Classify(doctor *models.Doctor, date time.Time, appointments []models.Appointment) DoctorStatus {
	return classify(doctor, date, appointments, nil)
}

func classify(
	doctor *models.Doctor,
	date time.Time,
	appointments []models.Appointment,
	excluded func(hour int) bool,
) DoctorStatus {

	if doctor == nil {
		return DoctorNotAvailable
	}
	if !hasActiveWindow(doctor) {
		return DoctorNotPracticing
	}

	windows := windowsFor(doctor, date)
	if len(windows) == 0 {
		return DoctorNotPracticing
	}

	total := 0
	for _, w := range windows {
		for h := w.start / 60; h < w.end/60; h++ {
			if excluded != nil && excluded(h) {
				continue
			}
			total++
		}
	}

	if CountBooked(doctor.ID, date, appointments) >= total {
		return DoctorFull
	}
	return DoctorAvailable
}

// IsActive reports whether the appointment still holds its slot.
func IsActive(ap models.Appointment) bool {
	return Status(ap.Status) != StatusCancelled
}

// CountBooked counts the doctor's non-cancelled appointments on date.
func CountBooked(doctorID uint, date time.Time, appointments []models.Appointment) int {
	n := 0
	for _, ap := range appointments {
		if ap.DoctorID == doctorID && SameDay(ap.AppointmentDate, date) && IsActive(ap) {
			n++
		}
	}
	return n
}
