package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// CanBook reports whether the slot is inside the doctor's schedule and not
// held by another non-cancelled appointment. The appointment with code
// excludeCode is ignored so an appointment never conflicts with itself.
func CanBook(
	doctor *models.Doctor,
	date time.Time,
	slot string,
	appointments []models.Appointment,
	excludeCode string,
) bool {

	if !IsAvailable(doctor, date, slot) {
		return false
	}
	return findBooking(doctor.ID, date, slot, appointments, excludeCode) == nil
}

func findBooking(
	doctorID uint,
	date time.Time,
	slot string,
	appointments []models.Appointment,
	excludeCode string,
) *models.Appointment {

	at, ok := NormalizeClock(slot)
	if !ok {
		return nil
	}
	for i := range appointments {
		ap := &appointments[i]
		if ap.DoctorID != doctorID || !IsActive(*ap) || !SameDay(ap.AppointmentDate, date) {
			continue
		}
		if excludeCode != "" && ap.AppointmentCode == excludeCode {
			continue
		}
		if t, ok := NormalizeClock(ap.AppointmentTime); ok && t == at {
			return ap
		}
	}
	return nil
}

// Guard re-validates a slot against fresh repository state right before a
// write. The storage uniqueness constraint stays authoritative; the guard is
// the user-facing pre-check.
type Guard struct {
	repo   Repository
	policy Policy
}

func NewGuard(repo Repository, policy Policy) *Guard {
	return &Guard{repo: repo, policy: policy}
}

// Check returns the doctor it validated against so callers do not read it
// a second time.
func (g *Guard) Check(
	ctx context.Context,
	doctorID uint,
	date time.Time,
	slot string,
	excludeCode string,
) (*models.Doctor, error) {

	doctor, err := g.repo.GetDoctor(ctx, doctorID)
	if err != nil {
		if errors.Is(err, ErrDoctorNotFound) {
			return nil, err
		}
		return nil, httperr.ErrPersistence("get_doctor", err)
	}

	if mins, ok := ParseClock(slot); !ok || g.policy.IsBreak(mins/60) {
		return doctor, ErrSlotUnavailable
	}

	appointments, err := g.repo.ListAppointmentsForDay(ctx, doctorID, date)
	if err != nil {
		return doctor, httperr.ErrPersistence("list_appointments", err)
	}

	if !CanBook(doctor, date, slot, appointments, excludeCode) {
		return doctor, ErrSlotUnavailable
	}
	return doctor, nil
}
