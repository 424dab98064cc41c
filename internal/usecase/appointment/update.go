package appointment

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/slotlock"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// UpdateAppointmentInput is a patch: nil fields are left unchanged.
type UpdateAppointmentInput struct {
	Actor string

	DoctorID *uint
	Date     *string
	Time     *string

	PatientNoRM *string
	Status      *string
	Type        *string
	Poli        *string
	Notes       *string
	Complaint   *string
}

type UpdateAppointment struct {
	repo   domain.Repository
	guard  *domain.Guard
	locker slotlock.Locker
	audit  *audit.Dispatcher
	log    logrus.FieldLogger
	clock  Clock
}

func NewUpdateAppointment(
	repo domain.Repository,
	guard *domain.Guard,
	locker slotlock.Locker,
	audit *audit.Dispatcher,
	log logrus.FieldLogger,
	clock Clock,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:   repo,
		guard:  guard,
		locker: locker,
		audit:  audit,
		log:    log,
		clock:  clock,
	}
}

// Execute re-runs the guard only when doctor, date or time change, and then
// ignores the appointment's own current slot.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	code string,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, code)
	if err != nil {
		return nil, repoErr("get_appointment", err)
	}

	target, moved, err := uc.target(ap, in)
	if err != nil {
		return nil, err
	}
	if moved && domain.Status(ap.Status).Terminal() {
		return nil, domain.ErrInvalidState
	}

	if in.PatientNoRM != nil {
		p := strings.TrimSpace(*in.PatientNoRM)
		if p == "" {
			return nil, httperr.ErrValidation("patient_no_rm", "patient is required")
		}
		ap.PatientNoRM = p
	}
	if in.Status != nil {
		to := domain.Status(strings.ToLower(strings.TrimSpace(*in.Status)))
		if !to.Valid() {
			return nil, httperr.ErrValidation("status", "unknown status")
		}
		if to != domain.Status(ap.Status) {
			if err := domain.Transition(ap, to, uc.clock.now()); err != nil {
				return nil, err
			}
		}
	}
	if in.Type != nil {
		ap.Type = strings.TrimSpace(*in.Type)
	}
	if in.Poli != nil {
		ap.Poli = strings.TrimSpace(*in.Poli)
	}
	if in.Notes != nil {
		ap.Notes = *in.Notes
	}
	if in.Complaint != nil {
		ap.Complaint = *in.Complaint
	}

	if moved && domain.IsActive(*ap) {
		release, err := lockSlot(ctx, uc.locker, uc.log, target)
		if err != nil {
			return nil, err
		}
		defer release()

		doctor, err := uc.guard.Check(ctx, target.doctorID, target.date, target.time, ap.AppointmentCode)
		if err != nil {
			if errors.Is(err, domain.ErrSlotUnavailable) {
				uc.log.WithField("appointment_code", code).Info("reschedule rejected, slot unavailable")
			}
			return nil, guardErr(err)
		}
		if target.doctorID != ap.DoctorID && in.Poli == nil {
			ap.Poli = doctor.Poli
		}
	}

	meta := map[string]any{"moved": moved}
	if moved {
		meta["from"] = map[string]any{"doctor_id": ap.DoctorID, "date": ap.AppointmentDate.Format(domain.DateLayout), "time": ap.AppointmentTime}
		ap.DoctorID = target.doctorID
		ap.AppointmentDate = target.date
		ap.AppointmentTime = target.time
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, repoErr("update_appointment", err)
	}

	dispatch(uc.audit, audit.Event{
		Actor:    in.Actor,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: ap.AppointmentCode,
		Metadata: meta,
	})

	return ap, nil
}

// target resolves the slot after applying the patch. The past-date rule
// only applies when the slot actually changes.
func (uc *UpdateAppointment) target(ap *models.Appointment, in UpdateAppointmentInput) (slot, bool, error) {
	current := slot{doctorID: ap.DoctorID, date: domain.DateOnly(ap.AppointmentDate), time: ap.AppointmentTime}
	if t, ok := domain.NormalizeClock(ap.AppointmentTime); ok {
		current.time = t
	}
	if in.DoctorID == nil && in.Date == nil && in.Time == nil {
		return current, false, nil
	}

	doctorID := current.doctorID
	if in.DoctorID != nil {
		doctorID = *in.DoctorID
	}
	date := current.date.Format(domain.DateLayout)
	if in.Date != nil {
		date = *in.Date
	}
	at := current.time
	if in.Time != nil {
		at = *in.Time
	}

	next, err := parseSlot(doctorID, date, at, time.Time{})
	if err != nil {
		return slot{}, false, err
	}
	if next.same(current) {
		return current, false, nil
	}
	if next.date.Before(uc.clock.Today()) {
		return slot{}, false, httperr.ErrValidation("appointment_date", "date must not be in the past")
	}
	return next, true, nil
}
