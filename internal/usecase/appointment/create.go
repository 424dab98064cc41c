package appointment

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/slotlock"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	Actor string

	PatientNoRM string
	DoctorID    uint
	Date        string
	Time        string

	Type      string
	Poli      string
	Notes     string
	Complaint string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo   domain.Repository
	guard  *domain.Guard
	locker slotlock.Locker
	audit  *audit.Dispatcher
	log    logrus.FieldLogger
	clock  Clock
}

func NewCreateAppointment(
	repo domain.Repository,
	guard *domain.Guard,
	locker slotlock.Locker,
	audit *audit.Dispatcher,
	log logrus.FieldLogger,
	clock Clock,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		guard:  guard,
		locker: locker,
		audit:  audit,
		log:    log,
		clock:  clock,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute books a slot. A rejected slot returns ErrSlotUnavailable and is
// not retried here.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// 1. Required fields
	patient := strings.TrimSpace(in.PatientNoRM)
	if patient == "" {
		return nil, httperr.ErrValidation("patient_no_rm", "patient is required")
	}

	s, err := parseSlot(in.DoctorID, in.Date, in.Time, uc.clock.Today())
	if err != nil {
		return nil, err
	}

	fields := logrus.Fields{"doctor_id": s.doctorID, "date": s.date.Format(domain.DateLayout), "time": s.time}

	// 2. Serialize attempts on this slot
	release, err := lockSlot(ctx, uc.locker, uc.log, s)
	if err != nil {
		if errors.Is(err, domain.ErrSlotUnavailable) {
			uc.conflict(in.Actor, fields, "locked")
		}
		return nil, err
	}
	defer release()

	// 3. Commit-time re-check
	doctor, err := uc.guard.Check(ctx, s.doctorID, s.date, s.time, "")
	if err != nil {
		if errors.Is(err, domain.ErrSlotUnavailable) {
			uc.conflict(in.Actor, fields, "guard")
		}
		return nil, guardErr(err)
	}

	// 4. Persist
	poli := strings.TrimSpace(in.Poli)
	if poli == "" {
		poli = doctor.Poli
	}

	ap := &models.Appointment{
		AppointmentCode: NewAppointmentCode(s.date),
		DoctorID:        s.doctorID,
		PatientNoRM:     patient,
		AppointmentDate: s.date,
		AppointmentTime: s.time,
		Status:          string(domain.InitialStatus()),
		Type:            strings.TrimSpace(in.Type),
		Poli:            poli,
		Notes:           in.Notes,
		Complaint:       in.Complaint,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if errors.Is(err, domain.ErrSlotTaken) {
			uc.conflict(in.Actor, fields, "storage")
		}
		return nil, repoErr("create_appointment", err)
	}

	// 5. Audit
	uc.log.WithFields(fields).WithField("appointment_code", ap.AppointmentCode).Info("appointment created")
	dispatch(uc.audit, audit.Event{
		Actor:    in.Actor,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.AppointmentCode,
		Metadata: fields,
	})

	return ap, nil
}

func (uc *CreateAppointment) conflict(actor string, fields logrus.Fields, stage string) {
	uc.log.WithFields(fields).WithField("stage", stage).Info("booking rejected, slot unavailable")
	dispatch(uc.audit, audit.Event{
		Actor:    actor,
		Action:   "appointment_conflict",
		Entity:   "appointment",
		Metadata: map[string]any{"slot": fields, "stage": stage},
	})
}
