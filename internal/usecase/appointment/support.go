package appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/slotlock"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

// Clock gives the clinic's notion of "today".
type Clock struct {
	Timezone string
	Now      func() time.Time
}

func SystemClock(tz string) Clock {
	return Clock{Timezone: tz, Now: time.Now}
}

func (c Clock) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

func (c Clock) Today() time.Time {
	return timezone.Today(c.now(), c.Timezone)
}

// NewAppointmentCode returns APT-YYYYMMDD-XXXXXXXX.
func NewAppointmentCode(date time.Time) string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("APT-%s-%s", date.Format("20060102"), id[:8])
}

type slot struct {
	doctorID uint
	date     time.Time
	time     string
}

func parseSlot(doctorID uint, date, at string, today time.Time) (slot, error) {
	if doctorID == 0 {
		return slot{}, httperr.ErrValidation("doctor_id", "doctor is required")
	}
	if strings.TrimSpace(date) == "" {
		return slot{}, httperr.ErrValidation("appointment_date", "date is required")
	}
	if strings.TrimSpace(at) == "" {
		return slot{}, httperr.ErrValidation("appointment_time", "time is required")
	}

	d, err := domain.ParseDate(date)
	if err != nil {
		return slot{}, httperr.ErrValidation("appointment_date", "date must be YYYY-MM-DD")
	}
	if d.Before(today) {
		return slot{}, httperr.ErrValidation("appointment_date", "date must not be in the past")
	}

	t, ok := domain.NormalizeClock(at)
	if !ok {
		return slot{}, httperr.ErrValidation("appointment_time", "time must be HH:MM")
	}
	if !strings.HasSuffix(t, ":00") {
		return slot{}, httperr.ErrValidation("appointment_time", "time must be on the hour")
	}

	return slot{doctorID: doctorID, date: d, time: t}, nil
}

func (s slot) same(o slot) bool {
	return s.doctorID == o.doctorID && s.date.Equal(o.date) && s.time == o.time
}

func (s slot) key() string {
	return slotlock.Key(s.doctorID, s.date, s.time)
}

// lockSlot returns a no-op release when no locker is configured. A locker
// outage is logged and tolerated: the storage constraint remains.
func lockSlot(ctx context.Context, locker slotlock.Locker, log logrus.FieldLogger, s slot) (func(), error) {
	noop := func() {}
	if locker == nil {
		return noop, nil
	}

	release, err := locker.Lock(ctx, s.key())
	switch {
	case err == nil:
		return release, nil
	case errors.Is(err, slotlock.ErrLocked):
		return nil, domain.ErrSlotUnavailable
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return nil, err
	default:
		log.WithError(err).WithField("slot", s.key()).Warn("slot lock unavailable, relying on storage constraint")
		return noop, nil
	}
}

// guardErr converts guard failures into the caller-facing taxonomy.
func guardErr(err error) error {
	if errors.Is(err, domain.ErrDoctorNotFound) {
		return httperr.ErrValidation("doctor_id", "doctor not found")
	}
	return err
}

// repoErr keeps domain errors and wraps everything else as a persistence failure.
func repoErr(op string, err error) error {
	if errors.Is(err, domain.ErrSlotTaken) {
		return domain.ErrSlotUnavailable
	}
	var be httperr.BusinessError
	if errors.As(err, &be) || httperr.IsPersistence(err) {
		return err
	}
	return httperr.ErrPersistence(op, err)
}

func dispatch(d *audit.Dispatcher, ev audit.Event) {
	if d != nil {
		d.Dispatch(ev)
	}
}
