package appointment

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ChangeStatus applies a clinical or billing driven status change. The
// slot is not re-checked.
type ChangeStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	clock Clock
}

func NewChangeStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
	clock Clock,
) *ChangeStatus {
	return &ChangeStatus{
		repo:  repo,
		audit: audit,
		clock: clock,
	}
}

func (uc *ChangeStatus) Execute(
	ctx context.Context,
	actor string,
	code string,
	status string,
) (*models.Appointment, error) {

	to := domain.Status(strings.ToLower(strings.TrimSpace(status)))
	if !to.Valid() {
		return nil, httperr.ErrValidation("status", "unknown status")
	}

	ap, err := uc.repo.GetAppointment(ctx, code)
	if err != nil {
		return nil, repoErr("get_appointment", err)
	}

	from := ap.Status
	if err := domain.Transition(ap, to, uc.clock.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, repoErr("update_appointment", err)
	}

	dispatch(uc.audit, audit.Event{
		Actor:    actor,
		Action:   "appointment_" + string(to),
		Entity:   "appointment",
		EntityID: ap.AppointmentCode,
		Metadata: map[string]string{"from": from, "to": string(to)},
	})

	return ap, nil
}

// Cancel is ChangeStatus to cancelled.
func (uc *ChangeStatus) Cancel(
	ctx context.Context,
	actor string,
	code string,
) (*models.Appointment, error) {
	return uc.Execute(ctx, actor, code, string(domain.StatusCancelled))
}
