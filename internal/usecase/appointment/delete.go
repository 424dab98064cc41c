package appointment

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes the appointment, which frees its slot for capacity counts.
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	actor string,
	code string,
) error {

	if err := uc.repo.DeleteAppointment(ctx, code); err != nil {
		return repoErr("delete_appointment", err)
	}

	dispatch(uc.audit, audit.Event{
		Actor:    actor,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: code,
	})

	return nil
}
