package appointment

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// GetCalendar classifies each day of a date range for one doctor.
type GetCalendar struct {
	repo    domain.Repository
	policy  domain.Policy
	maxDays int
}

func NewGetCalendar(repo domain.Repository, policy domain.Policy, maxDays int) *GetCalendar {
	if maxDays <= 0 {
		maxDays = 31
	}
	return &GetCalendar{repo: repo, policy: policy, maxDays: maxDays}
}

func (uc *GetCalendar) Execute(ctx context.Context, doctorID uint, from, to string) ([]domain.DayStatus, error) {
	start, err := domain.ParseDate(from)
	if err != nil {
		return nil, httperr.ErrValidation("from", "date must be YYYY-MM-DD")
	}
	end, err := domain.ParseDate(to)
	if err != nil {
		return nil, httperr.ErrValidation("to", "date must be YYYY-MM-DD")
	}
	if end.Before(start) {
		return nil, httperr.ErrValidation("to", "must not be before from")
	}
	if days := int(end.Sub(start).Hours()/24) + 1; days > uc.maxDays {
		return nil, httperr.ErrValidation("to", fmt.Sprintf("range is limited to %d days", uc.maxDays))
	}

	doctor, err := uc.repo.GetDoctor(ctx, doctorID)
	if err != nil && !errors.Is(err, domain.ErrDoctorNotFound) {
		return nil, repoErr("get_doctor", err)
	}

	var aps []models.Appointment
	if doctor != nil {
		aps, err = uc.repo.ListAppointmentsForPeriod(ctx, doctorID, start, end.AddDate(0, 0, 1))
		if err != nil {
			return nil, repoErr("list_appointments", err)
		}
	}

	return uc.policy.Calendar(doctor, start, end, aps), nil
}
