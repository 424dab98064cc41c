package appointment

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// CompareDoctors builds the side-by-side availability grid.
type CompareDoctors struct {
	repo   domain.Repository
	policy domain.Policy
	limit  int
}

func NewCompareDoctors(repo domain.Repository, policy domain.Policy, limit int) *CompareDoctors {
	if limit <= 0 {
		limit = 3
	}
	return &CompareDoctors{repo: repo, policy: policy, limit: limit}
}

func (uc *CompareDoctors) Execute(ctx context.Context, date string, doctorIDs []uint) (*domain.Comparison, error) {
	if len(doctorIDs) == 0 {
		return nil, httperr.ErrValidation("doctor_ids", "at least one doctor is required")
	}
	if len(doctorIDs) > uc.limit {
		return nil, httperr.ErrValidation("doctor_ids", fmt.Sprintf("at most %d doctors can be compared", uc.limit))
	}

	day, err := parseQueryDate(date)
	if err != nil {
		return nil, err
	}

	seen := make(map[uint]bool, len(doctorIDs))
	doctors := make([]*models.Doctor, 0, len(doctorIDs))
	aps := make(map[uint][]models.Appointment, len(doctorIDs))

	for _, id := range doctorIDs {
		if seen[id] {
			return nil, httperr.ErrValidation("doctor_ids", "a doctor can only be compared once")
		}
		seen[id] = true

		doctor, err := uc.repo.GetDoctor(ctx, id)
		if err != nil {
			if !errors.Is(err, domain.ErrDoctorNotFound) {
				return nil, repoErr("get_doctor", err)
			}
		}
		if doctor != nil {
			list, err := uc.repo.ListAppointmentsForDay(ctx, id, day)
			if err != nil {
				return nil, repoErr("list_appointments", err)
			}
			aps[id] = list
		}
		doctors = append(doctors, doctor)
	}

	cmp := uc.policy.Compare(day, doctors, aps)
	for i, id := range doctorIDs {
		cmp.Doctors[i].DoctorID = id
	}
	return &cmp, nil
}
