package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) ByDate(
	ctx context.Context,
	doctorID uint,
	date string,
) ([]dto.AppointmentDTO, error) {

	day, err := parseQueryDate(date)
	if err != nil {
		return nil, err
	}

	aps, err := uc.repo.ListAppointmentsForDay(ctx, doctorID, day)
	if err != nil {
		return nil, repoErr("list_appointments", err)
	}
	return dto.FromAppointments(aps), nil
}

func (uc *ListAppointments) ByMonth(
	ctx context.Context,
	doctorID uint,
	year int,
	month int,
) ([]dto.AppointmentDTO, error) {

	if year < 2000 || year > 2100 {
		return nil, httperr.ErrValidation("year", "invalid year")
	}
	if month < 1 || month > 12 {
		return nil, httperr.ErrValidation("month", "invalid month")
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	aps, err := uc.repo.ListAppointmentsForPeriod(ctx, doctorID, start, end)
	if err != nil {
		return nil, repoErr("list_appointments", err)
	}
	return dto.FromAppointments(aps), nil
}

func (uc *ListAppointments) Get(ctx context.Context, code string) (*dto.AppointmentDTO, error) {
	ap, err := uc.repo.GetAppointment(ctx, code)
	if err != nil {
		return nil, repoErr("get_appointment", err)
	}
	out := dto.FromAppointment(ap)
	return &out, nil
}

func (uc *ListAppointments) Doctors(ctx context.Context, poli string) ([]dto.DoctorDTO, error) {
	docs, err := uc.repo.ListDoctors(ctx, poli)
	if err != nil {
		return nil, repoErr("list_doctors", err)
	}
	out := make([]dto.DoctorDTO, 0, len(docs))
	for i := range docs {
		out = append(out, dto.FromDoctor(&docs[i]))
	}
	return out, nil
}
