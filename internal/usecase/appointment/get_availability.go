package appointment

import (
	"context"
	"errors"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type Availability struct {
	Date    string              `json:"date"`
	Weekday string              `json:"weekday"`
	Column  domain.DoctorColumn `json:"doctor"`
}

type SlotCheck struct {
	DoctorID  uint                `json:"doctor_id"`
	Date      string              `json:"date"`
	Time      string              `json:"time"`
	Available bool                `json:"available"`
	Bookable  bool                `json:"bookable"`
	Status    domain.DoctorStatus `json:"status"`
}

// GetAvailability serves the read model: badges and slot grids. It is not
// an authority for booking.
type GetAvailability struct {
	repo   domain.Repository
	policy domain.Policy
}

func NewGetAvailability(repo domain.Repository, policy domain.Policy) *GetAvailability {
	return &GetAvailability{repo: repo, policy: policy}
}

func parseQueryDate(s string) (time.Time, error) {
	d, err := domain.ParseDate(s)
	if err != nil {
		return time.Time{}, httperr.ErrValidation("date", "date must be YYYY-MM-DD")
	}
	return d, nil
}

// snapshot loads the doctor and the day's appointments. An unknown doctor
// yields a nil doctor, which classifies as not_available.
func (uc *GetAvailability) snapshot(ctx context.Context, doctorID uint, day time.Time) (*models.Doctor, []models.Appointment, error) {
	doctor, err := uc.repo.GetDoctor(ctx, doctorID)
	if err != nil {
		if errors.Is(err, domain.ErrDoctorNotFound) {
			return nil, nil, nil
		}
		return nil, nil, repoErr("get_doctor", err)
	}

	aps, err := uc.repo.ListAppointmentsForDay(ctx, doctorID, day)
	if err != nil {
		return nil, nil, repoErr("list_appointments", err)
	}
	return doctor, aps, nil
}

func (uc *GetAvailability) Execute(ctx context.Context, doctorID uint, date string) (*Availability, error) {
	day, err := parseQueryDate(date)
	if err != nil {
		return nil, err
	}
	doctor, aps, err := uc.snapshot(ctx, doctorID, day)
	if err != nil {
		return nil, err
	}

	col := uc.policy.Column(doctor, day, aps)
	col.DoctorID = doctorID
	return &Availability{
		Date:    day.Format(domain.DateLayout),
		Weekday: domain.Weekday(day),
		Column:  col,
	}, nil
}

func (uc *GetAvailability) Classify(ctx context.Context, doctorID uint, date string) (domain.DoctorStatus, error) {
	day, err := parseQueryDate(date)
	if err != nil {
		return "", err
	}
	doctor, aps, err := uc.snapshot(ctx, doctorID, day)
	if err != nil {
		return "", err
	}
	return uc.policy.Classify(doctor, day, aps), nil
}

// CheckSlot reports schedule coverage (Available) and whether the slot
// would currently pass the guard (Bookable).
func (uc *GetAvailability) CheckSlot(ctx context.Context, doctorID uint, date, at string) (*SlotCheck, error) {
	t, ok := domain.NormalizeClock(strings.TrimSpace(at))
	if !ok {
		return nil, httperr.ErrValidation("time", "time must be HH:MM")
	}

	day, err := parseQueryDate(date)
	if err != nil {
		return nil, err
	}
	doctor, aps, err := uc.snapshot(ctx, doctorID, day)
	if err != nil {
		return nil, err
	}

	available := domain.IsAvailable(doctor, day, t)
	bookable := available && !uc.policy.IsBreak(mustHour(t)) && domain.CanBook(doctor, day, t, aps, "")

	return &SlotCheck{
		DoctorID:  doctorID,
		Date:      day.Format(domain.DateLayout),
		Time:      t,
		Available: available,
		Bookable:  bookable,
		Status:    uc.policy.Classify(doctor, day, aps),
	}, nil
}

func mustHour(hm string) int {
	mins, _ := domain.ParseClock(hm)
	return mins / 60
}
