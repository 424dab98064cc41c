package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type Repository interface {
	// -------- Doctor (read-only master data) --------
	GetDoctor(
		ctx context.Context,
		id uint,
	) (*models.Doctor, error)

	ListDoctors(
		ctx context.Context,
		poli string,
	) ([]models.Doctor, error)

	// -------- Appointment (read) --------
	GetAppointment(
		ctx context.Context,
		code string,
	) (*models.Appointment, error)

	ListAppointmentsForDay(
		ctx context.Context,
		doctorID uint,
		date time.Time,
	) ([]models.Appointment, error)

	// ListAppointmentsForPeriod covers dates in [start, end).
	ListAppointmentsForPeriod(
		ctx context.Context,
		doctorID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Appointment (write) --------
	// CreateAppointment and UpdateAppointment return ErrSlotTaken when
	// another non-cancelled appointment holds the same doctor/date/time.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		code string,
	) error
}
