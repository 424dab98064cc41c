package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Doctor
// --------------------------------------------------

func (r *AppointmentGormRepository) GetDoctor(
	ctx context.Context,
	id uint,
) (*models.Doctor, error) {

	var doc models.Doctor
	if err := r.db.WithContext(ctx).
		Preload("Schedules").
		First(&doc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDoctorNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func (r *AppointmentGormRepository) ListDoctors(
	ctx context.Context,
	poli string,
) ([]models.Doctor, error) {

	q := r.db.WithContext(ctx).Preload("Schedules")
	if poli != "" {
		q = q.Where("LOWER(poli) = LOWER(?)", poli)
	}

	var docs []models.Doctor
	if err := q.Order("name ASC").Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

// --------------------------------------------------
// Appointment (read)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	code string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("appointment_code = ?", code).
		First(&ap).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	doctorID uint,
	date time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"doctor_id = ? AND appointment_date = ?",
			doctorID, date.Format(domain.DateLayout),
		).
		Order("appointment_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	doctorID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"doctor_id = ? AND appointment_date >= ? AND appointment_date < ?",
			doctorID,
			start.Format(domain.DateLayout),
			end.Format(domain.DateLayout),
		).
		Order("appointment_date ASC, appointment_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// --------------------------------------------------
// Appointment (write)
// --------------------------------------------------

// lockSlot locks the active rows on the slot. The partial unique index
// created by the migration still rejects a concurrent insert that slips
// past it.
func lockSlot(tx *gorm.DB, ap *models.Appointment) error {
	var holders []models.Appointment
	if err := tx.
		Select("id").
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"doctor_id = ? AND appointment_date = ? AND appointment_time = ? AND status <> ? AND id <> ?",
			ap.DoctorID,
			ap.AppointmentDate.Format(domain.DateLayout),
			ap.AppointmentTime,
			string(domain.StatusCancelled),
			ap.ID,
		).
		Find(&holders).Error; err != nil {
		return err
	}

	if len(holders) > 0 {
		return domain.ErrSlotTaken
	}
	return nil
}

// ActiveSlotIndex is the partial unique index created by the migration.
const ActiveSlotIndex = "ux_appointments_active_slot"

// translateWriteError maps only the slot index to ErrSlotTaken. Other
// unique violations, such as a duplicate appointment code, stay persistence
// failures.
func translateWriteError(err error) error {
	if httperr.IsUniqueViolation(err) && httperr.ViolatedConstraint(err) == ActiveSlotIndex {
		return domain.ErrSlotTaken
	}
	return err
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if domain.IsActive(*ap) {
			if err := lockSlot(tx, ap); err != nil {
				return err
			}
		}
		return tx.Create(ap).Error
	})
	return translateWriteError(err)
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if domain.IsActive(*ap) {
			if err := lockSlot(tx, ap); err != nil {
				return err
			}
		}
		return tx.Save(ap).Error
	})
	return translateWriteError(err)
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	code string,
) error {

	res := r.db.WithContext(ctx).
		Where("appointment_code = ?", code).
		Delete(&models.Appointment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
