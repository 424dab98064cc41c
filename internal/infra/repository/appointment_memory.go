package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// AppointmentMemoryRepository keeps doctors and appointments in process.
// It enforces the same one-active-appointment-per-slot constraint as the
// Postgres partial unique index, under a single mutex.
type AppointmentMemoryRepository struct {
	mu           sync.RWMutex
	nextID       uint
	doctors      map[uint]models.Doctor
	appointments map[string]models.Appointment
}

func NewAppointmentMemoryRepository(doctors ...models.Doctor) *AppointmentMemoryRepository {
	r := &AppointmentMemoryRepository{
		doctors:      make(map[uint]models.Doctor, len(doctors)),
		appointments: make(map[string]models.Appointment),
	}
	for _, d := range doctors {
		r.doctors[d.ID] = d
	}
	return r
}

// LoadDoctorsFile reads a JSON array of doctors with nested schedules.
func LoadDoctorsFile(path string) ([]models.Doctor, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var docs []models.Doctor
	if err := json.Unmarshal(b, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return docs, nil
}

// --------------------------------------------------
// Doctor
// --------------------------------------------------

func (r *AppointmentMemoryRepository) GetDoctor(
	_ context.Context,
	id uint,
) (*models.Doctor, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.doctors[id]
	if !ok {
		return nil, domain.ErrDoctorNotFound
	}
	d.Schedules = append([]models.ScheduleWindow(nil), d.Schedules...)
	return &d, nil
}

func (r *AppointmentMemoryRepository) ListDoctors(
	_ context.Context,
	poli string,
) ([]models.Doctor, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Doctor, 0, len(r.doctors))
	for _, d := range r.doctors {
		if poli != "" && !strings.EqualFold(d.Poli, poli) {
			continue
		}
		d.Schedules = append([]models.ScheduleWindow(nil), d.Schedules...)
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// --------------------------------------------------
// Appointment (read)
// --------------------------------------------------

func (r *AppointmentMemoryRepository) GetAppointment(
	_ context.Context,
	code string,
) (*models.Appointment, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	ap, ok := r.appointments[code]
	if !ok {
		return nil, domain.ErrAppointmentNotFound
	}
	return &ap, nil
}

func (r *AppointmentMemoryRepository) ListAppointmentsForDay(
	ctx context.Context,
	doctorID uint,
	date time.Time,
) ([]models.Appointment, error) {
	day := domain.DateOnly(date)
	return r.ListAppointmentsForPeriod(ctx, doctorID, day, day.AddDate(0, 0, 1))
}

func (r *AppointmentMemoryRepository) ListAppointmentsForPeriod(
	_ context.Context,
	doctorID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	from, to := domain.DateOnly(start), domain.DateOnly(end)

	var out []models.Appointment
	for _, ap := range r.appointments {
		day := domain.DateOnly(ap.AppointmentDate)
		if ap.DoctorID != doctorID || day.Before(from) || !day.Before(to) {
			continue
		}
		out = append(out, ap)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].AppointmentDate.Equal(out[j].AppointmentDate) {
			return out[i].AppointmentDate.Before(out[j].AppointmentDate)
		}
		return out[i].AppointmentTime < out[j].AppointmentTime
	})
	return out, nil
}

// --------------------------------------------------
// Appointment (write)
// --------------------------------------------------

// slotTakenLocked must be called with mu held.
func (r *AppointmentMemoryRepository) slotTakenLocked(ap *models.Appointment) bool {
	if !domain.IsActive(*ap) {
		return false
	}
	for code, other := range r.appointments {
		if code == ap.AppointmentCode || !domain.IsActive(other) {
			continue
		}
		if other.DoctorID == ap.DoctorID &&
			domain.SameDay(other.AppointmentDate, ap.AppointmentDate) &&
			other.AppointmentTime == ap.AppointmentTime {
			return true
		}
	}
	return false
}

func (r *AppointmentMemoryRepository) CreateAppointment(
	_ context.Context,
	ap *models.Appointment,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.appointments[ap.AppointmentCode]; exists {
		return fmt.Errorf("appointment code %q already exists", ap.AppointmentCode)
	}
	if r.slotTakenLocked(ap) {
		return domain.ErrSlotTaken
	}

	r.nextID++
	now := time.Now()
	ap.ID = r.nextID
	ap.CreatedAt = now
	ap.UpdatedAt = now
	r.appointments[ap.AppointmentCode] = *ap
	return nil
}

func (r *AppointmentMemoryRepository) UpdateAppointment(
	_ context.Context,
	ap *models.Appointment,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.appointments[ap.AppointmentCode]; !exists {
		return domain.ErrAppointmentNotFound
	}
	if r.slotTakenLocked(ap) {
		return domain.ErrSlotTaken
	}

	ap.UpdatedAt = time.Now()
	r.appointments[ap.AppointmentCode] = *ap
	return nil
}

func (r *AppointmentMemoryRepository) DeleteAppointment(
	_ context.Context,
	code string,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.appointments[code]; !exists {
		return domain.ErrAppointmentNotFound
	}
	delete(r.appointments, code)
	return nil
}

var _ domain.Repository = (*AppointmentMemoryRepository)(nil)
