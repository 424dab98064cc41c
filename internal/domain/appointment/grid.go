package appointment

import (
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type SlotState string

const (
	SlotAvailable    SlotState = "available"
	SlotBooked       SlotState = "booked"
	SlotNotAvailable SlotState = "not_available"
	SlotBreak        SlotState = "break"
)

type SlotView struct {
	Time            string    `json:"time"`
	State           SlotState `json:"state"`
	AppointmentCode string    `json:"appointment_code,omitempty"`
}

type DoctorColumn struct {
	DoctorID   uint         `json:"doctor_id"`
	DoctorName string       `json:"doctor_name"`
	Poli       string       `json:"poli"`
	Status     DoctorStatus `json:"status"`
	Slots      []SlotView   `json:"slots"`
}

type Comparison struct {
	Date    string         `json:"date"`
	Weekday string         `json:"weekday"`
	Times   []string       `json:"times"`
	Doctors []DoctorColumn `json:"doctors"`
}

type DayStatus struct {
	Date    string       `json:"date"`
	Weekday string       `json:"weekday"`
	Status  DoctorStatus `json:"status"`
	Booked  int          `json:"booked"`
}

// BuildGrid renders one state per grid hour. A booked slot stays booked
// even when the schedule no longer covers it.
func (p Policy) BuildGrid(doctor *models.Doctor, date time.Time, appointments []models.Appointment) []SlotView {
	times := p.Times()
	out := make([]SlotView, 0, len(times))

	for i, t := range times {
		view := SlotView{Time: t}
		hour := p.GridStartHour + i

		var booked *models.Appointment
		if doctor != nil {
			booked = findBooking(doctor.ID, date, t, appointments, "")
		}

		switch {
		case booked != nil:
			view.State = SlotBooked
			view.AppointmentCode = booked.AppointmentCode
		case p.IsBreak(hour):
			view.State = SlotBreak
		case IsAvailable(doctor, date, t):
			view.State = SlotAvailable
		default:
			view.State = SlotNotAvailable
		}

		out = append(out, view)
	}
	return out
}

func (p Policy) Column(doctor *models.Doctor, date time.Time, appointments []models.Appointment) DoctorColumn {
	col := DoctorColumn{
		Status: p.Classify(doctor, date, appointments),
		Slots:  p.BuildGrid(doctor, date, appointments),
	}
	if doctor != nil {
		col.DoctorID = doctor.ID
		col.DoctorName = doctor.Name
		col.Poli = doctor.Poli
	}
	return col
}

// Compare builds the side-by-side grid for several doctors on one date.
func (p Policy) Compare(
	date time.Time,
	doctors []*models.Doctor,
	appointments map[uint][]models.Appointment,
) Comparison {

	cmp := Comparison{
		Date:    date.Format(DateLayout),
		Weekday: Weekday(date),
		Times:   p.Times(),
		Doctors: make([]DoctorColumn, 0, len(doctors)),
	}
	for _, d := range doctors {
		var aps []models.Appointment
		if d != nil {
			aps = appointments[d.ID]
		}
		cmp.Doctors = append(cmp.Doctors, p.Column(d, date, aps))
	}
	return cmp
}

// Calendar classifies every date in [from, to] inclusive.
func (p Policy) Calendar(
	doctor *models.Doctor,
	from time.Time,
	to time.Time,
	appointments []models.Appointment,
) []DayStatus {

	var out []DayStatus
	for d := DateOnly(from); !d.After(DateOnly(to)); d = d.AddDate(0, 0, 1) {
		booked := 0
		if doctor != nil {
			booked = CountBooked(doctor.ID, d, appointments)
		}
		out = append(out, DayStatus{
			Date:    d.Format(DateLayout),
			Weekday: Weekday(d),
			Status:  p.Classify(doctor, d, appointments),
			Booked:  booked,
		})
	}
	return out
}
