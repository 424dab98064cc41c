package appointment

import (
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// Policy describes the visible booking grid.
type Policy struct {
	GridStartHour int
	GridEndHour   int
	BreakHours    []int
}

func DefaultPolicy() Policy {
	return Policy{GridStartHour: 9, GridEndHour: 17}
}

func (p Policy) IsBreak(hour int) bool {
	for _, b := range p.BreakHours {
		if b == hour {
			return true
		}
	}
	return false
}

// Times lists the grid slots, break hours included.
func (p Policy) Times() []string {
	var out []string
	for h := p.GridStartHour; h < p.GridEndHour; h++ {
		out = append(out, FormatClock(h*60))
	}
	return out
}

// Classify is Classify with break hours removed from the capacity.
func (p Policy) Classify(doctor *models.Doctor, date time.Time, appointments []models.Appointment) DoctorStatus {
	if len(p.BreakHours) == 0 {
		return Classify(doctor, date, appointments)
	}
	return classify(doctor, date, appointments, p.IsBreak)
}
