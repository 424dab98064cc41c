package dto

import "github.com/BruksfildServices01/clinic-scheduler/internal/models"

type ScheduleWindowDTO struct {
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsActive  bool   `json:"is_active"`
}

type DoctorDTO struct {
	ID             uint                `json:"id"`
	Name           string              `json:"name"`
	Specialization string              `json:"specialization"`
	Poli           string              `json:"poli"`
	Schedule       []ScheduleWindowDTO `json:"schedule"`
}

func FromDoctor(d *models.Doctor) DoctorDTO {
	out := DoctorDTO{
		ID:             d.ID,
		Name:           d.Name,
		Specialization: d.Specialization,
		Poli:           d.Poli,
		Schedule:       make([]ScheduleWindowDTO, 0, len(d.Schedules)),
	}
	for _, w := range d.Schedules {
		out.Schedule = append(out.Schedule, ScheduleWindowDTO{
			DayOfWeek: w.DayOfWeek,
			StartTime: w.StartTime,
			EndTime:   w.EndTime,
			IsActive:  w.IsActive,
		})
	}
	return out
}
