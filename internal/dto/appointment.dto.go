package dto

import (
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type AppointmentDTO struct {
	AppointmentCode string     `json:"appointment_code"`
	DoctorID        uint       `json:"doctor_id"`
	PatientNoRM     string     `json:"patient_no_rm"`
	AppointmentDate string     `json:"appointment_date"`
	AppointmentTime string     `json:"appointment_time"`
	Status          string     `json:"status"`
	Type            string     `json:"type"`
	Poli            string     `json:"poli"`
	Notes           string     `json:"notes"`
	Complaint       string     `json:"complaint"`
	CancelledAt     *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func FromAppointment(ap *models.Appointment) AppointmentDTO {
	return AppointmentDTO{
		AppointmentCode: ap.AppointmentCode,
		DoctorID:        ap.DoctorID,
		PatientNoRM:     ap.PatientNoRM,
		AppointmentDate: ap.AppointmentDate.Format("2006-01-02"),
		AppointmentTime: ap.AppointmentTime,
		Status:          ap.Status,
		Type:            ap.Type,
		Poli:            ap.Poli,
		Notes:           ap.Notes,
		Complaint:       ap.Complaint,
		CancelledAt:     ap.CancelledAt,
		CompletedAt:     ap.CompletedAt,
		CreatedAt:       ap.CreatedAt,
		UpdatedAt:       ap.UpdatedAt,
	}
}

func FromAppointments(aps []models.Appointment) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(aps))
	for i := range aps {
		out = append(out, FromAppointment(&aps[i]))
	}
	return out
}
