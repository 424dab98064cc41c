package models

import "time"

type Appointment struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	AppointmentCode string `gorm:"size:32;uniqueIndex;not null" json:"appointment_code"`

	DoctorID uint   `gorm:"index:idx_appointments_doctor_day" json:"doctor_id"`
	Doctor   Doctor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	PatientNoRM string `gorm:"size:32;not null" json:"patient_no_rm"`

	// AppointmentDate holds the civil date at UTC midnight.
	AppointmentDate time.Time `gorm:"type:date;index:idx_appointments_doctor_day" json:"appointment_date"`
	AppointmentTime string    `gorm:"size:5;not null" json:"appointment_time"`

	Status    string `gorm:"size:20;default:'scheduled'" json:"status"`
	Type      string `gorm:"size:30" json:"type"`
	Poli      string `gorm:"size:50" json:"poli"`
	Notes     string `gorm:"size:255" json:"notes"`
	Complaint string `gorm:"size:255" json:"complaint"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
