package models

import "time"

// Doctor is master data owned by the clinic registry; the scheduler only reads it.
type Doctor struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Name           string `gorm:"size:100;not null" json:"name"`
	Specialization string `gorm:"size:100" json:"specialization"`
	Poli           string `gorm:"size:50;index" json:"poli"`

	Schedules []ScheduleWindow `gorm:"foreignKey:DoctorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"schedule"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
