package appointment

import "github.com/BruksfildServices01/clinic-scheduler/internal/httperr"

var (
	// ErrSlotUnavailable is returned when the guard rejects a booking. The
	// caller must let the user pick another slot; it is never retried.
	ErrSlotUnavailable = httperr.ErrBusiness("slot_unavailable")

	// ErrSlotTaken is returned by repositories when the storage uniqueness
	// constraint rejects a write.
	ErrSlotTaken = httperr.ErrBusiness("slot_taken")

	ErrDoctorNotFound      = httperr.ErrBusiness("doctor_not_found")
	ErrAppointmentNotFound = httperr.ErrBusiness("appointment_not_found")
	ErrInvalidState        = httperr.ErrBusiness("invalid_state")
)
