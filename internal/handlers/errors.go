package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

// writeError maps use case errors onto the HTTP error envelope.
func writeError(c *gin.Context, err error) {
	var ve httperr.ValidationError

	switch {
	case errors.As(err, &ve):
		httperr.Validation(c, ve)

	case errors.Is(err, domain.ErrSlotUnavailable):
		httperr.Conflict(c, "slot_unavailable", "This slot is no longer available. Please pick another slot.")

	case errors.Is(err, domain.ErrAppointmentNotFound):
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")

	case errors.Is(err, domain.ErrDoctorNotFound):
		httperr.NotFound(c, "doctor_not_found", "Doctor not found.")

	case errors.Is(err, domain.ErrInvalidState):
		httperr.Unprocessable(c, "invalid_state", "The appointment cannot move to that status.")

	default:
		_ = c.Error(err)
		httperr.Internal(c, "persistence_error", "Could not complete the request. Please try again.")
	}
}

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		httperr.Validation(c, httperr.ValidationError{Field: param, Reason: "must be a positive integer"})
		return 0, false
	}
	return uint(id), true
}

func queryID(c *gin.Context, key string) (uint, bool) {
	id, err := strconv.ParseUint(c.Query(key), 10, 64)
	if err != nil || id == 0 {
		httperr.Validation(c, httperr.ValidationError{Field: key, Reason: "must be a positive integer"})
		return 0, false
	}
	return uint(id), true
}

func queryInt(c *gin.Context, key string) (int, bool) {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		httperr.Validation(c, httperr.ValidationError{Field: key, Reason: "must be an integer"})
		return 0, false
	}
	return n, true
}
