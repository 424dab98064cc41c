package httperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsBusiness_Wrapped(t *testing.T) {
	err := fmt.Errorf("create: %w", ErrBusiness("slot_unavailable"))

	assert.True(t, IsBusiness(err, "slot_unavailable"))
	assert.False(t, IsBusiness(err, "invalid_state"))
	assert.True(t, errors.Is(err, ErrBusiness("slot_unavailable")))
}

func TestValidationError(t *testing.T) {
	err := fmt.Errorf("wrap: %w", ErrValidation("doctor_id", "is required"))

	assert.True(t, IsValidation(err))
	assert.Equal(t, "wrap: doctor_id: is required", err.Error())
}

func TestPersistenceError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := ErrPersistence("create_appointment", cause)

	assert.True(t, IsPersistence(err))
	assert.ErrorIs(t, err, cause)
	assert.False(t, IsPersistence(cause))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23P01"}))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
}

func TestViolatedConstraint(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "ux_appointments_active_slot"})

	assert.Equal(t, "ux_appointments_active_slot", ViolatedConstraint(err))
	assert.Empty(t, ViolatedConstraint(errors.New("boom")))
}
