package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusExamined   Status = "examined"
	StatusDispensed  Status = "dispensed"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

var transitions = map[Status][]Status{
	StatusScheduled:  {StatusConfirmed},
	StatusConfirmed:  {StatusInProgress, StatusExamined},
	StatusInProgress: {StatusExamined},
	StatusExamined:   {StatusDispensed, StatusCompleted},
	StatusDispensed:  {StatusCompleted},
}

// ===============================
// Validations
// ===============================

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusInProgress, StatusExamined,
		StatusDispensed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransition allows the clinical flow forward and cancellation from any
// non-terminal state.
func CanTransition(from, to Status) error {
	if from.Terminal() || !to.Valid() {
		return ErrInvalidState
	}
	if to == StatusCancelled {
		return nil
	}
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return ErrInvalidState
}

func InitialStatus() Status {
	return StatusScheduled
}
