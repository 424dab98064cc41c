package slotlock

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrLocked is returned when another booking attempt holds the slot.
var ErrLocked = errors.New("slot is locked by another booking")

// Locker serializes booking attempts on the same slot key.
type Locker interface {
	Lock(ctx context.Context, key string) (release func(), err error)
}

func Key(doctorID uint, date time.Time, slot string) string {
	return fmt.Sprintf("slot:%d:%s:%s", doctorID, date.Format("2006-01-02"), slot)
}
