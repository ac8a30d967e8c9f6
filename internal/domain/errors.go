package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConflict is wrapped by every ConflictError
var ErrConflict = errors.New("stay conflicts with existing reservations")

// StayConflict pairs a requested stay with the reservations it collides with
type StayConflict struct {
	Stay         Range
	Reservations []*Reservation
}

// ConflictError reports every requested stay that collides with stored reservations
type ConflictError struct {
	Conflicts []StayConflict
}

func (e *ConflictError) Error() string {
	parts := make([]string, 0, len(e.Conflicts))
	for _, c := range e.Conflicts {
		parts = append(parts, fmt.Sprintf("room %s %s..%s conflicts with %d existing reservation(s)",
			c.Stay.RoomID, c.Stay.Checkin, c.Stay.Checkout, len(c.Reservations)))
	}
	if len(parts) == 0 {
		return ErrConflict.Error()
	}
	return strings.Join(parts, "; ")
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
