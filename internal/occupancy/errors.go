package occupancy

import (
	"errors"
	"fmt"

	"github.com/m04kA/LodgeBookingService/pkg/types"
)

var (
	// ErrMalformedSlot is returned when a slot misses its room or carries an unparseable day
	ErrMalformedSlot = errors.New("occupancy: malformed slot")

	// ErrOverlap is wrapped by every OverlapError
	ErrOverlap = errors.New("occupancy: ranges overlap")

	// ErrInvalidRange is wrapped by every RangeError
	ErrInvalidRange = errors.New("occupancy: checkin must be before checkout")
)

// OverlapError describes two ranges of the same room that share at least one night
type OverlapError struct {
	RoomID  string
	Current Interval
	Next    Interval
}

// Interval is a [Checkin, Checkout) pair used in error reports
type Interval struct {
	Checkin  types.Date
	Checkout types.Date
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("room %s: stay %s..%s overlaps stay %s..%s (checkout %s is after checkin %s)",
		e.RoomID,
		e.Current.Checkin, e.Current.Checkout,
		e.Next.Checkin, e.Next.Checkout,
		e.Current.Checkout, e.Next.Checkin,
	)
}

func (e *OverlapError) Unwrap() error {
	return ErrOverlap
}

// RangeError describes a range whose checkin is not strictly before its checkout
type RangeError struct {
	Checkin  types.Date
	Checkout types.Date
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid range %s..%s: checkin must be before checkout", e.Checkin, e.Checkout)
}

func (e *RangeError) Unwrap() error {
	return ErrInvalidRange
}
