package domain

import "github.com/m04kA/LodgeBookingService/pkg/types"

// Slot is a single (room, night) pick from the calendar grid
type Slot struct {
	RoomID string
	Date   string // YYYY-MM-DD
}

// Range is a contiguous occupancy of one room. Checkout is exclusive:
// the night of Checkout itself is not occupied.
type Range struct {
	RoomID   string
	Checkin  types.Date
	Checkout types.Date
}

// Nights returns the number of occupied nights
func (r Range) Nights() int {
	return types.DiffDays(r.Checkin, r.Checkout)
}
