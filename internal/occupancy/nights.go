package occupancy

import (
	"github.com/m04kA/LodgeBookingService/internal/domain"
	"github.com/m04kA/LodgeBookingService/pkg/types"
)

// CountNights returns the number of occupied nights, checkout being exclusive
func CountNights(checkin, checkout types.Date) int {
	return types.DiffDays(checkin, checkout)
}

// ValidateRange requires checkin to be strictly before checkout
func ValidateRange(checkin, checkout types.Date) Result {
	if checkin.Compare(checkout) >= 0 {
		return invalid(&RangeError{Checkin: checkin, Checkout: checkout})
	}
	return valid()
}

// ValidateWithinWindow validates a range shown inside a calendar window.
// A stay may start before windowStart or end after windowEnd; clamping is up to
// the renderer, so only the range itself is checked.
func ValidateWithinWindow(r domain.Range, windowStart, windowEnd types.Date) Result {
	return ValidateRange(r.Checkin, r.Checkout)
}
