package occupancy

import "github.com/m04kA/LodgeBookingService/internal/domain"

// Result is the verdict of a validation. Business-rule violations are reported
// here instead of being returned as errors: they are expected and user-correctable.
type Result struct {
	Valid bool
	Err   error // *OverlapError or *RangeError when Valid is false
}

// Message returns the human readable reason, empty for valid results
func (r Result) Message() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// ConflictResult is the verdict of a single-candidate availability check
type ConflictResult struct {
	Available bool
	Conflicts []*domain.Reservation
}

func valid() Result {
	return Result{Valid: true}
}

func invalid(err error) Result {
	return Result{Valid: false, Err: err}
}
