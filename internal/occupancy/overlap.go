package occupancy

import (
	"slices"

	"github.com/m04kA/LodgeBookingService/internal/domain"
)

// Overlaps reports whether two ranges of the same room share at least one night.
// Touching ranges (a.Checkout == b.Checkin) do not overlap. Ranges of different
// rooms never overlap.
func Overlaps(a, b domain.Range) bool {
	if a.RoomID != b.RoomID {
		return false
	}
	return a.Checkin.Before(b.Checkout) && a.Checkout.After(b.Checkin)
}

// ValidateNoOverlaps checks that the ranges of every room are pairwise disjoint.
// Ranges are grouped by room and sorted by checkin, so comparing neighbours is enough.
// The first violation found is reported; an empty input is valid.
func ValidateNoOverlaps(ranges []domain.Range) Result {
	byRoom := make(map[string][]domain.Range)
	rooms := make([]string, 0)

	for _, r := range ranges {
		if res := ValidateRange(r.Checkin, r.Checkout); !res.Valid {
			return res
		}
		if _, ok := byRoom[r.RoomID]; !ok {
			rooms = append(rooms, r.RoomID)
		}
		byRoom[r.RoomID] = append(byRoom[r.RoomID], r)
	}
	slices.Sort(rooms)

	for _, roomID := range rooms {
		list := byRoom[roomID]
		slices.SortFunc(list, compareRanges)

		for i := 0; i+1 < len(list); i++ {
			current, next := list[i], list[i+1]
			if Overlaps(current, next) {
				return invalid(&OverlapError{
					RoomID:  roomID,
					Current: Interval{Checkin: current.Checkin, Checkout: current.Checkout},
					Next:    Interval{Checkin: next.Checkin, Checkout: next.Checkout},
				})
			}
		}
	}

	return valid()
}

// CheckConflict compares a candidate stay with reservations loaded from storage.
// Reservations of other rooms, cancelled ones and the one with excludeID
// (the reservation being edited) are ignored.
func CheckConflict(candidate domain.Range, existing []*domain.Reservation, excludeID *int64) ConflictResult {
	conflicts := make([]*domain.Reservation, 0)

	for _, res := range existing {
		if res == nil || res.RoomID != candidate.RoomID || res.IsCancelled() {
			continue
		}
		if excludeID != nil && res.ID == *excludeID {
			continue
		}
		if Overlaps(candidate, res.Range()) {
			conflicts = append(conflicts, res)
		}
	}

	return ConflictResult{
		Available: len(conflicts) == 0,
		Conflicts: conflicts,
	}
}

func compareRanges(a, b domain.Range) int {
	if c := a.Checkin.Compare(b.Checkin); c != 0 {
		return c
	}
	return a.Checkout.Compare(b.Checkout)
}
