package occupancy

import (
	"fmt"
	"slices"
	"sort"

	"github.com/m04kA/LodgeBookingService/internal/domain"
	"github.com/m04kA/LodgeBookingService/pkg/types"
)

// MergeConsecutive converts (room, night) picks into the minimal set of contiguous
// ranges, independently per room. Duplicated picks collapse, unsorted input is sorted,
// and a gap of one or more free nights always starts a new range.
//
// Ranges come out grouped by room (rooms ordered by id) and ascending by checkin
// within a room. A single bad slot fails the whole call with ErrMalformedSlot.
func MergeConsecutive(slots []domain.Slot) ([]domain.Range, error) {
	byRoom, err := groupSlots(slots)
	if err != nil {
		return nil, err
	}

	rooms := make([]string, 0, len(byRoom))
	for roomID := range byRoom {
		rooms = append(rooms, roomID)
	}
	sort.Strings(rooms)

	ranges := make([]domain.Range, 0, len(rooms))
	for _, roomID := range rooms {
		ranges = append(ranges, mergeDays(roomID, byRoom[roomID])...)
	}

	return ranges, nil
}

// ExpandRanges is the inverse of MergeConsecutive: one slot per occupied night
func ExpandRanges(ranges []domain.Range) []domain.Slot {
	slots := make([]domain.Slot, 0)
	for _, r := range ranges {
		for d := r.Checkin; d.Before(r.Checkout); d = d.AddDays(1) {
			slots = append(slots, domain.Slot{RoomID: r.RoomID, Date: d.String()})
		}
	}
	return slots
}

func groupSlots(slots []domain.Slot) (map[string][]types.Date, error) {
	seen := make(map[string]map[types.Date]struct{})

	for i, slot := range slots {
		if slot.RoomID == "" {
			return nil, fmt.Errorf("%w: slot #%d has no room", ErrMalformedSlot, i)
		}
		if slot.Date == "" {
			return nil, fmt.Errorf("%w: slot #%d (room %s) has no date", ErrMalformedSlot, i, slot.RoomID)
		}

		day, err := types.ParseDate(slot.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: slot #%d (room %s): %w", ErrMalformedSlot, i, slot.RoomID, err)
		}

		if seen[slot.RoomID] == nil {
			seen[slot.RoomID] = make(map[types.Date]struct{})
		}
		seen[slot.RoomID][day] = struct{}{}
	}

	byRoom := make(map[string][]types.Date, len(seen))
	for roomID, days := range seen {
		list := make([]types.Date, 0, len(days))
		for day := range days {
			list = append(list, day)
		}
		slices.SortFunc(list, types.Date.Compare)
		byRoom[roomID] = list
	}

	return byRoom, nil
}

// mergeDays expects days sorted ascending and without duplicates
func mergeDays(roomID string, days []types.Date) []domain.Range {
	if len(days) == 0 {
		return nil
	}

	ranges := make([]domain.Range, 0)
	start, end := days[0], days[0]

	for _, next := range days[1:] {
		if types.DiffDays(end, next) == 1 {
			end = next
			continue
		}
		ranges = append(ranges, domain.Range{RoomID: roomID, Checkin: start, Checkout: end.AddDays(1)})
		start, end = next, next
	}

	return append(ranges, domain.Range{RoomID: roomID, Checkin: start, Checkout: end.AddDays(1)})
}
