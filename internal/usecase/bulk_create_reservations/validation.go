package bulk_create_reservations

import (
	"fmt"

	"github.com/m04kA/LodgeBookingService/internal/domain"
	"github.com/m04kA/LodgeBookingService/internal/occupancy"
)

func validateRequest(req *Request, maxSlots int) error {
	if len(req.Slots) == 0 {
		return fmt.Errorf("%w: selection is empty", ErrInvalidInput)
	}
	if len(req.Slots) > maxSlots {
		return fmt.Errorf("%w: %d slots, limit is %d", ErrTooManySlots, len(req.Slots), maxSlots)
	}
	if req.Guests < 0 || req.Guests > domain.MaxGuests {
		return fmt.Errorf("%w: guests must be between 0 and %d", ErrInvalidInput, domain.MaxGuests)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes longer than %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	switch req.Status {
	case "", domain.StatusPending, domain.StatusConfirmed:
	default:
		return fmt.Errorf("%w: reservations can only be created as pending or confirmed", ErrInvalidInput)
	}
	return nil
}

func validateStayLength(ranges []domain.Range, maxNights int) error {
	for _, r := range ranges {
		if nights := occupancy.CountNights(r.Checkin, r.Checkout); nights > maxNights {
			return fmt.Errorf("%w: room %s %s..%s is %d nights, limit is %d",
				ErrStayTooLong, r.RoomID, r.Checkin, r.Checkout, nights, maxNights)
		}
	}
	return nil
}

// validateRooms проверяет, что все номера выделения существуют, активны и вмещают гостей
func validateRooms(ranges []domain.Range, rooms []*domain.Room, guests int) error {
	byID := make(map[string]*domain.Room, len(rooms))
	for _, room := range rooms {
		byID[room.ID] = room
	}

	for _, r := range ranges {
		room, ok := byID[r.RoomID]
		if !ok {
			return fmt.Errorf("%w: %s", ErrRoomNotFound, r.RoomID)
		}
		if !room.IsActive {
			return fmt.Errorf("%w: %s", ErrRoomInactive, r.RoomID)
		}
		if room.Capacity > 0 && guests > room.Capacity {
			return fmt.Errorf("%w: room %s sleeps %d, requested %d guests", ErrInvalidInput, room.ID, room.Capacity, guests)
		}
	}
	return nil
}
