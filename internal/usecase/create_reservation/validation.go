package create_reservation

import (
	"fmt"

	"github.com/m04kA/LodgeBookingService/internal/domain"
	"github.com/m04kA/LodgeBookingService/internal/occupancy"
)

func validateRequest(req *Request, maxStayNights int) error {
	if req.RoomID == "" {
		return fmt.Errorf("%w: room is required", ErrInvalidInput)
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
		return fmt.Errorf("%w: reservation can only be created as pending or confirmed", ErrInvalidInput)
	}

	if verdict := occupancy.ValidateRange(req.Checkin, req.Checkout); !verdict.Valid {
		return fmt.Errorf("%w: %w", ErrInvalidRange, verdict.Err)
	}
	if nights := occupancy.CountNights(req.Checkin, req.Checkout); nights > maxStayNights {
		return fmt.Errorf("%w: %d nights, limit is %d", ErrStayTooLong, nights, maxStayNights)
	}
	return nil
}

func validateRoom(room *domain.Room, guests int) error {
	if !room.IsActive {
		return fmt.Errorf("%w: %s", ErrRoomInactive, room.ID)
	}
	if room.Capacity > 0 && guests > room.Capacity {
		return fmt.Errorf("%w: room %s sleeps %d, requested %d guests", ErrInvalidInput, room.ID, room.Capacity, guests)
	}
	return nil
}
