package domain

import (
	"time"

	"github.com/m04kA/LodgeBookingService/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending    ReservationStatus = "pending"
	StatusConfirmed  ReservationStatus = "confirmed"
	StatusCheckedIn  ReservationStatus = "checked_in"
	StatusCheckedOut ReservationStatus = "checked_out"
	StatusCancelled  ReservationStatus = "cancelled"
)

// Reservation represents a stay of one room between checkin (inclusive) and checkout (exclusive)
type Reservation struct {
	ID       int64
	RoomID   string
	BatchID  *string // shared by reservations created from one multi-room selection
	ClientID *int64
	AgencyID *int64
	Checkin  types.Date
	Checkout types.Date
	Status   ReservationStatus
	Guests   int
	Notes    *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Range returns the occupied range of the reservation
func (r *Reservation) Range() Range {
	return Range{RoomID: r.RoomID, Checkin: r.Checkin, Checkout: r.Checkout}
}

// IsCancelled returns true if the reservation no longer occupies its room
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// CanBeCancelled returns true if the reservation can be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// CanBeUpdated returns true if the reservation dates or room can still be changed
func (r *Reservation) CanBeUpdated() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// ReservationFilter selects reservations occupying at least one night of [From, To)
type ReservationFilter struct {
	RoomIDs          []string    // empty = all rooms
	From             *types.Date // nil = no lower bound
	To               *types.Date // nil = no upper bound
	IncludeCancelled bool
}

// ParseReservationStatus validates a status string
func ParseReservationStatus(status string) (ReservationStatus, bool) {
	s := ReservationStatus(status)
	for _, valid := range AllStatuses {
		if s == valid {
			return s, true
		}
	}
	return "", false
}

// CanTransitionTo returns true if the status may move forward to next.
// Cancellation has its own flow and is not a transition here.
func (r *Reservation) CanTransitionTo(next ReservationStatus) bool {
	switch r.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCheckedIn
	case StatusConfirmed:
		return next == StatusCheckedIn
	case StatusCheckedIn:
		return next == StatusCheckedOut
	default:
		return false
	}
}

// OverlapFilter selects live reservations of the given rooms that may collide with
// any of the ranges: the window spans from the earliest checkin to the latest checkout.
func OverlapFilter(ranges ...Range) ReservationFilter {
	if len(ranges) == 0 {
		return ReservationFilter{}
	}

	from, to := ranges[0].Checkin, ranges[0].Checkout
	seen := make(map[string]struct{}, len(ranges))
	roomIDs := make([]string, 0, len(ranges))

	for _, r := range ranges {
		if r.Checkin.Before(from) {
			from = r.Checkin
		}
		if r.Checkout.After(to) {
			to = r.Checkout
		}
		if _, ok := seen[r.RoomID]; !ok {
			seen[r.RoomID] = struct{}{}
			roomIDs = append(roomIDs, r.RoomID)
		}
	}

	return ReservationFilter{RoomIDs: roomIDs, From: &from, To: &to}
}
