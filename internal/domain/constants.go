package domain

// Default configuration values
const (
	DefaultMaxCalendarDays   = 62
	DefaultMaxStayNights     = 90
	DefaultMaxSelectionSlots = 500
	DefaultGuests            = 1
)

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxGuests                   = 50
)

// AllStatuses список всех статусов бронирования
var AllStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusCheckedIn,
	StatusCheckedOut,
	StatusCancelled,
}
