package bulk_create_reservations

import "github.com/m04kA/LodgeBookingService/internal/domain"

// Request создание броней из выделения в календаре
type Request struct {
	Slots    []domain.Slot
	ClientID *int64
	AgencyID *int64
	Guests   int     // 0 = domain.DefaultGuests
	Notes    *string // общие для всех броней пачки
	Status   domain.ReservationStatus
}

// Response созданные брони с общим BatchID
type Response struct {
	BatchID      string
	Reservations []*domain.Reservation
}
