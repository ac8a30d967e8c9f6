package create_reservation

import (
	"github.com/m04kA/LodgeBookingService/internal/domain"
	"github.com/m04kA/LodgeBookingService/pkg/types"
)

// Request модель запроса на создание одной брони
type Request struct {
	RoomID   string
	Checkin  types.Date
	Checkout types.Date // не включается: ночь выезда свободна
	ClientID *int64
	AgencyID *int64
	Guests   int // 0 = domain.DefaultGuests
	Notes    *string
	Status   domain.ReservationStatus // пусто = pending
}
