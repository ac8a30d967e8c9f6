package check_availability

import (
	"github.com/m04kA/LodgeBookingService/internal/domain"
	"github.com/m04kA/LodgeBookingService/pkg/types"
)

// Request проверка свободности номера на даты
type Request struct {
	RoomID    string
	Checkin   types.Date
	Checkout  types.Date
	ExcludeID *int64 // бронь, которую сейчас редактируют
}

// Response результат проверки
type Response struct {
	Available bool
	Nights    int
	Conflicts []*domain.Reservation
}
