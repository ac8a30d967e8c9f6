package update_reservation_dates

import "github.com/m04kA/LodgeBookingService/pkg/types"

// Request перенос брони на другие даты и, опционально, в другой номер
type Request struct {
	ID       int64
	RoomID   *string // nil = остаться в текущем номере
	Checkin  types.Date
	Checkout types.Date
}
