package update_reservation_dates

import (
	updateDates "github.com/m04kA/LodgeBookingService/internal/usecase/update_reservation_dates"
	"github.com/m04kA/LodgeBookingService/pkg/types"
)

// UpdateDatesRequest HTTP request model
type UpdateDatesRequest struct {
	RoomID   *string    `json:"roomId,omitempty" validate:"omitempty,min=1"` // перенос в другой номер
	Checkin  types.Date `json:"checkin" validate:"required"`
	Checkout types.Date `json:"checkout" validate:"required"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateDatesRequest) ToUseCaseRequest(id int64) *updateDates.Request {
	return &updateDates.Request{
		ID:       id,
		RoomID:   r.RoomID,
		Checkin:  r.Checkin,
		Checkout: r.Checkout,
	}
}
