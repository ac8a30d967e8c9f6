package create_reservation

import (
	"github.com/m04kA/LodgeBookingService/internal/domain"
	createReservation "github.com/m04kA/LodgeBookingService/internal/usecase/create_reservation"
	"github.com/m04kA/LodgeBookingService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	RoomID   string     `json:"roomId" validate:"required"`
	Checkin  types.Date `json:"checkin" validate:"required"`
	Checkout types.Date `json:"checkout" validate:"required"` // ночь выезда не занята
	ClientID *int64     `json:"clientId,omitempty" validate:"omitempty,gt=0"`
	AgencyID *int64     `json:"agencyId,omitempty" validate:"omitempty,gt=0"`
	Guests   int        `json:"guests,omitempty" validate:"gte=0"`
	Notes    *string    `json:"notes,omitempty"`
	Status   string     `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() *createReservation.Request {
	return &createReservation.Request{
		RoomID:   r.RoomID,
		Checkin:  r.Checkin,
		Checkout: r.Checkout,
		ClientID: r.ClientID,
		AgencyID: r.AgencyID,
		Guests:   r.Guests,
		Notes:    r.Notes,
		Status:   domain.ReservationStatus(r.Status),
	}
}
