package check_availability

import (
	"github.com/m04kA/LodgeBookingService/internal/service/reservations/models"
	checkAvailability "github.com/m04kA/LodgeBookingService/internal/usecase/check_availability"
	"github.com/m04kA/LodgeBookingService/pkg/types"
)

// CheckAvailabilityRequest HTTP request model
type CheckAvailabilityRequest struct {
	RoomID    string     `json:"roomId" validate:"required"`
	Checkin   types.Date `json:"checkin" validate:"required"`
	Checkout  types.Date `json:"checkout" validate:"required"`
	ExcludeID *int64     `json:"excludeReservationId,omitempty" validate:"omitempty,gt=0"`
}

// CheckAvailabilityResponse HTTP response model
type CheckAvailabilityResponse struct {
	Available bool                         `json:"available"`
	Nights    int                          `json:"nights"`
	Conflicts []models.ReservationResponse `json:"conflicts"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckAvailabilityRequest) ToUseCaseRequest() *checkAvailability.Request {
	return &checkAvailability.Request{
		RoomID:    r.RoomID,
		Checkin:   r.Checkin,
		Checkout:  r.Checkout,
		ExcludeID: r.ExcludeID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *CheckAvailabilityResponse {
	return &CheckAvailabilityResponse{
		Available: resp.Available,
		Nights:    resp.Nights,
		Conflicts: models.FromDomainReservationList(resp.Conflicts).Reservations,
	}
}
