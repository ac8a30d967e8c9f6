package cancel_reservation

import (
	"github.com/m04kA/LodgeBookingService/internal/service/reservations/models"
	"github.com/m04kA/LodgeBookingService/pkg/ptr"
)

// CancelReservationRequest HTTP request model
type CancelReservationRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CancelReservationRequest) ToServiceRequest() *models.CancelReservationRequest {
	return &models.CancelReservationRequest{Reason: ptr.Value(r.CancellationReason)}
}
