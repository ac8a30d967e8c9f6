package bulk_create_reservations

import (
	"github.com/m04kA/LodgeBookingService/internal/domain"
	"github.com/m04kA/LodgeBookingService/internal/service/reservations/models"
	bulkCreate "github.com/m04kA/LodgeBookingService/internal/usecase/bulk_create_reservations"
)

// SlotRequest ячейка календаря: номер и ночь
type SlotRequest struct {
	RoomID string `json:"roomId" validate:"required"`
	Date   string `json:"date" validate:"required"`
}

// BulkCreateRequest HTTP request model
type BulkCreateRequest struct {
	Slots    []SlotRequest `json:"slots" validate:"required,min=1,dive"`
	ClientID *int64        `json:"clientId,omitempty" validate:"omitempty,gt=0"`
	AgencyID *int64        `json:"agencyId,omitempty" validate:"omitempty,gt=0"`
	Guests   int           `json:"guests,omitempty" validate:"gte=0"`
	Notes    *string       `json:"notes,omitempty"`
	Status   string        `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed"`
}

// BulkCreateResponse HTTP response model
type BulkCreateResponse struct {
	BatchID      string                       `json:"batchId"`
	Reservations []models.ReservationResponse `json:"reservations"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BulkCreateRequest) ToUseCaseRequest() *bulkCreate.Request {
	slots := make([]domain.Slot, len(r.Slots))
	for i, s := range r.Slots {
		slots[i] = domain.Slot{RoomID: s.RoomID, Date: s.Date}
	}

	return &bulkCreate.Request{
		Slots:    slots,
		ClientID: r.ClientID,
		AgencyID: r.AgencyID,
		Guests:   r.Guests,
		Notes:    r.Notes,
		Status:   domain.ReservationStatus(r.Status),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bulkCreate.Response) *BulkCreateResponse {
	return &BulkCreateResponse{
		BatchID:      resp.BatchID,
		Reservations: models.FromDomainReservationList(resp.Reservations).Reservations,
	}
}
