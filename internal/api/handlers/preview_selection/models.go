package preview_selection

import (
	"github.com/m04kA/LodgeBookingService/internal/domain"
	"github.com/m04kA/LodgeBookingService/internal/service/reservations/models"
	previewSelection "github.com/m04kA/LodgeBookingService/internal/usecase/preview_selection"
	"github.com/m04kA/LodgeBookingService/pkg/types"
)

// SlotRequest ячейка календаря: номер и ночь
type SlotRequest struct {
	RoomID string `json:"roomId" validate:"required"`
	Date   string `json:"date" validate:"required"` // "2026-03-03"
}

// PreviewSelectionRequest HTTP request model
type PreviewSelectionRequest struct {
	Slots []SlotRequest `json:"slots" validate:"required,min=1,dive"`
}

// RangeResponse отрезок выделения
type RangeResponse struct {
	RoomID    string                       `json:"roomId"`
	Checkin   types.Date                   `json:"checkin"`
	Checkout  types.Date                   `json:"checkout"`
	Nights    int                          `json:"nights"`
	Available bool                         `json:"available"`
	Conflicts []models.ReservationResponse `json:"conflicts"`
}

// PreviewSelectionResponse HTTP response model
type PreviewSelectionResponse struct {
	Valid     bool            `json:"valid"`
	Message   string          `json:"message,omitempty"`
	Available bool            `json:"available"`
	Ranges    []RangeResponse `json:"ranges"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *PreviewSelectionRequest) ToUseCaseRequest() *previewSelection.Request {
	slots := make([]domain.Slot, len(r.Slots))
	for i, s := range r.Slots {
		slots[i] = domain.Slot{RoomID: s.RoomID, Date: s.Date}
	}
	return &previewSelection.Request{Slots: slots}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *previewSelection.Response) *PreviewSelectionResponse {
	ranges := make([]RangeResponse, len(resp.Ranges))
	for i, r := range resp.Ranges {
		ranges[i] = RangeResponse{
			RoomID:    r.Range.RoomID,
			Checkin:   r.Range.Checkin,
			Checkout:  r.Range.Checkout,
			Nights:    r.Nights,
			Available: r.Available,
			Conflicts: models.FromDomainReservationList(r.Conflicts).Reservations,
		}
	}

	return &PreviewSelectionResponse{
		Valid:     resp.Valid,
		Message:   resp.Message,
		Available: resp.Available,
		Ranges:    ranges,
	}
}
