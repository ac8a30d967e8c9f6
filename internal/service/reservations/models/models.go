package models

import (
	"time"

	"github.com/m04kA/LodgeBookingService/internal/domain"
	"github.com/m04kA/LodgeBookingService/pkg/types"
)

// Request модели

// CancelReservationRequest запрос на отмену брони
type CancelReservationRequest struct {
	Reason string `json:"reason"`
}

// UpdateStatusRequest запрос на смену статуса брони
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ListReservationsRequest фильтр списка броней
type ListReservationsRequest struct {
	RoomIDs          []string
	From             *types.Date
	To               *types.Date
	IncludeCancelled bool
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListReservationsRequest) ToDomainFilter() domain.ReservationFilter {
	return domain.ReservationFilter{
		RoomIDs:          r.RoomIDs,
		From:             r.From,
		To:               r.To,
		IncludeCancelled: r.IncludeCancelled,
	}
}

// Response модели

// ReservationResponse ответ с данными брони
type ReservationResponse struct {
	ID       int64      `json:"id"`
	RoomID   string     `json:"roomId"`
	BatchID  *string    `json:"batchId,omitempty"`
	ClientID *int64     `json:"clientId,omitempty"`
	AgencyID *int64     `json:"agencyId,omitempty"`
	Checkin  types.Date `json:"checkin"`  // "2026-03-03"
	Checkout types.Date `json:"checkout"` // выезд, ночь не занята
	Nights   int        `json:"nights"`
	Status   string     `json:"status"`
	Guests   int        `json:"guests"`
	Notes    *string    `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком броней
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:                 r.ID,
		RoomID:             r.RoomID,
		BatchID:            r.BatchID,
		ClientID:           r.ClientID,
		AgencyID:           r.AgencyID,
		Checkin:            r.Checkin,
		Checkout:           r.Checkout,
		Nights:             types.DiffDays(r.Checkin, r.Checkout),
		Status:             string(r.Status),
		Guests:             r.Guests,
		Notes:              r.Notes,
		CancellationReason: r.CancellationReason,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}

	if r.CancelledAt != nil {
		cancelledStr := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, res := range reservations {
		if r := FromDomainReservation(res); r != nil {
			resp.Reservations = append(resp.Reservations, *r)
		}
	}

	return resp
}
