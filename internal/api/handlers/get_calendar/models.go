package get_calendar

import (
	reservationModels "github.com/m04kA/LodgeBookingService/internal/service/reservations/models"
	roomModels "github.com/m04kA/LodgeBookingService/internal/service/rooms/models"
	getCalendar "github.com/m04kA/LodgeBookingService/internal/usecase/get_calendar"
	"github.com/m04kA/LodgeBookingService/pkg/types"
)

// EntryResponse бронь в строке календаря
type EntryResponse struct {
	reservationModels.ReservationResponse
	StartsBeforeWindow bool `json:"startsBeforeWindow"`
	EndsAfterWindow    bool `json:"endsAfterWindow"`
}

// RowResponse строка календаря
type RowResponse struct {
	Room         roomModels.RoomResponse `json:"room"`
	Reservations []EntryResponse         `json:"reservations"`
}

// CalendarResponse HTTP response model
type CalendarResponse struct {
	From types.Date    `json:"from"`
	To   types.Date    `json:"to"`
	Days int           `json:"days"`
	Rows []RowResponse `json:"rows"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	rows := make([]RowResponse, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		entries := make([]EntryResponse, 0, len(row.Reservations))
		for _, e := range row.Reservations {
			res := reservationModels.FromDomainReservation(e.Reservation)
			if res == nil {
				continue
			}
			entries = append(entries, EntryResponse{
				ReservationResponse: *res,
				StartsBeforeWindow:  e.StartsBeforeWindow,
				EndsAfterWindow:     e.EndsAfterWindow,
			})
		}

		room := roomModels.FromDomainRoom(row.Room)
		if room == nil {
			continue
		}
		rows = append(rows, RowResponse{Room: *room, Reservations: entries})
	}

	return &CalendarResponse{
		From: resp.From,
		To:   resp.To,
		Days: resp.Days,
		Rows: rows,
	}
}
