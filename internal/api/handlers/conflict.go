package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/LodgeBookingService/internal/domain"
	"github.com/m04kA/LodgeBookingService/internal/service/reservations/models"
	"github.com/m04kA/LodgeBookingService/pkg/types"
)

// StayConflictResponse отрезок, который не удалось забронировать, и мешающие брони
type StayConflictResponse struct {
	RoomID       string                       `json:"roomId"`
	Checkin      types.Date                   `json:"checkin"`
	Checkout     types.Date                   `json:"checkout"`
	Reservations []models.ReservationResponse `json:"reservations"`
}

// ConflictResponse тело ответа 409
type ConflictResponse struct {
	Code      int                    `json:"code"`
	Message   string                 `json:"message"`
	Conflicts []StayConflictResponse `json:"conflicts"`
}

// RespondReservationConflict пишет 409 со списком конфликтующих броней.
// Если err не *domain.ConflictError, список пустой.
func RespondReservationConflict(w http.ResponseWriter, message string, err error) {
	resp := ConflictResponse{
		Code:      http.StatusConflict,
		Message:   message,
		Conflicts: []StayConflictResponse{},
	}

	var conflictErr *domain.ConflictError
	if errors.As(err, &conflictErr) {
		for _, c := range conflictErr.Conflicts {
			resp.Conflicts = append(resp.Conflicts, StayConflictResponse{
				RoomID:       c.Stay.RoomID,
				Checkin:      c.Stay.Checkin,
				Checkout:     c.Stay.Checkout,
				Reservations: models.FromDomainReservationList(c.Reservations).Reservations,
			})
		}
	}

	RespondJSON(w, http.StatusConflict, resp)
}

// Cause отрезает от текста ошибки префикс sentinel, оставляя подробности для клиента
func Cause(err, sentinel error) string {
	return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
}
