package update_reservation_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/LodgeBookingService/internal/api/handlers"
	"github.com/m04kA/LodgeBookingService/internal/domain"
	"github.com/m04kA/LodgeBookingService/internal/service/reservations/models"
	updateDates "github.com/m04kA/LodgeBookingService/internal/usecase/update_reservation_dates"
	"github.com/m04kA/LodgeBookingService/pkg/types"
)

const (
	msgInvalidReservationID = "некорректный ID брони"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректная дата, ожидается YYYY-MM-DD"
	msgInvalidRange         = "дата заезда должна быть раньше даты выезда"
	msgStayTooLong          = "слишком длинное проживание"
	msgNotFound             = "бронь не найдена"
	msgCannotUpdate         = "бронь нельзя перенести в текущем статусе"
	msgRoomNotFound         = "номер не найден"
	msgRoomInactive         = "номер выведен из продажи"
	msgConflict             = "выбранные даты уже заняты"
)

type Handler struct {
	useCase UpdateReservationDatesUseCase
	logger  Logger
}

func NewHandler(useCase UpdateReservationDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/reservations/{reservationId}/dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil || reservationID <= 0 {
		h.logger.Warn("PUT /reservations/{id}/dates - Invalid reservation ID: %s", mux.Vars(r)["reservationId"])
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req UpdateDatesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{id}/dates - Invalid request body: %v", err)
		if errors.Is(err, types.ErrInvalidDate) {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err, msgInvalidRequestBody))
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(reservationID))
	if err != nil {
		switch {
		case errors.Is(err, updateDates.ErrInvalidInput):
			h.logger.Warn("PUT /reservations/{id}/dates - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, updateDates.ErrInvalidRange):
			h.logger.Warn("PUT /reservations/{id}/dates - Invalid range: reservation_id=%d, %s..%s",
				reservationID, req.Checkin, req.Checkout)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, updateDates.ErrStayTooLong):
			h.logger.Warn("PUT /reservations/{id}/dates - Stay too long: %v", err)
			handlers.RespondBadRequest(w, msgStayTooLong+": "+handlers.Cause(err, updateDates.ErrStayTooLong))

		case errors.Is(err, updateDates.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/{id}/dates - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateDates.ErrCannotUpdate):
			h.logger.Warn("PUT /reservations/{id}/dates - Cannot update: reservation_id=%d", reservationID)
			handlers.RespondUnprocessable(w, msgCannotUpdate)

		case errors.Is(err, updateDates.ErrRoomNotFound):
			h.logger.Warn("PUT /reservations/{id}/dates - Room not found: %v", err)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, updateDates.ErrRoomInactive):
			h.logger.Warn("PUT /reservations/{id}/dates - Room inactive: %v", err)
			handlers.RespondUnprocessable(w, msgRoomInactive)

		case errors.Is(err, domain.ErrConflict):
			h.logger.Warn("PUT /reservations/{id}/dates - Conflict: %v", err)
			handlers.RespondReservationConflict(w, msgConflict, err)

		default:
			h.logger.Error("PUT /reservations/{id}/dates - Failed to update reservation: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservations/{id}/dates - Reservation updated successfully: reservation_id=%d, room_id=%s",
		result.ID, result.RoomID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainReservation(result))
}
