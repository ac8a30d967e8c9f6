package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/LodgeBookingService/internal/api/handlers"
	"github.com/m04kA/LodgeBookingService/internal/domain"
	"github.com/m04kA/LodgeBookingService/internal/service/reservations/models"
	createReservation "github.com/m04kA/LodgeBookingService/internal/usecase/create_reservation"
	"github.com/m04kA/LodgeBookingService/pkg/types"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректная дата, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные брони"
	msgInvalidRange       = "дата заезда должна быть раньше даты выезда"
	msgStayTooLong        = "слишком длинное проживание"
	msgRoomNotFound       = "номер не найден"
	msgRoomInactive       = "номер выведен из продажи"
	msgConflict           = "выбранные даты уже заняты"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		if errors.Is(err, types.ErrInvalidDate) {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err, msgInvalidRequestBody))
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput+": "+handlers.Cause(err, createReservation.ErrInvalidInput))

		case errors.Is(err, createReservation.ErrInvalidRange):
			h.logger.Warn("POST /reservations - Invalid range: room_id=%s, %s..%s", req.RoomID, req.Checkin, req.Checkout)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, createReservation.ErrStayTooLong):
			h.logger.Warn("POST /reservations - Stay too long: %v", err)
			handlers.RespondBadRequest(w, msgStayTooLong+": "+handlers.Cause(err, createReservation.ErrStayTooLong))

		case errors.Is(err, createReservation.ErrRoomNotFound):
			h.logger.Warn("POST /reservations - Room not found: room_id=%s", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createReservation.ErrRoomInactive):
			h.logger.Warn("POST /reservations - Room inactive: room_id=%s", req.RoomID)
			handlers.RespondUnprocessable(w, msgRoomInactive)

		case errors.Is(err, domain.ErrConflict):
			h.logger.Warn("POST /reservations - Conflict: %v", err)
			handlers.RespondReservationConflict(w, msgConflict, err)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: room_id=%s, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, room_id=%s",
		result.ID, result.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainReservation(result))
}
