package bulk_create_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/LodgeBookingService/internal/api/handlers"
	"github.com/m04kA/LodgeBookingService/internal/domain"
	bulkCreate "github.com/m04kA/LodgeBookingService/internal/usecase/bulk_create_reservations"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSelection   = "некорректное выделение"
	msgTooManySlots       = "выделено слишком много ячеек"
	msgStayTooLong        = "слишком длинное проживание"
	msgRoomNotFound       = "номер не найден"
	msgRoomInactive       = "номер выведен из продажи"
	msgConflict           = "выбранные даты уже заняты"
)

type Handler struct {
	useCase BulkCreateReservationsUseCase
	logger  Logger
}

func NewHandler(useCase BulkCreateReservationsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/bulk
// Создает все брони выделения или ни одной
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BulkCreateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/bulk - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err, msgInvalidRequestBody))
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, bulkCreate.ErrInvalidInput):
			h.logger.Warn("POST /reservations/bulk - Invalid selection: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSelection+": "+handlers.Cause(err, bulkCreate.ErrInvalidInput))

		case errors.Is(err, bulkCreate.ErrTooManySlots):
			h.logger.Warn("POST /reservations/bulk - Too many slots: %d", len(req.Slots))
			handlers.RespondBadRequest(w, msgTooManySlots)

		case errors.Is(err, bulkCreate.ErrStayTooLong):
			h.logger.Warn("POST /reservations/bulk - Stay too long: %v", err)
			handlers.RespondBadRequest(w, msgStayTooLong+": "+handlers.Cause(err, bulkCreate.ErrStayTooLong))

		case errors.Is(err, bulkCreate.ErrRoomNotFound):
			h.logger.Warn("POST /reservations/bulk - Room not found: %v", err)
			handlers.RespondNotFound(w, msgRoomNotFound+": "+handlers.Cause(err, bulkCreate.ErrRoomNotFound))

		case errors.Is(err, bulkCreate.ErrRoomInactive):
			h.logger.Warn("POST /reservations/bulk - Room inactive: %v", err)
			handlers.RespondUnprocessable(w, msgRoomInactive+": "+handlers.Cause(err, bulkCreate.ErrRoomInactive))

		case errors.Is(err, domain.ErrConflict):
			h.logger.Warn("POST /reservations/bulk - Conflict: %v", err)
			handlers.RespondReservationConflict(w, msgConflict, err)

		default:
			h.logger.Error("POST /reservations/bulk - Failed to create reservations: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/bulk - Reservations created successfully: batch_id=%s, count=%d",
		result.BatchID, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
