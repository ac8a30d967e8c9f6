package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/LodgeBookingService/internal/api/handlers"
	checkAvailability "github.com/m04kA/LodgeBookingService/internal/usecase/check_availability"
	"github.com/m04kA/LodgeBookingService/pkg/types"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректная дата, ожидается YYYY-MM-DD"
	msgInvalidRange       = "дата заезда должна быть раньше даты выезда"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/availability/check
// Занятость не ошибка: ответ 200 с available=false и списком броней
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability/check - Invalid request body: %v", err)
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
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("POST /availability/check - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, checkAvailability.ErrInvalidRange):
			h.logger.Warn("POST /availability/check - Invalid range: room_id=%s, %s..%s", req.RoomID, req.Checkin, req.Checkout)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("POST /availability/check - Failed to check availability: room_id=%s, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability/check - Checked: room_id=%s, %s..%s, available=%t",
		req.RoomID, req.Checkin, req.Checkout, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
