package list_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/LodgeBookingService/internal/api/handlers"
	"github.com/m04kA/LodgeBookingService/internal/service/reservations"
	"github.com/m04kA/LodgeBookingService/internal/service/reservations/models"
)

const (
	msgInvalidDate             = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidIncludeCancelled = "некорректное значение includeCancelled"
	msgInvalidPeriod           = "начало периода должно быть раньше конца"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations
// Query params: roomId (можно несколько), from, to (YYYY-MM-DD), includeCancelled
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	from, err := handlers.QueryDate(r, "from")
	if err != nil {
		h.logger.Warn("GET /reservations - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	to, err := handlers.QueryDate(r, "to")
	if err != nil {
		h.logger.Warn("GET /reservations - Invalid to: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	includeCancelled, err := handlers.QueryBool(r, "includeCancelled")
	if err != nil {
		h.logger.Warn("GET /reservations - Invalid includeCancelled: %v", err)
		handlers.RespondBadRequest(w, msgInvalidIncludeCancelled)
		return
	}

	req := &models.ListReservationsRequest{
		RoomIDs:          r.URL.Query()["roomId"],
		From:             from,
		To:               to,
		IncludeCancelled: includeCancelled,
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /reservations - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /reservations - Failed to list reservations: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations - Reservations retrieved successfully: count=%d", len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
