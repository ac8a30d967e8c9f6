package list_rooms

import (
	"net/http"

	"github.com/m04kA/LodgeBookingService/internal/api/handlers"
	"github.com/m04kA/LodgeBookingService/internal/service/rooms/models"
)

const msgInvalidFilter = "некорректный фильтр номеров"

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms
// Query params: siteId, bedConfigurationId, includeInactive
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	siteID, err := handlers.QueryInt64(r, "siteId")
	if err != nil {
		h.logger.Warn("GET /rooms - Invalid siteId: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}
	bedConfigurationID, err := handlers.QueryInt64(r, "bedConfigurationId")
	if err != nil {
		h.logger.Warn("GET /rooms - Invalid bedConfigurationId: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}
	includeInactive, err := handlers.QueryBool(r, "includeInactive")
	if err != nil {
		h.logger.Warn("GET /rooms - Invalid includeInactive: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.service.List(r.Context(), &models.ListRoomsRequest{
		SiteID:             siteID,
		BedConfigurationID: bedConfigurationID,
		IncludeInactive:    includeInactive,
	})
	if err != nil {
		h.logger.Error("GET /rooms - Failed to list rooms: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /rooms - Rooms retrieved successfully: count=%d", len(result.Rooms))
	handlers.RespondJSON(w, http.StatusOK, result)
}
