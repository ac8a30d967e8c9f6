package get_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/LodgeBookingService/internal/api/handlers"
	getCalendar "github.com/m04kA/LodgeBookingService/internal/usecase/get_calendar"
)

const (
	msgMissingPeriod  = "параметры from и to обязательны"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidFilter  = "некорректный фильтр номеров"
	msgInvalidWindow  = "начало периода должно быть раньше конца"
	msgWindowTooLarge = "слишком длинный период календаря"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar
// Query params: from, to (required, YYYY-MM-DD, to не включается), siteId, bedConfigurationId, includeInactive
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	from, err := handlers.QueryDate(r, "from")
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	to, err := handlers.QueryDate(r, "to")
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid to: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	if from == nil || to == nil {
		h.logger.Warn("GET /calendar - Missing period")
		handlers.RespondBadRequest(w, msgMissingPeriod)
		return
	}

	siteID, err := handlers.QueryInt64(r, "siteId")
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid siteId: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}
	bedConfigurationID, err := handlers.QueryInt64(r, "bedConfigurationId")
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid bedConfigurationId: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}
	includeInactive, err := handlers.QueryBool(r, "includeInactive")
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid includeInactive: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getCalendar.Request{
		From:               *from,
		To:                 *to,
		SiteID:             siteID,
		BedConfigurationID: bedConfigurationID,
		IncludeInactive:    includeInactive,
	})
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidWindow):
			h.logger.Warn("GET /calendar - Invalid window: %s..%s", from, to)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, getCalendar.ErrWindowTooLarge):
			h.logger.Warn("GET /calendar - Window too large: %v", err)
			handlers.RespondBadRequest(w, msgWindowTooLarge+": "+handlers.Cause(err, getCalendar.ErrWindowTooLarge))

		default:
			h.logger.Error("GET /calendar - Failed to build calendar: %s..%s, error=%v", from, to, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar - Calendar built successfully: %s..%s, rooms=%d", from, to, len(result.Rows))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
