package preview_selection

import (
	"errors"
	"net/http"

	"github.com/m04kA/LodgeBookingService/internal/api/handlers"
	previewSelection "github.com/m04kA/LodgeBookingService/internal/usecase/preview_selection"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSelection   = "некорректное выделение"
	msgTooManySlots       = "выделено слишком много ячеек"
)

type Handler struct {
	useCase PreviewSelectionUseCase
	logger  Logger
}

func NewHandler(useCase PreviewSelectionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/selections/preview
// Пересечения внутри выделения и с бронями не ошибка: они описаны в ответе
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PreviewSelectionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /selections/preview - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err, msgInvalidRequestBody))
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, previewSelection.ErrInvalidInput):
			h.logger.Warn("POST /selections/preview - Invalid selection: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSelection+": "+handlers.Cause(err, previewSelection.ErrInvalidInput))

		case errors.Is(err, previewSelection.ErrTooManySlots):
			h.logger.Warn("POST /selections/preview - Too many slots: %d", len(req.Slots))
			handlers.RespondBadRequest(w, msgTooManySlots)

		default:
			h.logger.Error("POST /selections/preview - Failed to preview selection: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /selections/preview - Preview built: ranges=%d, valid=%t, available=%t",
		len(result.Ranges), result.Valid, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
