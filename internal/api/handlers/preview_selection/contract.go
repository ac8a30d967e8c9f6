package preview_selection

import (
	"context"

	previewSelection "github.com/m04kA/LodgeBookingService/internal/usecase/preview_selection"
)

type PreviewSelectionUseCase interface {
	Execute(ctx context.Context, req *previewSelection.Request) (*previewSelection.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
