package bulk_create_reservations

import (
	"context"

	bulkCreate "github.com/m04kA/LodgeBookingService/internal/usecase/bulk_create_reservations"
)

type BulkCreateReservationsUseCase interface {
	Execute(ctx context.Context, req *bulkCreate.Request) (*bulkCreate.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
