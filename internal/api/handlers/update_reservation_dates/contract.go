package update_reservation_dates

import (
	"context"

	"github.com/m04kA/LodgeBookingService/internal/domain"
	updateDates "github.com/m04kA/LodgeBookingService/internal/usecase/update_reservation_dates"
)

type UpdateReservationDatesUseCase interface {
	Execute(ctx context.Context, req *updateDates.Request) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
