package bulk_create_reservations

import (
	"context"

	"github.com/m04kA/LodgeBookingService/internal/domain"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetByFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	CreateBatch(ctx context.Context, reservations []*domain.Reservation) ([]*domain.Reservation, error)
}

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByIDs(ctx context.Context, ids []string) ([]*domain.Room, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчики бизнес-событий
type Metrics interface {
	AddReservationsCreated(source string, n int)
	IncValidationFailure(reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
