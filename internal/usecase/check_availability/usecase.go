package check_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/LodgeBookingService/internal/domain"
	"github.com/m04kA/LodgeBookingService/internal/occupancy"
)

// UseCase проверяет, свободен ли номер на даты. Только чтение, без блокировок:
// ответ может устареть к моменту создания брони, финальная проверка идет при записи.
type UseCase struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Execute выполняет проверку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: room=%s, checkin=%s, checkout=%s", req.RoomID, req.Checkin, req.Checkout)

	if req.RoomID == "" {
		return nil, fmt.Errorf("%w: room is required", ErrInvalidInput)
	}
	if verdict := occupancy.ValidateRange(req.Checkin, req.Checkout); !verdict.Valid {
		uc.logger.Warn("CheckAvailability: %s", verdict.Message())
		return nil, fmt.Errorf("%w: %w", ErrInvalidRange, verdict.Err)
	}

	candidate := domain.Range{RoomID: req.RoomID, Checkin: req.Checkin, Checkout: req.Checkout}

	existing, err := uc.reservationRepo.GetByFilter(ctx, domain.OverlapFilter(candidate))
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to load reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to load reservations: %v", ErrInternal, err)
	}

	res := occupancy.CheckConflict(candidate, existing, req.ExcludeID)

	uc.logger.Info("CheckAvailability: room=%s available=%t conflicts=%d", req.RoomID, res.Available, len(res.Conflicts))
	return &Response{
		Available: res.Available,
		Nights:    occupancy.CountNights(req.Checkin, req.Checkout),
		Conflicts: res.Conflicts,
	}, nil
}
