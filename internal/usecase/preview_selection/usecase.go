package preview_selection

import (
	"context"
	"fmt"

	"github.com/m04kA/LodgeBookingService/internal/domain"
	"github.com/m04kA/LodgeBookingService/internal/occupancy"
)

// UseCase собирает ячейки выделения в отрезки и показывает, что получится при бронировании.
// Ничего не пишет в БД.
type UseCase struct {
	reservationRepo   ReservationRepository
	txManager         TransactionManager
	maxSelectionSlots int
	logger            Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	maxSelectionSlots int,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo:   reservationRepo,
		txManager:         txManager,
		maxSelectionSlots: maxSelectionSlots,
		logger:            logger,
	}
}

// Execute выполняет предпросмотр выделения
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PreviewSelection: %d slots", len(req.Slots))

	if len(req.Slots) > uc.maxSelectionSlots {
		uc.logger.Warn("PreviewSelection: %d slots exceed limit %d", len(req.Slots), uc.maxSelectionSlots)
		return nil, fmt.Errorf("%w: %d slots, limit is %d", ErrTooManySlots, len(req.Slots), uc.maxSelectionSlots)
	}

	// 1. Склеиваем ячейки в отрезки
	ranges, err := occupancy.MergeConsecutive(req.Slots)
	if err != nil {
		uc.logger.Warn("PreviewSelection: malformed selection: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	resp := &Response{
		Ranges:    make([]RangePreview, 0, len(ranges)),
		Valid:     true,
		Available: true,
	}
	if len(ranges) == 0 {
		return resp, nil
	}

	// 2. Отрезки выделения не должны пересекаться между собой
	verdict := occupancy.ValidateNoOverlaps(ranges)
	resp.Valid = verdict.Valid
	resp.Message = verdict.Message()

	// 3. Сверяем с живыми бронями
	var existing []*domain.Reservation
	err = uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		existing, err = uc.reservationRepo.GetByFilter(txCtx, domain.OverlapFilter(ranges...))
		return err
	})
	if err != nil {
		uc.logger.Error("PreviewSelection: failed to load reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to load reservations: %v", ErrInternal, err)
	}

	for _, r := range ranges {
		conflict := occupancy.CheckConflict(r, existing, nil)
		resp.Ranges = append(resp.Ranges, RangePreview{
			Range:     r,
			Nights:    occupancy.CountNights(r.Checkin, r.Checkout),
			Available: conflict.Available,
			Conflicts: conflict.Conflicts,
		})
		if !conflict.Available {
			resp.Available = false
		}
	}

	uc.logger.Info("PreviewSelection: %d ranges, valid=%t, available=%t", len(resp.Ranges), resp.Valid, resp.Available)
	return resp, nil
}
