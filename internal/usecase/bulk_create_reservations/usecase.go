package bulk_create_reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/LodgeBookingService/internal/domain"
	reservationRepo "github.com/m04kA/LodgeBookingService/internal/infra/storage/reservation"
	"github.com/m04kA/LodgeBookingService/internal/occupancy"
)

// Limits ограничения из секции [booking] конфигурации
type Limits struct {
	MaxSelectionSlots int
	MaxStayNights     int
}

// UseCase превращает выделение в календаре в пачку броней.
// Либо создаются все брони выделения, либо ни одной.
type UseCase struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	txManager       TransactionManager
	metrics         Metrics
	limits          Limits
	newBatchID      func() string
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	metrics Metrics,
	limits Limits,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		txManager:       txManager,
		metrics:         metrics,
		limits:          limits,
		newBatchID:      uuid.NewString,
		logger:          logger,
	}
}

// Execute выполняет use case.
// Проверка пересечений и вставка идут в одной SERIALIZABLE транзакции, существующие брони
// читаются с FOR UPDATE. Ошибка сериализации возвращается как внутренняя, без повтора.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BulkCreate: %d slots, client=%v, agency=%v", len(req.Slots), req.ClientID, req.AgencyID)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.limits.MaxSelectionSlots); err != nil {
		uc.logger.Warn("BulkCreate: validation failed: %v", err)
		return nil, err
	}

	// 2. Ячейки -> отрезки
	ranges, err := occupancy.MergeConsecutive(req.Slots)
	if err != nil {
		uc.logger.Warn("BulkCreate: malformed selection: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	// 3. Склеенные отрезки одного номера не пересекаются; пересечение здесь означает сбой склейки
	if verdict := occupancy.ValidateNoOverlaps(ranges); !verdict.Valid {
		uc.logger.Error("BulkCreate: merged ranges overlap: %s", verdict.Message())
		return nil, fmt.Errorf("%w: %w", ErrInternal, verdict.Err)
	}

	if err := validateStayLength(ranges, uc.limits.MaxStayNights); err != nil {
		uc.logger.Warn("BulkCreate: %v", err)
		return nil, err
	}

	// 4. Номера существуют и активны
	rooms, err := uc.roomRepo.GetByIDs(ctx, domain.OverlapFilter(ranges...).RoomIDs)
	if err != nil {
		uc.logger.Error("BulkCreate: failed to load rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to load rooms: %v", ErrInternal, err)
	}

	guests := req.Guests
	if guests == 0 {
		guests = domain.DefaultGuests
	}
	if err := validateRooms(ranges, rooms, guests); err != nil {
		uc.logger.Warn("BulkCreate: %v", err)
		if errors.Is(err, ErrRoomInactive) {
			uc.metrics.IncValidationFailure("inactive_room")
		}
		return nil, err
	}

	batchID := uc.newBatchID()
	status := req.Status
	if status == "" {
		status = domain.StatusPending
	}

	var created []*domain.Reservation

	// 5. Проверка по живым броням и вставка в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.reservationRepo.GetByFilter(txCtx, domain.OverlapFilter(ranges...))
		if err != nil {
			uc.logger.Error("BulkCreate: failed to load reservations: %v", err)
			return fmt.Errorf("%w: failed to load reservations: %v", ErrInternal, err)
		}

		conflictErr := &domain.ConflictError{}
		for _, r := range ranges {
			if res := occupancy.CheckConflict(r, existing, nil); !res.Available {
				conflictErr.Conflicts = append(conflictErr.Conflicts, domain.StayConflict{Stay: r, Reservations: res.Conflicts})
			}
		}
		if len(conflictErr.Conflicts) > 0 {
			uc.logger.Warn("BulkCreate: %v", conflictErr)
			return conflictErr
		}

		reservations := make([]*domain.Reservation, 0, len(ranges))
		for _, r := range ranges {
			reservations = append(reservations, &domain.Reservation{
				RoomID:   r.RoomID,
				BatchID:  &batchID,
				ClientID: req.ClientID,
				AgencyID: req.AgencyID,
				Checkin:  r.Checkin,
				Checkout: r.Checkout,
				Status:   status,
				Guests:   guests,
				Notes:    req.Notes,
			})
		}

		created, err = uc.reservationRepo.CreateBatch(txCtx, reservations)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrDatesOverlap) {
				// Параллельная транзакция успела занять те же ночи
				uc.logger.Warn("BulkCreate: overlap rejected by database: %v", err)
				return &domain.ConflictError{}
			}
			uc.logger.Error("BulkCreate: failed to create reservations: %v", err)
			return fmt.Errorf("%w: failed to create reservations: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			uc.metrics.IncValidationFailure("conflict")
			return nil, err
		}
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("BulkCreate: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.metrics.AddReservationsCreated("bulk", len(created))
	uc.logger.Info("BulkCreate: created %d reservations in batch %s", len(created), batchID)

	return &Response{BatchID: batchID, Reservations: created}, nil
}
