package update_reservation_dates

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/LodgeBookingService/internal/domain"
	reservationRepo "github.com/m04kA/LodgeBookingService/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/LodgeBookingService/internal/infra/storage/room"
	"github.com/m04kA/LodgeBookingService/internal/occupancy"
)

// UseCase use case для переноса брони
type UseCase struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	txManager       TransactionManager
	maxStayNights   int
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	maxStayNights int,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		txManager:       txManager,
		maxStayNights:   maxStayNights,
		logger:          logger,
	}
}

// Execute переносит бронь. Сама бронь исключается из проверки пересечений,
// поэтому сдвиг на день внутри собственных дат не считается конфликтом.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Reservation, error) {
	uc.logger.Info("UpdateReservationDates: id=%d, checkin=%s, checkout=%s", req.ID, req.Checkin, req.Checkout)

	if req.ID <= 0 {
		return nil, fmt.Errorf("%w: reservation id must be positive", ErrInvalidInput)
	}
	if req.RoomID != nil && *req.RoomID == "" {
		return nil, fmt.Errorf("%w: room must not be empty", ErrInvalidInput)
	}
	if verdict := occupancy.ValidateRange(req.Checkin, req.Checkout); !verdict.Valid {
		uc.logger.Warn("UpdateReservationDates: %s", verdict.Message())
		return nil, fmt.Errorf("%w: %w", ErrInvalidRange, verdict.Err)
	}
	if nights := occupancy.CountNights(req.Checkin, req.Checkout); nights > uc.maxStayNights {
		return nil, fmt.Errorf("%w: %d nights, limit is %d", ErrStayTooLong, nights, uc.maxStayNights)
	}

	var result *domain.Reservation

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Бронь (блокируется FOR UPDATE)
		current, err := uc.reservationRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("UpdateReservationDates: reservation id=%d not found", req.ID)
				return ErrReservationNotFound
			}
			uc.logger.Error("UpdateReservationDates: failed to get reservation id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		if !current.CanBeUpdated() {
			uc.logger.Warn("UpdateReservationDates: reservation id=%d cannot be updated, status=%s", req.ID, current.Status)
			return ErrCannotUpdate
		}

		stay := domain.Range{RoomID: current.RoomID, Checkin: req.Checkin, Checkout: req.Checkout}

		// 2. Переезд в другой номер
		if req.RoomID != nil && *req.RoomID != current.RoomID {
			if err := uc.checkRoom(txCtx, *req.RoomID); err != nil {
				return err
			}
			stay.RoomID = *req.RoomID
		}

		// 3. Пересечения без учета самой брони
		existing, err := uc.reservationRepo.GetByFilter(txCtx, domain.OverlapFilter(stay))
		if err != nil {
			uc.logger.Error("UpdateReservationDates: failed to load reservations: %v", err)
			return fmt.Errorf("%w: failed to load reservations: %v", ErrInternal, err)
		}

		if res := occupancy.CheckConflict(stay, existing, &current.ID); !res.Available {
			uc.logger.Warn("UpdateReservationDates: id=%d conflicts with %d reservation(s)", req.ID, len(res.Conflicts))
			return &domain.ConflictError{Conflicts: []domain.StayConflict{{Stay: stay, Reservations: res.Conflicts}}}
		}

		// 4. Сохраняем
		if err := uc.reservationRepo.UpdateDates(txCtx, current.ID, stay); err != nil {
			if errors.Is(err, reservationRepo.ErrDatesOverlap) {
				return &domain.ConflictError{Conflicts: []domain.StayConflict{{Stay: stay}}}
			}
			uc.logger.Error("UpdateReservationDates: failed to update reservation id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
		}

		updated := *current
		updated.RoomID = stay.RoomID
		updated.Checkin = stay.Checkin
		updated.Checkout = stay.Checkout
		result = &updated
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrReservationNotFound),
			errors.Is(err, ErrCannotUpdate),
			errors.Is(err, ErrRoomNotFound),
			errors.Is(err, ErrRoomInactive),
			errors.Is(err, domain.ErrConflict),
			errors.Is(err, ErrInternal):
			return nil, err
		default:
			uc.logger.Error("UpdateReservationDates: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("UpdateReservationDates: reservation id=%d moved to room %s %s..%s",
		result.ID, result.RoomID, result.Checkin, result.Checkout)
	return result, nil
}

func (uc *UseCase) checkRoom(ctx context.Context, roomID string) error {
	room, err := uc.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("UpdateReservationDates: room %s not found", roomID)
			return ErrRoomNotFound
		}
		uc.logger.Error("UpdateReservationDates: failed to get room %s: %v", roomID, err)
		return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}
	if !room.IsActive {
		uc.logger.Warn("UpdateReservationDates: room %s is inactive", roomID)
		return fmt.Errorf("%w: %s", ErrRoomInactive, roomID)
	}
	return nil
}
