package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/LodgeBookingService/internal/domain"
	reservationRepo "github.com/m04kA/LodgeBookingService/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/LodgeBookingService/internal/infra/storage/room"
	"github.com/m04kA/LodgeBookingService/internal/occupancy"
)

// UseCase use case для создания одной брони
type UseCase struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	txManager       TransactionManager
	metrics         Metrics
	maxStayNights   int
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	metrics Metrics,
	maxStayNights int,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		txManager:       txManager,
		metrics:         metrics,
		maxStayNights:   maxStayNights,
		logger:          logger,
	}
}

// Execute выполняет use case создания брони.
// Проверка пересечений и вставка выполняются в сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Reservation, error) {
	uc.logger.Info("CreateReservation: room=%s, checkin=%s, checkout=%s", req.RoomID, req.Checkin, req.Checkout)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.maxStayNights); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		if errors.Is(err, ErrInvalidRange) {
			uc.metrics.IncValidationFailure("invalid_range")
		}
		return nil, err
	}

	// 2. Номер существует и принимает гостей
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateReservation: room %s not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateReservation: failed to get room %s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	guests := req.Guests
	if guests == 0 {
		guests = domain.DefaultGuests
	}
	if err := validateRoom(room, guests); err != nil {
		uc.logger.Warn("CreateReservation: %v", err)
		if errors.Is(err, ErrRoomInactive) {
			uc.metrics.IncValidationFailure("inactive_room")
		}
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = domain.StatusPending
	}
	candidate := domain.Range{RoomID: req.RoomID, Checkin: req.Checkin, Checkout: req.Checkout}

	var result *domain.Reservation

	// 3. Проверка пересечений и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.reservationRepo.GetByFilter(txCtx, domain.OverlapFilter(candidate))
		if err != nil {
			uc.logger.Error("CreateReservation: failed to load reservations: %v", err)
			return fmt.Errorf("%w: failed to load reservations: %v", ErrInternal, err)
		}

		if res := occupancy.CheckConflict(candidate, existing, nil); !res.Available {
			uc.logger.Warn("CreateReservation: room %s %s..%s conflicts with %d reservation(s)",
				candidate.RoomID, candidate.Checkin, candidate.Checkout, len(res.Conflicts))
			return &domain.ConflictError{Conflicts: []domain.StayConflict{{Stay: candidate, Reservations: res.Conflicts}}}
		}

		result, err = uc.reservationRepo.Create(txCtx, &domain.Reservation{
			RoomID:   req.RoomID,
			ClientID: req.ClientID,
			AgencyID: req.AgencyID,
			Checkin:  req.Checkin,
			Checkout: req.Checkout,
			Status:   status,
			Guests:   guests,
			Notes:    req.Notes,
		})
		if err != nil {
			if errors.Is(err, reservationRepo.ErrDatesOverlap) {
				uc.logger.Warn("CreateReservation: overlap rejected by database: %v", err)
				return &domain.ConflictError{Conflicts: []domain.StayConflict{{Stay: candidate}}}
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
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
		uc.logger.Error("CreateReservation: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.metrics.AddReservationsCreated("single", 1)
	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)
	return result, nil
}
