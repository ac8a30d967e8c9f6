package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/LodgeBookingService/internal/domain"
	reservationRepo "github.com/m04kA/LodgeBookingService/internal/infra/storage/reservation"
	"github.com/m04kA/LodgeBookingService/internal/service/reservations/models"
)

// Service сервис для работы с бронями
type Service struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetByID получает бронь по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(res), nil
}

// List возвращает брони, занимающие хотя бы одну ночь периода.
// Без периода возвращаются все брони выбранных номеров.
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("List: rooms=%v, from=%v, to=%v, includeCancelled=%t",
		req.RoomIDs, req.From, req.To, req.IncludeCancelled)

	if req.From != nil && req.To != nil && !req.From.Before(*req.To) {
		s.logger.Warn("List: period start %s is not before end %s", req.From, req.To)
		return nil, fmt.Errorf("%w: period start must be before period end", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.GetByFilter(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// Cancel отменяет бронь. Отменить можно только ожидающую или подтвержденную бронь.
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelReservationRequest) (*models.ReservationResponse, error) {
	s.logger.Info("Cancel: cancelling reservation id=%d", id)

	reason := strings.TrimSpace(req.Reason)
	if len(reason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: reason too long for reservation id=%d", id)
		return nil, fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	var cancelled *domain.Reservation
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		res, err := s.reservationRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if !res.CanBeCancelled() {
			s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, status=%s", id, res.Status)
			return ErrCannotCancel
		}
		if err := s.reservationRepo.Cancel(txCtx, id, reason); err != nil {
			return err
		}
		cancelled, err = s.reservationRepo.GetByID(txCtx, id)
		return err
	})
	if err != nil {
		return nil, s.mapError("Cancel", id, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d", id)
	return models.FromDomainReservation(cancelled), nil
}

// UpdateStatus переводит бронь по жизненному циклу: pending -> confirmed -> checked_in -> checked_out
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.ReservationResponse, error) {
	s.logger.Info("UpdateStatus: updating reservation id=%d to status=%s", id, req.Status)

	next, ok := domain.ParseReservationStatus(req.Status)
	if !ok {
		s.logger.Warn("UpdateStatus: invalid status=%s for reservation id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, req.Status)
	}
	if next == domain.StatusCancelled {
		return nil, fmt.Errorf("%w: use cancellation to cancel a reservation", ErrInvalidTransition)
	}

	var updated *domain.Reservation
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		res, err := s.reservationRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if !res.CanTransitionTo(next) {
			s.logger.Warn("UpdateStatus: reservation id=%d cannot move from %s to %s", id, res.Status, next)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, res.Status, next)
		}
		if err := s.reservationRepo.UpdateStatus(txCtx, id, next); err != nil {
			return err
		}
		res.Status = next
		updated = res
		return nil
	})
	if err != nil {
		return nil, s.mapError("UpdateStatus", id, err)
	}

	s.logger.Info("UpdateStatus: reservation id=%d is now %s", id, next)
	return models.FromDomainReservation(updated), nil
}

func (s *Service) mapError(op string, id int64, err error) error {
	switch {
	case errors.Is(err, ErrCannotCancel), errors.Is(err, ErrInvalidTransition):
		return err
	case errors.Is(err, reservationRepo.ErrReservationNotFound):
		s.logger.Warn("%s: reservation id=%d not found", op, id)
		return ErrReservationNotFound
	default:
		s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}
