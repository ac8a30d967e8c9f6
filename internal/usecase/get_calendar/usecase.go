package get_calendar

import (
	"context"
	"fmt"

	"github.com/m04kA/LodgeBookingService/internal/domain"
	"github.com/m04kA/LodgeBookingService/internal/occupancy"
)

// UseCase собирает сетку календаря: номера x брони в окне
type UseCase struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	txManager       TransactionManager
	maxDays         int
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	maxDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		txManager:       txManager,
		maxDays:         maxDays,
		logger:          logger,
	}
}

// Execute возвращает номера и неотмененные брони, занимающие хотя бы одну ночь окна
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendar: from=%s, to=%s, site=%v, bedConfiguration=%v",
		req.From, req.To, req.SiteID, req.BedConfigurationID)

	if verdict := occupancy.ValidateRange(req.From, req.To); !verdict.Valid {
		uc.logger.Warn("GetCalendar: %s", verdict.Message())
		return nil, fmt.Errorf("%w: %w", ErrInvalidWindow, verdict.Err)
	}
	days := occupancy.CountNights(req.From, req.To)
	if days > uc.maxDays {
		uc.logger.Warn("GetCalendar: window of %d days exceeds limit %d", days, uc.maxDays)
		return nil, fmt.Errorf("%w: %d days, limit is %d", ErrWindowTooLarge, days, uc.maxDays)
	}

	var (
		rooms        []*domain.Room
		reservations []*domain.Reservation
	)

	// Номера и брони читаются из одного снимка
	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		rooms, err = uc.roomRepo.GetByFilter(txCtx, domain.RoomFilter{
			SiteID:             req.SiteID,
			BedConfigurationID: req.BedConfigurationID,
			IncludeInactive:    req.IncludeInactive,
		})
		if err != nil {
			return fmt.Errorf("load rooms: %w", err)
		}
		if len(rooms) == 0 {
			return nil
		}

		ids := make([]string, 0, len(rooms))
		for _, room := range rooms {
			ids = append(ids, room.ID)
		}

		reservations, err = uc.reservationRepo.GetByFilter(txCtx, domain.ReservationFilter{
			RoomIDs: ids,
			From:    &req.From,
			To:      &req.To,
		})
		if err != nil {
			return fmt.Errorf("load reservations: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("GetCalendar: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	resp := &Response{
		From: req.From,
		To:   req.To,
		Days: days,
		Rows: uc.buildRows(rooms, reservations, req),
	}

	uc.logger.Info("GetCalendar: %d rooms, %d reservations", len(rooms), len(reservations))
	return resp, nil
}

func (uc *UseCase) buildRows(rooms []*domain.Room, reservations []*domain.Reservation, req *Request) []Row {
	byRoom := make(map[string][]Entry, len(rooms))

	for _, res := range reservations {
		// Бронь, выходящая за окно, допустима; отбрасываются только битые записи
		if verdict := occupancy.ValidateWithinWindow(res.Range(), req.From, req.To); !verdict.Valid {
			uc.logger.Warn("GetCalendar: skipping reservation id=%d: %s", res.ID, verdict.Message())
			continue
		}
		byRoom[res.RoomID] = append(byRoom[res.RoomID], Entry{
			Reservation:        res,
			Nights:             occupancy.CountNights(res.Checkin, res.Checkout),
			StartsBeforeWindow: res.Checkin.Before(req.From),
			EndsAfterWindow:    res.Checkout.After(req.To),
		})
	}

	rows := make([]Row, 0, len(rooms))
	for _, room := range rooms {
		entries := byRoom[room.ID]
		if entries == nil {
			entries = []Entry{}
		}
		rows = append(rows, Row{Room: room, Reservations: entries})
	}
	return rows
}
