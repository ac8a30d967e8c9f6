package rooms

import (
	"context"
	"errors"
	"fmt"

	roomRepo "github.com/m04kA/LodgeBookingService/internal/infra/storage/room"
	"github.com/m04kA/LodgeBookingService/internal/service/rooms/models"
	"github.com/m04kA/LodgeBookingService/pkg/ptr"
)

// Service сервис для чтения инвентаря номеров
type Service struct {
	roomRepo RoomRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса номеров
func NewService(roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// GetByID получает номер по ID, включая неактивные
func (s *Service) GetByID(ctx context.Context, id string) (*models.RoomResponse, error) {
	s.logger.Info("GetByID: fetching room id=%s", id)

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetByID: room id=%s not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetByID: repository error for room id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoom(room), nil
}

// List возвращает номера в порядке отображения
func (s *Service) List(ctx context.Context, req *models.ListRoomsRequest) (*models.RoomListResponse, error) {
	s.logger.Info("List: site=%d, bedConfiguration=%d, includeInactive=%t",
		ptr.Value(req.SiteID), ptr.Value(req.BedConfigurationID), req.IncludeInactive)

	rooms, err := s.roomRepo.GetByFilter(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d rooms", len(rooms))
	return models.FromDomainRoomList(rooms), nil
}
