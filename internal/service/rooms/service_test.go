package rooms

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LodgeBookingService/internal/domain"
	roomRepo "github.com/m04kA/LodgeBookingService/internal/infra/storage/room"
	"github.com/m04kA/LodgeBookingService/internal/service/rooms/models"
	"github.com/m04kA/LodgeBookingService/pkg/ptr"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*domain.Room)
	return res, args.Error(1)
}

func (m *mockRepo) GetByFilter(ctx context.Context, filter domain.RoomFilter) ([]*domain.Room, error) {
	args := m.Called(ctx, filter)
	res, _ := args.Get(0).([]*domain.Room)
	return res, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestList(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetByFilter", mock.Anything, domain.RoomFilter{SiteID: ptr.Ptr(int64(3))}).Return([]*domain.Room{
		{ID: "A-101", SiteID: 3, Name: "101", Capacity: 2, IsActive: true, BedConfigurationIDs: []int64{1, 2}},
		{ID: "A-102", SiteID: 3, Name: "102", Capacity: 4, IsActive: true},
	}, nil).Once()

	resp, err := NewService(repo, nopLogger{}).List(context.Background(), &models.ListRoomsRequest{SiteID: ptr.Ptr(int64(3))})
	require.NoError(t, err)

	require.Len(t, resp.Rooms, 2)
	assert.Equal(t, []int64{1, 2}, resp.Rooms[0].BedConfigurationIDs)
	assert.NotNil(t, resp.Rooms[1].BedConfigurationIDs)
}

func TestList_RepositoryError(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetByFilter", mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()

	_, err := NewService(repo, nopLogger{}).List(context.Background(), &models.ListRoomsRequest{})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetByID(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetByID", mock.Anything, "A-101").Return(&domain.Room{ID: "A-101", IsActive: false}, nil).Once()
	repo.On("GetByID", mock.Anything, "Z").Return(nil, roomRepo.ErrRoomNotFound).Once()

	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), "A-101")
	require.NoError(t, err)
	assert.False(t, resp.IsActive)

	_, err = svc.GetByID(context.Background(), "Z")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}
