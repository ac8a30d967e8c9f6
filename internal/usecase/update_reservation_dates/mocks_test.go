package update_reservation_dates

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/LodgeBookingService/internal/domain"
)

type mockReservationRepo struct {
	mock.Mock
}

func (m *mockReservationRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*domain.Reservation)
	return res, args.Error(1)
}

func (m *mockReservationRepo) GetByFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	args := m.Called(ctx, filter)
	res, _ := args.Get(0).([]*domain.Reservation)
	return res, args.Error(1)
}

func (m *mockReservationRepo) UpdateDates(ctx context.Context, id int64, stay domain.Range) error {
	return m.Called(ctx, id, stay).Error(0)
}

type mockRoomRepo struct {
	mock.Mock
}

func (m *mockRoomRepo) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	args := m.Called(ctx, id)
	room, _ := args.Get(0).(*domain.Room)
	return room, args.Error(1)
}

type txManager struct{}

func (txManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
