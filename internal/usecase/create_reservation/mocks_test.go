package create_reservation

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/LodgeBookingService/internal/domain"
)

type mockReservationRepo struct {
	mock.Mock
}

func (m *mockReservationRepo) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	args := m.Called(ctx, res)
	out, _ := args.Get(0).(*domain.Reservation)
	return out, args.Error(1)
}

func (m *mockReservationRepo) GetByFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	args := m.Called(ctx, filter)
	res, _ := args.Get(0).([]*domain.Reservation)
	return res, args.Error(1)
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

type nopMetrics struct{}

func (nopMetrics) AddReservationsCreated(string, int) {}
func (nopMetrics) IncValidationFailure(string)       {}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
