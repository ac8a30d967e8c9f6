package bulk_create_reservations

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/LodgeBookingService/internal/domain"
)

type mockReservationRepo struct {
	mock.Mock
}

func (m *mockReservationRepo) GetByFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	args := m.Called(ctx, filter)
	res, _ := args.Get(0).([]*domain.Reservation)
	return res, args.Error(1)
}

func (m *mockReservationRepo) CreateBatch(ctx context.Context, reservations []*domain.Reservation) ([]*domain.Reservation, error) {
	args := m.Called(ctx, reservations)
	if fn, ok := args.Get(0).(func([]*domain.Reservation) []*domain.Reservation); ok {
		return fn(reservations), args.Error(1)
	}
	res, _ := args.Get(0).([]*domain.Reservation)
	return res, args.Error(1)
}

type mockRoomRepo struct {
	mock.Mock
}

func (m *mockRoomRepo) GetByIDs(ctx context.Context, ids []string) ([]*domain.Room, error) {
	args := m.Called(ctx, ids)
	res, _ := args.Get(0).([]*domain.Room)
	return res, args.Error(1)
}

type txManager struct {
	calls int
}

func (t *txManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

type mockMetrics struct {
	mock.Mock
}

func (m *mockMetrics) AddReservationsCreated(source string, n int) {
	m.Called(source, n)
}

func (m *mockMetrics) IncValidationFailure(reason string) {
	m.Called(reason)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
