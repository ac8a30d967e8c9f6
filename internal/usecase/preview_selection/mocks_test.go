package preview_selection

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

// txManager выполняет функцию без транзакции
type txManager struct{}

func (txManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
