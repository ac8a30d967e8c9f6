package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LodgeBookingService/pkg/dbmetrics"
)

type mockTx struct {
	mock.Mock
	dbmetrics.DBExecutor
}

func (m *mockTx) Commit() error {
	return m.Called().Error(0)
}

func (m *mockTx) Rollback() error {
	return m.Called().Error(0)
}

type mockBeginner struct {
	mock.Mock
}

func (m *mockBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	args := m.Called(ctx, opts)
	tx, _ := args.Get(0).(dbmetrics.TxExecutor)
	return tx, args.Error(1)
}

func TestDoSerializable_Commit(t *testing.T) {
	tx := &mockTx{}
	tx.On("Commit").Return(nil).Once()

	db := &mockBeginner{}
	db.On("BeginTx", mock.Anything, &sql.TxOptions{Isolation: sql.LevelSerializable}).Return(tx, nil).Once()

	m := NewTransactionManager(db)
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		assert.True(t, dbmetrics.CanLockRows(ctx))
		return nil
	})

	require.NoError(t, err)
	db.AssertExpectations(t)
	tx.AssertExpectations(t)
	tx.AssertNotCalled(t, "Rollback")
}

func TestDo_RollbackOnError(t *testing.T) {
	fnErr := errors.New("conflict")

	tx := &mockTx{}
	tx.On("Rollback").Return(nil).Once()

	db := &mockBeginner{}
	db.On("BeginTx", mock.Anything, mock.Anything).Return(tx, nil).Once()

	err := NewTransactionManager(db).Do(context.Background(), func(ctx context.Context) error {
		return fnErr
	})

	assert.ErrorIs(t, err, fnErr)
	tx.AssertExpectations(t)
	tx.AssertNotCalled(t, "Commit")
}

func TestDo_RollbackFailureKeepsOriginalError(t *testing.T) {
	fnErr := errors.New("conflict")

	tx := &mockTx{}
	tx.On("Rollback").Return(errors.New("conn closed")).Once()

	db := &mockBeginner{}
	db.On("BeginTx", mock.Anything, mock.Anything).Return(tx, nil).Once()

	err := NewTransactionManager(db).Do(context.Background(), func(ctx context.Context) error {
		return fnErr
	})

	assert.ErrorIs(t, err, ErrRollbackTx)
	assert.ErrorIs(t, err, fnErr)
}

func TestDo_BeginAndCommitErrors(t *testing.T) {
	db := &mockBeginner{}
	db.On("BeginTx", mock.Anything, mock.Anything).Return(nil, errors.New("no conn")).Once()

	err := NewTransactionManager(db).DoReadOnly(context.Background(), func(ctx context.Context) error {
		t.Fatal("must not be called")
		return nil
	})
	assert.ErrorIs(t, err, ErrBeginTx)

	tx := &mockTx{}
	tx.On("Commit").Return(errors.New("serialization failure")).Once()
	db = &mockBeginner{}
	db.On("BeginTx", mock.Anything, mock.Anything).Return(tx, nil).Once()

	err = NewTransactionManager(db).Do(context.Background(), func(ctx context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrCommitTx)
}

func TestDo_NestedReusesOuterTransaction(t *testing.T) {
	tx := &mockTx{}
	tx.On("Commit").Return(nil).Once()

	db := &mockBeginner{}
	db.On("BeginTx", mock.Anything, mock.Anything).Return(tx, nil).Once()

	m := NewTransactionManager(db)
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return m.Do(ctx, func(inner context.Context) error {
			assert.Same(t, tx, dbmetrics.GetExecutor(inner, nil))
			return nil
		})
	})

	require.NoError(t, err)
	db.AssertNumberOfCalls(t, "BeginTx", 1)
}

func TestDoReadOnly_ForbidsRowLocks(t *testing.T) {
	tx := &mockTx{}
	tx.On("Commit").Return(nil).Once()

	db := &mockBeginner{}
	db.On("BeginTx", mock.Anything, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}).Return(tx, nil).Once()

	m := NewTransactionManager(db)
	err := m.DoReadOnly(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		assert.False(t, dbmetrics.CanLockRows(ctx))

		// Вложенная пишущая операция остается в READ ONLY транзакции
		return m.DoSerializable(ctx, func(ctx context.Context) error {
			assert.False(t, dbmetrics.CanLockRows(ctx))
			return nil
		})
	})

	require.NoError(t, err)
	db.AssertExpectations(t)
	tx.AssertExpectations(t)
}
