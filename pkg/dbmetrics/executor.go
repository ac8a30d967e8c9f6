package dbmetrics

import (
	"context"
	"database/sql"
)

// DBExecutor общий интерфейс *sql.DB, *sql.Tx и их обёрток
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TxExecutor транзакция, в которой выполняются запросы репозиториев
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

type (
	txKey       struct{}
	readOnlyKey struct{}
)

// WithTx кладет транзакцию в контекст
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// WithReadOnlyTx кладет в контекст транзакцию, открытую с ReadOnly
func WithReadOnlyTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(WithTx(ctx, tx), readOnlyKey{}, true)
}

// GetExecutor возвращает транзакцию из контекста, если она есть, иначе db
func GetExecutor(ctx context.Context, db DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txKey{}).(TxExecutor); ok && tx != nil {
		return tx
	}
	return db
}

// IsInTransaction возвращает true, если контекст несет транзакцию
func IsInTransaction(ctx context.Context) bool {
	tx, ok := ctx.Value(txKey{}).(TxExecutor)
	return ok && tx != nil
}

// CanLockRows возвращает true, если запросу можно добавить FOR UPDATE:
// контекст несет транзакцию и она не READ ONLY (иначе PostgreSQL вернет 25006)
func CanLockRows(ctx context.Context) bool {
	if !IsInTransaction(ctx) {
		return false
	}
	readOnly, _ := ctx.Value(readOnlyKey{}).(bool)
	return !readOnly
}
