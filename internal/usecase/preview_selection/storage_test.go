package preview_selection

import (
	"context"
	"database/sql"
	"errors"

	"github.com/m04kA/LodgeBookingService/pkg/dbmetrics"
)

var errQueryRecorded = errors.New("query recorded")

// recordingTx запоминает запросы реального репозитория и отвечает ошибкой
type recordingTx struct {
	queries []string
}

func (t *recordingTx) ExecContext(_ context.Context, query string, _ ...any) (sql.Result, error) {
	t.queries = append(t.queries, query)
	return nil, errQueryRecorded
}

func (t *recordingTx) QueryContext(_ context.Context, query string, _ ...any) (*sql.Rows, error) {
	t.queries = append(t.queries, query)
	return nil, errQueryRecorded
}

func (t *recordingTx) QueryRowContext(_ context.Context, query string, _ ...any) *sql.Row {
	t.queries = append(t.queries, query)
	return nil
}

func (t *recordingTx) Commit() error   { return nil }
func (t *recordingTx) Rollback() error { return nil }

type recordingBeginner struct {
	tx   *recordingTx
	opts *sql.TxOptions
}

func (b *recordingBeginner) BeginTx(_ context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	b.opts = opts
	return b.tx, nil
}
