package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/LodgeBookingService/internal/domain"
	"github.com/m04kA/LodgeBookingService/pkg/dbmetrics"
	"github.com/m04kA/LodgeBookingService/pkg/psqlbuilder"
	"github.com/m04kA/LodgeBookingService/pkg/types"
)

const table = "reservations"

var columns = []string{
	"id",
	"room_id",
	"batch_id",
	"client_id",
	"agency_id",
	"checkin",
	"checkout",
	"status",
	"guests",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

var insertColumns = []string{
	"room_id",
	"batch_id",
	"client_id",
	"agency_id",
	"checkin",
	"checkout",
	"status",
	"guests",
	"notes",
}

// Repository репозиторий броней номеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория броней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает одну бронь.
// Проверка пересечений выполняется вызывающим кодом в той же транзакции;
// exclusion constraint в БД остается последней линией и дает ErrDatesOverlap.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	created, err := r.CreateBatch(ctx, []*domain.Reservation{res})
	if err != nil {
		return nil, err
	}
	return created[0], nil
}

// CreateBatch создает брони одним INSERT ... VALUES (...), (...) RETURNING.
// Либо создаются все, либо ни одной.
func (r *Repository) CreateBatch(ctx context.Context, reservations []*domain.Reservation) ([]*domain.Reservation, error) {
	if len(reservations) == 0 {
		return reservations, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildInsertQuery(reservations)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapExecError("CreateBatch - execute insert", err)
	}
	defer rows.Close()

	// Postgres возвращает строки RETURNING в порядке VALUES
	i := 0
	for rows.Next() {
		if i >= len(reservations) {
			return nil, fmt.Errorf("%w: CreateBatch - more rows returned than inserted", ErrScanRow)
		}
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(&reservations[i].ID, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: CreateBatch - scan returning: %v", ErrScanRow, err)
		}
		reservations[i].CreatedAt = createdAt.Time
		reservations[i].UpdatedAt = updatedAt.Time
		i++
	}

	if err := rows.Err(); err != nil {
		return nil, wrapExecError("CreateBatch - rows error", err)
	}
	if i != len(reservations) {
		return nil, fmt.Errorf("%w: CreateBatch - %d rows returned for %d reservations", ErrScanRow, i, len(reservations))
	}

	return reservations, nil
}

// GetByID получает бронь по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.CanLockRows(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// GetByFilter возвращает брони, занимающие хотя бы одну ночь из [From, To).
// Внутри пишущей транзакции найденные строки блокируются (FOR UPDATE), чтобы параллельное
// создание брони на те же ночи дождалось завершения текущей проверки.
// В READ ONLY транзакции блокировки не берутся.
func (r *Repository) GetByFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildFilterQuery(filter, dbmetrics.CanLockRows(ctx))
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapExecError("GetByFilter - execute query", err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByFilter - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapExecError("GetByFilter - rows error", err)
	}

	return reservations, nil
}

// UpdateDates переносит бронь на другие даты и, возможно, в другой номер
func (r *Repository) UpdateDates(ctx context.Context, id int64, stay domain.Range) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("room_id", stay.RoomID).
		Set("checkin", stay.Checkin).
		Set("checkout", stay.Checkout).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateDates - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapExecError("UpdateDates - execute update", err)
	}

	return checkAffected("UpdateDates", result)
}

// UpdateStatus переводит бронь в новый статус
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapExecError("UpdateStatus - execute update", err)
	}

	return checkAffected("UpdateStatus", result)
}

// Cancel отменяет бронь с указанием причины. Отмененная бронь перестает занимать номер.
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapExecError("Cancel - execute update", err)
	}

	return checkAffected("Cancel", result)
}

func buildInsertQuery(reservations []*domain.Reservation) (string, []any, error) {
	insertBuilder := psqlbuilder.Insert(table).Columns(insertColumns...)
	for _, res := range reservations {
		insertBuilder = insertBuilder.Values(
			res.RoomID,
			res.BatchID,
			res.ClientID,
			res.AgencyID,
			res.Checkin,
			res.Checkout,
			res.Status,
			res.Guests,
			res.Notes,
		)
	}
	return insertBuilder.Suffix("RETURNING id, created_at, updated_at").ToSql()
}

func buildFilterQuery(filter domain.ReservationFilter, forUpdate bool) (string, []any, error) {
	selectBuilder := psqlbuilder.Select(columns...).From(table)

	if len(filter.RoomIDs) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_id": filter.RoomIDs})
	}

	// Полуоткрытые интервалы: бронь [checkin, checkout) пересекает окно [from, to)
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"checkin": *filter.To})
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"checkout": *filter.From})
	}

	if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": domain.StatusCancelled})
	}

	selectBuilder = selectBuilder.OrderBy("room_id ASC", "checkin ASC", "id ASC")

	if forUpdate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	return selectBuilder.ToSql()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var (
		res                  domain.Reservation
		checkin, checkout    types.Date
		createdAt, updatedAt sql.NullTime
		cancelledAt          sql.NullTime
	)

	err := row.Scan(
		&res.ID,
		&res.RoomID,
		&res.BatchID,
		&res.ClientID,
		&res.AgencyID,
		&checkin,
		&checkout,
		&res.Status,
		&res.Guests,
		&res.Notes,
		&res.CancellationReason,
		&cancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.Checkin = checkin
	res.Checkout = checkout
	if cancelledAt.Valid {
		res.CancelledAt = &cancelledAt.Time
	}
	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

func checkAffected(op string, result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrReservationNotFound
	}
	return nil
}
