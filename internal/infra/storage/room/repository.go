package room

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/LodgeBookingService/internal/domain"
	"github.com/m04kA/LodgeBookingService/pkg/dbmetrics"
	"github.com/m04kA/LodgeBookingService/pkg/psqlbuilder"
)

// Repository репозиторий номеров (только чтение: инвентарь ведется в другой системе)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория номеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает номер по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	rooms, err := r.GetByFilter(ctx, domain.RoomFilter{IDs: []string{id}, IncludeInactive: true})
	if err != nil {
		return nil, err
	}
	if len(rooms) == 0 {
		return nil, ErrRoomNotFound
	}
	return rooms[0], nil
}

// GetByIDs получает номера по списку ID, включая неактивные.
// Отсутствующие ID просто не попадают в результат.
func (r *Repository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Room, error) {
	if len(ids) == 0 {
		return []*domain.Room{}, nil
	}
	return r.GetByFilter(ctx, domain.RoomFilter{IDs: ids, IncludeInactive: true})
}

// GetByFilter возвращает номера в порядке отображения в календаре
func (r *Repository) GetByFilter(ctx context.Context, filter domain.RoomFilter) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildFilterQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rooms := make([]*domain.Room, 0)
	for rows.Next() {
		var (
			room      domain.Room
			bedConfig pq.Int64Array
		)

		err := rows.Scan(
			&room.ID,
			&room.SiteID,
			&room.Name,
			&room.Capacity,
			&room.IsActive,
			&room.SortOrder,
			&bedConfig,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByFilter - scan row: %v", ErrScanRow, err)
		}

		room.BedConfigurationIDs = []int64(bedConfig)
		rooms = append(rooms, &room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - rows error: %v", ErrScanRow, err)
	}

	return rooms, nil
}

func buildFilterQuery(filter domain.RoomFilter) (string, []any, error) {
	selectBuilder := psqlbuilder.Select(
		"r.id",
		"r.site_id",
		"r.name",
		"r.capacity",
		"r.is_active",
		"r.sort_order",
		"COALESCE(array_agg(rb.bed_configuration_id ORDER BY rb.bed_configuration_id) "+
			"FILTER (WHERE rb.bed_configuration_id IS NOT NULL), '{}') AS bed_configuration_ids",
	).
		From("rooms r").
		LeftJoin("room_bed_configurations rb ON rb.room_id = r.id")

	if len(filter.IDs) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"r.id": filter.IDs})
	}
	if filter.SiteID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"r.site_id": *filter.SiteID})
	}
	if filter.BedConfigurationID != nil {
		selectBuilder = selectBuilder.Where(
			squirrel.Expr("r.id IN (SELECT room_id FROM room_bed_configurations WHERE bed_configuration_id = ?)",
				*filter.BedConfigurationID),
		)
	}
	if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"r.is_active": true})
	}

	return selectBuilder.
		GroupBy("r.id").
		OrderBy("r.sort_order ASC", "r.id ASC").
		ToSql()
}
