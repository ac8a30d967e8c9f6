package reservation

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrDatesOverlap возвращается, когда exclusion constraint отклонил пересекающиеся даты
	ErrDatesOverlap = errors.New("reservation.repository: dates overlap an existing reservation")

	// ErrSerialization возвращается, когда SERIALIZABLE транзакция конфликтует с параллельной
	ErrSerialization = errors.New("reservation.repository: serialization failure")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)

const (
	pqExclusionViolation   = "23P01"
	pqSerializationFailure = "40001"
)

// wrapExecError переводит коды ошибок PostgreSQL в ошибки репозитория
func wrapExecError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqExclusionViolation:
			return fmt.Errorf("%w: %s - constraint %s", ErrDatesOverlap, op, pqErr.Constraint)
		case pqSerializationFailure:
			return fmt.Errorf("%w: %s: %v", ErrSerialization, op, err)
		}
	}
	return fmt.Errorf("%w: %s: %v", ErrExecQuery, op, err)
}
