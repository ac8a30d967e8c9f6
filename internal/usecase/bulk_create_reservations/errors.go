package bulk_create_reservations

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных (пустое выделение, битая ячейка)
	ErrInvalidInput = errors.New("bulk_create_reservations: invalid input data")

	// ErrTooManySlots возвращается, когда выделение превышает лимит ячеек
	ErrTooManySlots = errors.New("bulk_create_reservations: too many slots selected")

	// ErrStayTooLong возвращается, когда отрезок длиннее max_stay_nights
	ErrStayTooLong = errors.New("bulk_create_reservations: stay is too long")

	// ErrRoomNotFound возвращается, когда номера из выделения нет в инвентаре
	ErrRoomNotFound = errors.New("bulk_create_reservations: room not found")

	// ErrRoomInactive возвращается, когда номер выведен из продажи
	ErrRoomInactive = errors.New("bulk_create_reservations: room is inactive")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("bulk_create_reservations: internal error")
)
