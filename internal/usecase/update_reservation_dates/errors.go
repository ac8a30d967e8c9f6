package update_reservation_dates

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_reservation_dates: invalid input data")

	// ErrInvalidRange возвращается, когда заезд не раньше выезда
	ErrInvalidRange = errors.New("update_reservation_dates: checkin must be before checkout")

	// ErrStayTooLong возвращается, когда бронь длиннее max_stay_nights
	ErrStayTooLong = errors.New("update_reservation_dates: stay is too long")

	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("update_reservation_dates: reservation not found")

	// ErrCannotUpdate возвращается для броней, которые уже нельзя переносить (заселены, выехали, отменены)
	ErrCannotUpdate = errors.New("update_reservation_dates: reservation cannot be updated")

	// ErrRoomNotFound возвращается, когда новый номер не найден
	ErrRoomNotFound = errors.New("update_reservation_dates: room not found")

	// ErrRoomInactive возвращается, когда новый номер выведен из продажи
	ErrRoomInactive = errors.New("update_reservation_dates: room is inactive")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_reservation_dates: internal error")
)
