package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInvalidRange возвращается, когда заезд не раньше выезда
	ErrInvalidRange = errors.New("create_reservation: checkin must be before checkout")

	// ErrStayTooLong возвращается, когда бронь длиннее max_stay_nights
	ErrStayTooLong = errors.New("create_reservation: stay is too long")

	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("create_reservation: room not found")

	// ErrRoomInactive возвращается, когда номер выведен из продажи
	ErrRoomInactive = errors.New("create_reservation: room is inactive")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
