package get_calendar

import "errors"

var (
	// ErrInvalidWindow возвращается, когда начало окна не раньше конца
	ErrInvalidWindow = errors.New("get_calendar: window start must be before window end")

	// ErrWindowTooLarge возвращается, когда окно длиннее max_calendar_days
	ErrWindowTooLarge = errors.New("get_calendar: window is too large")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_calendar: internal error")
)
