package preview_selection

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("preview_selection: invalid input data")

	// ErrTooManySlots возвращается, когда выделение превышает лимит ячеек
	ErrTooManySlots = errors.New("preview_selection: too many slots selected")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("preview_selection: internal error")
)
