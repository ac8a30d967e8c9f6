package preview_selection

import "github.com/m04kA/LodgeBookingService/internal/domain"

// Request выделенные в календаре ячейки (номер, ночь)
type Request struct {
	Slots []domain.Slot
}

// RangePreview непрерывный отрезок, собранный из ячеек одного номера
type RangePreview struct {
	Range     domain.Range
	Nights    int
	Available bool
	Conflicts []*domain.Reservation // существующие брони, пересекающие отрезок
}

// Response результат предпросмотра выделения
type Response struct {
	Ranges []RangePreview

	// Valid false, если отрезки выделения пересекаются между собой
	Valid   bool
	Message string

	// Available true, если ни один отрезок не пересекается с существующими бронями
	Available bool
}
