package get_calendar

import (
	"github.com/m04kA/LodgeBookingService/internal/domain"
	"github.com/m04kA/LodgeBookingService/pkg/types"
)

// Request окно календаря [From, To) и фильтр номеров
type Request struct {
	From               types.Date
	To                 types.Date
	SiteID             *int64
	BedConfigurationID *int64
	IncludeInactive    bool
}

// Entry бронь в строке календаря. Даты не обрезаются по окну.
type Entry struct {
	Reservation        *domain.Reservation
	Nights             int
	StartsBeforeWindow bool
	EndsAfterWindow    bool
}

// Row строка календаря: номер и его брони по возрастанию заезда
type Row struct {
	Room         *domain.Room
	Reservations []Entry
}

// Response данные для диаграммы занятости
type Response struct {
	From types.Date
	To   types.Date
	Days int
	Rows []Row
}
