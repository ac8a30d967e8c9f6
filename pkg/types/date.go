package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// DateLayout формат календарного дня на границе API и БД
const DateLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// ErrInvalidDate возвращается, когда значение нельзя интерпретировать как календарный день
var ErrInvalidDate = errors.New("types: invalid calendar date")

var datePattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// Date календарный день без времени суток и часового пояса.
// Сравнение и арифметика выполняются только по компонентам (год, месяц, день),
// поэтому результат не зависит от локальной зоны процесса и переходов на летнее время.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate создает день из компонентов, нормализуя переполнение (32 января -> 1 февраля)
func NewDate(year int, month time.Month, day int) Date {
	return NewDateFromTime(time.Date(year, month, day, 12, 0, 0, 0, time.UTC))
}

// NewDateFromTime берет календарный день из t в его собственной зоне
func NewDateFromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate разбирает строку строго в формате YYYY-MM-DD
func ParseDate(s string) (Date, error) {
	parts := datePattern.FindStringSubmatch(s)
	if parts == nil {
		return Date{}, fmt.Errorf("%w: %q does not match YYYY-MM-DD", ErrInvalidDate, s)
	}

	// Компоненты уже проверены регулярным выражением
	year, _ := strconv.Atoi(parts[1])
	month, _ := strconv.Atoi(parts[2])
	day, _ := strconv.Atoi(parts[3])

	d := Date{Year: year, Month: time.Month(month), Day: day}
	if !d.valid() {
		return Date{}, fmt.Errorf("%w: %q is not a day of the calendar", ErrInvalidDate, s)
	}

	return d, nil
}

// NormalizeDate приводит строку, time.Time или Date к каноническому календарному дню
func NormalizeDate(v any) (Date, error) {
	switch val := v.(type) {
	case string:
		return ParseDate(val)
	case time.Time:
		if val.IsZero() {
			return Date{}, fmt.Errorf("%w: zero time", ErrInvalidDate)
		}
		return NewDateFromTime(val), nil
	case *time.Time:
		if val == nil {
			return Date{}, fmt.Errorf("%w: nil time", ErrInvalidDate)
		}
		return NormalizeDate(*val)
	case Date:
		if !val.valid() {
			return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, val.Year, int(val.Month), val.Day)
		}
		return val, nil
	case *Date:
		if val == nil {
			return Date{}, fmt.Errorf("%w: nil date", ErrInvalidDate)
		}
		return NormalizeDate(*val)
	default:
		return Date{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidDate, v)
	}
}

// MustParseDate как ParseDate, но паникует при ошибке. Только для тестов и констант.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Compare возвращает -1, 0 или 1, сравнивая год, затем месяц, затем день
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(int(d.Month) - int(o.Month))
	default:
		return sign(d.Day - o.Day)
	}
}

// Before возвращает true, если d раньше o
func (d Date) Before(o Date) bool {
	return d.Compare(o) < 0
}

// After возвращает true, если d позже o
func (d Date) After(o Date) bool {
	return d.Compare(o) > 0
}

// Equal возвращает true для одного и того же календарного дня
func (d Date) Equal(o Date) bool {
	return d.Compare(o) == 0
}

// IsZero возвращает true для незаполненного значения
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// AddDays возвращает день через n дней (n может быть отрицательным).
// Переносы месяцев и лет выполняет календарная нормализация time.Date.
func (d Date) AddDays(n int) Date {
	return NewDate(d.Year, d.Month, d.Day+n)
}

// DiffDays возвращает b - a в целых днях
func DiffDays(a, b Date) int {
	// Полдень UTC: ни одна из дат не попадает на переход летнего времени.
	// Секунды Unix вместо time.Duration, который насыщается на ~292 годах.
	return int((b.noonUTC().Unix() - a.noonUTC().Unix()) / secondsPerDay)
}

// Time возвращает полночь дня в UTC (для записи в DATE колонки)
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String форматирует день как YYYY-MM-DD
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalJSON сериализует день строкой YYYY-MM-DD
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON разбирает строку YYYY-MM-DD
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan реализует sql.Scanner для колонок DATE
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		// lib/pq отдает DATE как полночь UTC, берем компоненты как есть
		*d = NewDateFromTime(v)
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	case nil:
		*d = Date{}
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidDate, src)
	}
}

// Value реализует driver.Valuer
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

func (d *Date) scanString(s string) error {
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) valid() bool {
	if d.Month < time.January || d.Month > time.December || d.Day < 1 {
		return false
	}
	return NewDate(d.Year, d.Month, d.Day) == d
}

func (d Date) noonUTC() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC)
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
