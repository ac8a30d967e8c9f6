package types

import (
	"encoding/json"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "regular day", input: "2026-03-03", want: Date{2026, time.March, 3}},
		{name: "leap day", input: "2028-02-29", want: Date{2028, time.February, 29}},
		{name: "year end", input: "2026-12-31", want: Date{2026, time.December, 31}},
		{name: "non leap february 29", input: "2026-02-29", wantErr: true},
		{name: "day 30 of february", input: "2026-02-30", wantErr: true},
		{name: "month 13", input: "2026-13-01", wantErr: true},
		{name: "day zero", input: "2026-03-00", wantErr: true},
		{name: "with time component", input: "2026-03-03T10:00:00Z", wantErr: true},
		{name: "unpadded", input: "2026-3-3", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "tomorrow", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	t.Run("string", func(t *testing.T) {
		d, err := NormalizeDate("2026-03-08")
		require.NoError(t, err)
		assert.Equal(t, "2026-03-08", d.String())
	})

	t.Run("time keeps its own calendar day", func(t *testing.T) {
		// 23:30 в Нью-Йорке это уже следующий день в UTC
		d, err := NormalizeDate(time.Date(2026, time.March, 8, 23, 30, 0, 0, ny))
		require.NoError(t, err)
		assert.Equal(t, "2026-03-08", d.String())

		d, err = NormalizeDate(time.Date(2026, time.January, 1, 0, 30, 0, 0, tokyo))
		require.NoError(t, err)
		assert.Equal(t, "2026-01-01", d.String())
	})

	t.Run("pointers", func(t *testing.T) {
		tm := time.Date(2026, time.November, 1, 1, 30, 0, 0, ny)
		d, err := NormalizeDate(&tm)
		require.NoError(t, err)
		assert.Equal(t, "2026-11-01", d.String())

		date := MustParseDate("2026-05-05")
		d, err = NormalizeDate(&date)
		require.NoError(t, err)
		assert.Equal(t, date, d)
	})

	t.Run("rejected inputs", func(t *testing.T) {
		var nilTime *time.Time
		var nilDate *Date
		for _, v := range []any{nil, 42, time.Time{}, nilTime, nilDate, Date{2026, time.February, 30}, "2026/03/03"} {
			_, err := NormalizeDate(v)
			assert.ErrorIs(t, err, ErrInvalidDate, "input %#v", v)
		}
	})
}

func TestDate_Compare(t *testing.T) {
	a := MustParseDate("2026-03-03")
	b := MustParseDate("2026-03-04")
	c := MustParseDate("2027-01-01")

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(MustParseDate("2026-03-03")))
	assert.Equal(t, -1, b.Compare(c))
	assert.Equal(t, 1, MustParseDate("2026-12-01").Compare(MustParseDate("2026-02-28")))

	assert.True(t, a.Before(b))
	assert.True(t, c.After(b))
	assert.True(t, a.Equal(MustParseDate("2026-03-03")))
}

func TestDate_CompareMatchesString(t *testing.T) {
	days := []Date{
		MustParseDate("2026-01-01"),
		MustParseDate("2026-01-10"),
		MustParseDate("2026-10-01"),
		MustParseDate("2025-12-31"),
		NewDate(2026, time.January, 1),
	}
	for _, a := range days {
		for _, b := range days {
			assert.Equal(t, a.String() == b.String(), a.Compare(b) == 0, "%s vs %s", a, b)
		}
	}
}

func TestDate_AddDays(t *testing.T) {
	tests := []struct {
		from string
		n    int
		want string
	}{
		{"2026-03-03", 1, "2026-03-04"},
		{"2026-02-28", 1, "2026-03-01"},
		{"2028-02-28", 1, "2028-02-29"},
		{"2026-12-31", 1, "2027-01-01"},
		{"2027-01-01", -1, "2026-12-31"},
		{"2026-03-08", 1, "2026-03-09"},
		{"2026-11-01", 1, "2026-11-02"},
		{"2026-03-31", -31, "2026-02-28"},
		{"2026-01-15", 365, "2027-01-15"},
		{"2026-06-15", 0, "2026-06-15"},
	}

	for _, tt := range tests {
		got := MustParseDate(tt.from).AddDays(tt.n)
		assert.Equal(t, tt.want, got.String(), "%s %+d", tt.from, tt.n)
	}
}

func TestDiffDays(t *testing.T) {
	assert.Equal(t, 1, DiffDays(MustParseDate("2026-03-03"), MustParseDate("2026-03-04")))
	assert.Equal(t, 3, DiffDays(MustParseDate("2026-02-28"), MustParseDate("2026-03-03")))
	assert.Equal(t, 1, DiffDays(MustParseDate("2026-12-31"), MustParseDate("2027-01-01")))
	assert.Equal(t, -2, DiffDays(MustParseDate("2026-03-10"), MustParseDate("2026-03-08")))
	assert.Equal(t, 0, DiffDays(MustParseDate("2026-03-08"), MustParseDate("2026-03-08")))
}

func TestDiffDays_AddDaysRoundTrip(t *testing.T) {
	starts := []string{"2026-01-01", "2026-02-28", "2026-03-07", "2026-03-08", "2026-10-31", "2026-11-01", "2026-12-31", "2028-02-29"}
	for _, s := range starts {
		a := MustParseDate(s)
		for n := -400; n <= 400; n += 7 {
			assert.Equal(t, n, DiffDays(a, a.AddDays(n)), "%s %+d", s, n)
		}
		for n := -3; n <= 3; n++ {
			assert.Equal(t, n, DiffDays(a, a.AddDays(n)), "%s %+d", s, n)
		}
	}
}

func TestDiffDays_Centuries(t *testing.T) {
	a := MustParseDate("1000-01-01")
	for _, n := range []int{106751, 106752, 200000, -200000, 365242, -365242, 3000000} {
		assert.Equal(t, n, DiffDays(a, a.AddDays(n)), "%+d", n)
	}

	assert.Equal(t, 3286817, DiffDays(MustParseDate("0001-01-01"), MustParseDate("9000-01-01")))
}

func TestDiffDays_IndependentOfLocalZone(t *testing.T) {
	// Переход на летнее время в США 8 марта 2026, обратно 1 ноября 2026
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	springFrom, err := NormalizeDate(time.Date(2026, time.March, 7, 0, 0, 0, 0, ny))
	require.NoError(t, err)
	springTo, err := NormalizeDate(time.Date(2026, time.March, 10, 0, 0, 0, 0, ny))
	require.NoError(t, err)
	assert.Equal(t, 3, DiffDays(springFrom, springTo))

	fallFrom, err := NormalizeDate(time.Date(2026, time.October, 31, 0, 0, 0, 0, ny))
	require.NoError(t, err)
	fallTo, err := NormalizeDate(time.Date(2026, time.November, 3, 0, 0, 0, 0, ny))
	require.NoError(t, err)
	assert.Equal(t, 3, DiffDays(fallFrom, fallTo))
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		Checkin Date `json:"checkin"`
	}

	data, err := json.Marshal(payload{Checkin: MustParseDate("2026-03-03")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"checkin":"2026-03-03"}`, string(data))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"checkin":"2026-02-28"}`), &p))
	assert.Equal(t, MustParseDate("2026-02-28"), p.Checkin)

	err = json.Unmarshal([]byte(`{"checkin":"2026-02-30"}`), &p)
	assert.ErrorIs(t, err, ErrInvalidDate)

	err = json.Unmarshal([]byte(`{"checkin":20260228}`), &p)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDate_ScanValue(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-03-03", d.String())

	require.NoError(t, d.Scan([]byte("2026-03-04")))
	assert.Equal(t, "2026-03-04", d.String())

	require.NoError(t, d.Scan("2026-03-05T00:00:00Z"))
	assert.Equal(t, "2026-03-05", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.ErrorIs(t, d.Scan(3.14), ErrInvalidDate)

	v, err := MustParseDate("2026-03-03").Value()
	require.NoError(t, err)
	assert.Equal(t, "2026-03-03", v)

	v, err = Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
