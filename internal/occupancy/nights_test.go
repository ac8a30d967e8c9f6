package occupancy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LodgeBookingService/pkg/types"
)

func TestCountNights(t *testing.T) {
	d := types.MustParseDate

	assert.Equal(t, 1, CountNights(d("2026-03-03"), d("2026-03-04")))
	assert.Equal(t, 3, CountNights(d("2026-03-03"), d("2026-03-06")))
	assert.Equal(t, 3, CountNights(d("2026-02-28"), d("2026-03-03")))
	assert.Equal(t, 2, CountNights(d("2026-12-31"), d("2027-01-02")))
	assert.Equal(t, 3, CountNights(d("2026-03-07"), d("2026-03-10")))
	assert.Equal(t, 3, CountNights(d("2026-10-31"), d("2026-11-03")))
	assert.Equal(t, 0, CountNights(d("2026-03-03"), d("2026-03-03")))
}

func TestValidateRange(t *testing.T) {
	d := types.MustParseDate

	assert.True(t, ValidateRange(d("2026-03-03"), d("2026-03-04")).Valid)

	res := ValidateRange(d("2026-03-03"), d("2026-03-03"))
	require.False(t, res.Valid)
	assert.ErrorIs(t, res.Err, ErrInvalidRange)
	assert.Contains(t, res.Message(), "2026-03-03")

	res = ValidateRange(d("2026-03-05"), d("2026-03-03"))
	require.False(t, res.Valid)
	assert.ErrorIs(t, res.Err, ErrInvalidRange)
}

func TestValidateRange_ImpliesAtLeastOneNight(t *testing.T) {
	start := types.MustParseDate("2026-02-25")
	for i := -3; i <= 10; i++ {
		checkout := start.AddDays(i)
		if ValidateRange(start, checkout).Valid {
			assert.GreaterOrEqual(t, CountNights(start, checkout), 1)
		} else {
			assert.LessOrEqual(t, CountNights(start, checkout), 0)
		}
	}
}

func TestValidateWithinWindow(t *testing.T) {
	windowStart := types.MustParseDate("2026-03-01")
	windowEnd := types.MustParseDate("2026-03-31")

	assert.True(t, ValidateWithinWindow(rng("R1", "2026-02-20", "2026-03-03"), windowStart, windowEnd).Valid)
	assert.True(t, ValidateWithinWindow(rng("R1", "2026-03-30", "2026-04-05"), windowStart, windowEnd).Valid)
	assert.True(t, ValidateWithinWindow(rng("R1", "2026-02-01", "2026-05-01"), windowStart, windowEnd).Valid)
	assert.True(t, ValidateWithinWindow(rng("R1", "2026-06-01", "2026-06-02"), windowStart, windowEnd).Valid)

	res := ValidateWithinWindow(rng("R1", "2026-03-10", "2026-03-10"), windowStart, windowEnd)
	assert.False(t, res.Valid)
	assert.ErrorIs(t, res.Err, ErrInvalidRange)
}
