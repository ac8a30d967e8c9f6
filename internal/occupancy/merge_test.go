package occupancy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LodgeBookingService/internal/domain"
	"github.com/m04kA/LodgeBookingService/pkg/types"
)

func slot(room, date string) domain.Slot {
	return domain.Slot{RoomID: room, Date: date}
}

func rng(room, checkin, checkout string) domain.Range {
	return domain.Range{
		RoomID:   room,
		Checkin:  types.MustParseDate(checkin),
		Checkout: types.MustParseDate(checkout),
	}
}

func TestMergeConsecutive(t *testing.T) {
	tests := []struct {
		name  string
		slots []domain.Slot
		want  []domain.Range
	}{
		{
			name:  "single day is one night",
			slots: []domain.Slot{slot("R1", "2026-03-03")},
			want:  []domain.Range{rng("R1", "2026-03-03", "2026-03-04")},
		},
		{
			name:  "three consecutive days",
			slots: []domain.Slot{slot("R1", "2026-03-03"), slot("R1", "2026-03-04"), slot("R1", "2026-03-05")},
			want:  []domain.Range{rng("R1", "2026-03-03", "2026-03-06")},
		},
		{
			name:  "month boundary",
			slots: []domain.Slot{slot("R1", "2026-02-28"), slot("R1", "2026-03-01"), slot("R1", "2026-03-02")},
			want:  []domain.Range{rng("R1", "2026-02-28", "2026-03-03")},
		},
		{
			name:  "leap year month boundary",
			slots: []domain.Slot{slot("R1", "2028-02-28"), slot("R1", "2028-02-29"), slot("R1", "2028-03-01")},
			want:  []domain.Range{rng("R1", "2028-02-28", "2028-03-02")},
		},
		{
			name:  "year boundary",
			slots: []domain.Slot{slot("R1", "2026-12-31"), slot("R1", "2027-01-01")},
			want:  []domain.Range{rng("R1", "2026-12-31", "2027-01-02")},
		},
		{
			name:  "spring dst transition",
			slots: []domain.Slot{slot("R1", "2026-03-07"), slot("R1", "2026-03-08"), slot("R1", "2026-03-09")},
			want:  []domain.Range{rng("R1", "2026-03-07", "2026-03-10")},
		},
		{
			name:  "autumn dst transition",
			slots: []domain.Slot{slot("R1", "2026-10-31"), slot("R1", "2026-11-01"), slot("R1", "2026-11-02")},
			want:  []domain.Range{rng("R1", "2026-10-31", "2026-11-03")},
		},
		{
			name:  "unsorted input",
			slots: []domain.Slot{slot("R1", "2026-03-05"), slot("R1", "2026-03-03"), slot("R1", "2026-03-04")},
			want:  []domain.Range{rng("R1", "2026-03-03", "2026-03-06")},
		},
		{
			name:  "duplicates collapse",
			slots: []domain.Slot{slot("R1", "2026-03-03"), slot("R1", "2026-03-03"), slot("R1", "2026-03-04"), slot("R1", "2026-03-04")},
			want:  []domain.Range{rng("R1", "2026-03-03", "2026-03-05")},
		},
		{
			name:  "one day gap starts new range",
			slots: []domain.Slot{slot("R1", "2026-03-03"), slot("R1", "2026-03-05")},
			want:  []domain.Range{rng("R1", "2026-03-03", "2026-03-04"), rng("R1", "2026-03-05", "2026-03-06")},
		},
		{
			name:  "long gap starts new range",
			slots: []domain.Slot{slot("R1", "2026-03-10"), slot("R1", "2026-03-03"), slot("R1", "2026-03-04")},
			want:  []domain.Range{rng("R1", "2026-03-03", "2026-03-05"), rng("R1", "2026-03-10", "2026-03-11")},
		},
		{
			name: "rooms merged independently and ordered by id",
			slots: []domain.Slot{
				slot("R2", "2026-03-04"), slot("R1", "2026-03-03"),
				slot("R2", "2026-03-03"), slot("R1", "2026-03-05"),
			},
			want: []domain.Range{
				rng("R1", "2026-03-03", "2026-03-04"),
				rng("R1", "2026-03-05", "2026-03-06"),
				rng("R2", "2026-03-03", "2026-03-05"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MergeConsecutive(tt.slots)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMergeConsecutive_Empty(t *testing.T) {
	got, err := MergeConsecutive(nil)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got, err = MergeConsecutive([]domain.Slot{})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMergeConsecutive_MalformedSlot(t *testing.T) {
	tests := []struct {
		name        string
		slots       []domain.Slot
		invalidDate bool
	}{
		{name: "missing room", slots: []domain.Slot{slot("R1", "2026-03-03"), slot("", "2026-03-04")}},
		{name: "missing date", slots: []domain.Slot{slot("R1", "")}},
		{name: "impossible date", slots: []domain.Slot{slot("R1", "2026-02-30")}, invalidDate: true},
		{name: "date with time", slots: []domain.Slot{slot("R1", "2026-03-03T00:00:00Z")}, invalidDate: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MergeConsecutive(tt.slots)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrMalformedSlot)
			if tt.invalidDate {
				assert.ErrorIs(t, err, types.ErrInvalidDate)
			}
		})
	}
}

func TestMergeConsecutive_NineSlotsAcrossThreeRooms(t *testing.T) {
	var slots []domain.Slot
	for _, room := range []string{"R3", "R1", "R2"} {
		for _, day := range []string{"2026-03-03", "2026-03-04", "2026-03-05"} {
			slots = append(slots, slot(room, day))
		}
	}

	got, err := MergeConsecutive(slots)
	require.NoError(t, err)
	require.Len(t, got, 3)

	for i, room := range []string{"R1", "R2", "R3"} {
		assert.Equal(t, rng(room, "2026-03-03", "2026-03-06"), got[i])
		assert.Equal(t, 3, CountNights(got[i].Checkin, got[i].Checkout))
	}

	assert.True(t, ValidateNoOverlaps(got).Valid)
}

func TestMergeConsecutive_Idempotent(t *testing.T) {
	slots := []domain.Slot{
		slot("R1", "2026-12-30"), slot("R1", "2026-12-31"), slot("R1", "2027-01-01"),
		slot("R1", "2027-01-05"), slot("R2", "2026-03-08"), slot("R2", "2026-03-07"),
		slot("R2", "2026-03-07"), slot("R3", "2026-02-28"),
	}

	first, err := MergeConsecutive(slots)
	require.NoError(t, err)

	second, err := MergeConsecutive(ExpandRanges(first))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMergeConsecutive_OutputIsValid(t *testing.T) {
	slots := []domain.Slot{
		slot("R1", "2026-03-01"), slot("R1", "2026-03-02"), slot("R1", "2026-03-04"),
		slot("R1", "2026-03-06"), slot("R1", "2026-03-07"), slot("R2", "2026-03-01"),
	}

	got, err := MergeConsecutive(slots)
	require.NoError(t, err)

	for _, r := range got {
		assert.True(t, ValidateRange(r.Checkin, r.Checkout).Valid)
		assert.GreaterOrEqual(t, CountNights(r.Checkin, r.Checkout), 1)
	}
	assert.True(t, ValidateNoOverlaps(got).Valid)
}

func TestExpandRanges(t *testing.T) {
	got := ExpandRanges([]domain.Range{
		rng("R1", "2026-02-27", "2026-03-02"),
		rng("R2", "2026-03-03", "2026-03-04"),
	})

	assert.Equal(t, []domain.Slot{
		slot("R1", "2026-02-27"),
		slot("R1", "2026-02-28"),
		slot("R1", "2026-03-01"),
		slot("R2", "2026-03-03"),
	}, got)

	assert.Empty(t, ExpandRanges(nil))
}
