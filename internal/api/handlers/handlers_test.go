package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LodgeBookingService/internal/domain"
	"github.com/m04kA/LodgeBookingService/pkg/types"
)

type sample struct {
	RoomID  string     `json:"roomId" validate:"required"`
	Checkin types.Date `json:"checkin" validate:"required"`
	Guests  int        `json:"guests" validate:"gte=0,lte=50"`
}

func TestDecodeJSON(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		var s sample
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"roomId":"R1","checkin":"2026-03-03","guests":2}`))
		require.NoError(t, DecodeJSON(req, &s))
		assert.Equal(t, "2026-03-03", s.Checkin.String())
	})

	t.Run("empty body", func(t *testing.T) {
		var s sample
		assert.ErrorIs(t, DecodeJSON(httptest.NewRequest(http.MethodPost, "/", nil), &s), ErrEmptyBody)
	})

	t.Run("invalid date", func(t *testing.T) {
		var s sample
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"roomId":"R1","checkin":"2026-02-30"}`))
		assert.ErrorIs(t, DecodeJSON(req, &s), types.ErrInvalidDate)
	})

	t.Run("unknown field", func(t *testing.T) {
		var s sample
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"roomId":"R1","checkin":"2026-03-03","price":10}`))
		assert.Error(t, DecodeJSON(req, &s))
	})

	t.Run("validation", func(t *testing.T) {
		var s sample
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"guests":51}`))
		err := DecodeJSON(req, &s)
		require.Error(t, err)

		msg := ValidationMessage(err, "fallback")
		assert.Contains(t, msg, "sample.RoomID")
		assert.Contains(t, msg, "sample.Checkin")
		assert.Contains(t, msg, "sample.Guests")
	})
}

func TestValidationMessage_Fallback(t *testing.T) {
	assert.Equal(t, "fallback", ValidationMessage(errors.New("boom"), "fallback"))
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondUnprocessable(rec, "номер выведен из продажи")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":422,"message":"номер выведен из продажи"}`, rec.Body.String())
}

func TestRespondReservationConflict(t *testing.T) {
	d := types.MustParseDate
	err := fmt.Errorf("wrapped: %w", &domain.ConflictError{Conflicts: []domain.StayConflict{{
		Stay: domain.Range{RoomID: "R1", Checkin: d("2026-03-03"), Checkout: d("2026-03-06")},
		Reservations: []*domain.Reservation{
			{ID: 11, RoomID: "R1", Checkin: d("2026-03-05"), Checkout: d("2026-03-08"), Status: domain.StatusConfirmed},
		},
	}}})

	rec := httptest.NewRecorder()
	RespondReservationConflict(rec, "даты заняты", err)
	require.Equal(t, http.StatusConflict, rec.Code)

	var body ConflictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusConflict, body.Code)
	require.Len(t, body.Conflicts, 1)
	assert.Equal(t, "R1", body.Conflicts[0].RoomID)
	require.Len(t, body.Conflicts[0].Reservations, 1)
	assert.Equal(t, int64(11), body.Conflicts[0].Reservations[0].ID)
	assert.Equal(t, 3, body.Conflicts[0].Reservations[0].Nights)
}

func TestCause(t *testing.T) {
	sentinel := errors.New("usecase: stay is too long")
	err := fmt.Errorf("%w: 120 nights, limit is 90", sentinel)
	assert.Equal(t, "120 nights, limit is 90", Cause(err, sentinel))
}

func TestQueryHelpers(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?from=2026-03-01&siteId=4&includeInactive=true&bad=x", nil)

	from, err := QueryDate(req, "from")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", from.String())

	to, err := QueryDate(req, "to")
	require.NoError(t, err)
	assert.Nil(t, to)

	site, err := QueryInt64(req, "siteId")
	require.NoError(t, err)
	assert.Equal(t, int64(4), *site)

	_, err = QueryInt64(req, "bad")
	assert.Error(t, err)

	inactive, err := QueryBool(req, "includeInactive")
	require.NoError(t, err)
	assert.True(t, inactive)
}
