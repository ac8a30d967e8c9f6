package get_calendar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LodgeBookingService/internal/domain"
	getCalendar "github.com/m04kA/LodgeBookingService/internal/usecase/get_calendar"
	"github.com/m04kA/LodgeBookingService/pkg/types"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getCalendar.Request) (*getCalendar.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*getCalendar.Response)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func get(uc *mockUseCase, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	d := types.MustParseDate
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *getCalendar.Request) bool {
		return req.From.String() == "2026-03-01" && req.To.String() == "2026-03-08" &&
			req.SiteID != nil && *req.SiteID == 2 && req.BedConfigurationID == nil && !req.IncludeInactive
	})).Return(&getCalendar.Response{
		From: d("2026-03-01"),
		To:   d("2026-03-08"),
		Days: 7,
		Rows: []getCalendar.Row{{
			Room: &domain.Room{ID: "R1", SiteID: 2, IsActive: true},
			Reservations: []getCalendar.Entry{{
				Reservation:        &domain.Reservation{ID: 5, RoomID: "R1", Checkin: d("2026-02-27"), Checkout: d("2026-03-02"), Status: domain.StatusCheckedIn},
				Nights:             3,
				StartsBeforeWindow: true,
			}},
		}},
	}, nil).Once()

	rec := get(uc, "/api/v1/calendar?from=2026-03-01&to=2026-03-08&siteId=2")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CalendarResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 7, resp.Days)
	require.Len(t, resp.Rows, 1)
	require.Len(t, resp.Rows[0].Reservations, 1)

	entry := resp.Rows[0].Reservations[0]
	assert.Equal(t, int64(5), entry.ID)
	assert.Equal(t, "2026-02-27", entry.Checkin.String())
	assert.True(t, entry.StartsBeforeWindow)
	assert.False(t, entry.EndsAfterWindow)
}

func TestHandle_BadQuery(t *testing.T) {
	uc := &mockUseCase{}

	for _, target := range []string{
		"/api/v1/calendar",
		"/api/v1/calendar?from=2026-03-01",
		"/api/v1/calendar?from=2026-03-01&to=2026-03-32",
		"/api/v1/calendar?from=2026-03-01&to=2026-03-08&siteId=abc",
		"/api/v1/calendar?from=2026-03-01&to=2026-03-08&includeInactive=maybe",
	} {
		assert.Equal(t, http.StatusBadRequest, get(uc, target).Code, target)
	}
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandle_WindowErrors(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, getCalendar.ErrWindowTooLarge).Once()
	assert.Equal(t, http.StatusBadRequest, get(uc, "/api/v1/calendar?from=2026-01-01&to=2026-06-01").Code)

	uc = &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, getCalendar.ErrInternal).Once()
	assert.Equal(t, http.StatusInternalServerError, get(uc, "/api/v1/calendar?from=2026-01-01&to=2026-01-08").Code)
}
