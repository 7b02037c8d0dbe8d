package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JamesSerenio/metyme-booking-service/internal/domain"
	createBooking "github.com/JamesSerenio/metyme-booking-service/internal/usecase/create_booking"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error

	gotReq *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc CreateBookingUseCase, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(payload))
	rec := httptest.NewRecorder()

	NewHandler(uc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	start := time.Date(2025, 10, 15, 14, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	uc := &fakeUseCase{resp: &createBooking.Response{
		GroupID:         "2b7af4a3-9be1-4f05-8f6a-21c98d35f901",
		CustomerName:    "Juan Dela Cruz",
		SeatIDs:         []domain.SeatID{"3"},
		Status:          "active",
		StartAt:         start,
		EndAt:           &end,
		DurationMinutes: 120,
		BillableMinutes: 115,
		Amount:          38.33,
		Currency:        "PHP",
		CreatedAt:       start,
	}}

	rec := doRequest(t, uc, CreateBookingRequest{
		CustomerName: "Juan Dela Cruz",
		SeatIDs:      []string{"3"},
		Duration:     "2:00",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Juan Dela Cruz", resp.CustomerName)
	assert.Equal(t, []string{"3"}, resp.SeatIDs)
	assert.Equal(t, 38.33, resp.Amount)
	require.NotNil(t, resp.EndAt)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "2:00", uc.gotReq.DurationText)
}

func TestHandle_SeatConflict(t *testing.T) {
	uc := &fakeUseCase{err: &createBooking.SeatConflictError{Seats: []domain.SeatID{"3"}}}

	rec := doRequest(t, uc, CreateBookingRequest{
		CustomerName: "Juan Dela Cruz",
		SeatIDs:      []string{"3"},
		Duration:     "2:00",
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_InvalidDuration(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrInvalidDuration}

	rec := doRequest(t, uc, CreateBookingRequest{
		CustomerName: "Juan Dela Cruz",
		SeatIDs:      []string{"3"},
		Duration:     "abc",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	NewHandler(&fakeUseCase{}, nopLogger{}).Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidReservationDate(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, CreateBookingRequest{
		CustomerName:    "Juan Dela Cruz",
		SeatIDs:         []string{"3"},
		IsReservation:   true,
		ReservationDate: "15-10-2025",
		StartTime:       "2pm",
		Duration:        "2:00",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
