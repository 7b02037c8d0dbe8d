package get_seat_statuses

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getSeatStatuses "github.com/JamesSerenio/metyme-booking-service/internal/usecase/get_seat_statuses"
)

type fakeUseCase struct {
	resp   *getSeatStatuses.Response
	gotReq *getSeatStatuses.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *getSeatStatuses.Request) (*getSeatStatuses.Response, error) {
	f.gotReq = req
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle_AtParameter(t *testing.T) {
	at := time.Date(2025, 10, 15, 14, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &getSeatStatuses.Response{AsOf: at}}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/seats/statuses?at=2025-10-15T14:00:00Z", nil)
	rec := httptest.NewRecorder()

	NewHandler(uc, nopLogger{}).Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.gotReq)
	require.NotNil(t, uc.gotReq.At)
	assert.True(t, at.Equal(*uc.gotReq.At))
}

func TestHandle_DefaultInstant(t *testing.T) {
	uc := &fakeUseCase{resp: &getSeatStatuses.Response{}}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/seats/statuses", nil)
	rec := httptest.NewRecorder()

	NewHandler(uc, nopLogger{}).Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.gotReq)
	assert.Nil(t, uc.gotReq.At, "no at parameter means current time")
}

func TestHandle_InvalidAt(t *testing.T) {
	uc := &fakeUseCase{resp: &getSeatStatuses.Response{}}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/seats/statuses?at=yesterday", nil)
	rec := httptest.NewRecorder()

	NewHandler(uc, nopLogger{}).Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.gotReq)
}
