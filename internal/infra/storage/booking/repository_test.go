package booking

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureExecutor записывает построенный запрос вместо обращения к БД

type captureExecutor struct {
	query string
	args  []interface{}
	rows  int64
}

func (e *captureExecutor) ExecContext(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	e.query = query
	e.args = args
	return fakeResult{rows: e.rows}, nil
}

func (e *captureExecutor) QueryContext(_ context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	e.query = query
	e.args = args
	return nil, sql.ErrNoRows
}

func (e *captureExecutor) QueryRowContext(_ context.Context, query string, args ...interface{}) *sql.Row {
	e.query = query
	e.args = args
	return nil
}

type fakeResult struct{ rows int64 }

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, nil }

func TestDeleteOverridesCovering_OnlyCurrentWindow(t *testing.T) {
	at := time.Date(2025, 10, 15, 14, 0, 0, 0, time.UTC)
	executor := &captureExecutor{rows: 1}
	repo := NewRepository(executor)

	removed, err := repo.DeleteOverridesCovering(context.Background(), "3", at)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	// Под удаление попадают только строки, действующие в момент at:
	// уже начавшиеся и ещё не закончившиеся. Оверрайд, запланированный
	// на будущее (start_at > at), условию не удовлетворяет и остаётся.
	assert.Contains(t, executor.query, "start_at <= ")
	assert.Contains(t, executor.query, "(end_at IS NULL OR end_at > ")
	assert.Contains(t, executor.args, at)
}
