package rateconfig

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/JamesSerenio/metyme-booking-service/internal/domain"
	"github.com/JamesSerenio/metyme-booking-service/pkg/dbmetrics"
	"github.com/JamesSerenio/metyme-booking-service/pkg/psqlbuilder"
)

// Repository репозиторий конфигурации тарифа лаунжа.
// Хранится одна актуальная строка; обновление перезаписывает её.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория тарифа
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetCurrent получает действующую конфигурацию тарифа
func (r *Repository) GetCurrent(ctx context.Context) (*domain.RateConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"hourly_rate",
		"free_grace_minutes",
		"currency",
		"created_at",
		"updated_at",
	).
		From("rate_config").
		OrderBy("id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetCurrent - build select query: %v", ErrBuildQuery, err)
	}

	var config domain.RateConfig
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&config.HourlyRate,
		&config.FreeGraceMinutes,
		&config.Currency,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCurrent - scan config: %v", ErrScanRow, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return &config, nil
}

// Upsert сохраняет новую конфигурацию тарифа как действующую
func (r *Repository) Upsert(ctx context.Context, config *domain.RateConfig) (*domain.RateConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("rate_config").
		Columns(
			"hourly_rate",
			"free_grace_minutes",
			"currency",
		).
		Values(
			config.HourlyRate,
			config.FreeGraceMinutes,
			config.Currency,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return config, nil
}
