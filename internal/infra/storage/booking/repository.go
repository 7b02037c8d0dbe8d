package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/JamesSerenio/metyme-booking-service/internal/domain"
	"github.com/JamesSerenio/metyme-booking-service/pkg/dbmetrics"
	"github.com/JamesSerenio/metyme-booking-service/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"group_id",
	"seat_id",
	"customer_name",
	"kind",
	"status",
	"start_at",
	"end_at",
	"duration_minutes",
	"amount",
	"open_time",
	"is_reservation",
	"reservation_date",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со строками бронирований.
// Бронирование на несколько мест хранится как несколько строк с общим group_id.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateGroup вставляет все строки одной группы бронирования (по строке на место).
// Если в контексте передана активная транзакция, использует её — путь создания
// бронирования всегда вызывает этот метод внутри сериализуемой транзакции
// вместе с финальной проверкой конфликтов.
func (r *Repository) CreateGroup(ctx context.Context, rows []*domain.Booking) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Insert("bookings").
		Columns(
			"group_id",
			"seat_id",
			"customer_name",
			"kind",
			"status",
			"start_at",
			"end_at",
			"duration_minutes",
			"amount",
			"open_time",
			"is_reservation",
			"reservation_date",
		)

	for _, b := range rows {
		builder = builder.Values(
			b.GroupID,
			b.SeatID,
			b.CustomerName,
			b.Kind,
			b.Status,
			b.Interval.Start,
			b.Interval.End,
			b.DurationMinutes,
			b.Amount,
			b.OpenTime,
			b.IsReservation,
			b.ReservationDate,
		)
	}

	query, args, err := builder.
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateGroup - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateGroup - execute insert: %v", ErrExecQuery, err)
	}
	defer result.Close()

	// RETURNING отдаёт строки в порядке вставки
	for i := 0; result.Next(); i++ {
		var createdAt, updatedAt sql.NullTime
		if err := result.Scan(&rows[i].ID, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: CreateGroup - scan returning row: %v", ErrScanRow, err)
		}
		rows[i].CreatedAt = createdAt.Time
		rows[i].UpdatedAt = updatedAt.Time
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("%w: CreateGroup - rows error: %v", ErrScanRow, err)
	}

	return rows, nil
}

// GetByGroupID получает все строки одной группы бронирования
func (r *Repository) GetByGroupID(ctx context.Context, groupID uuid.UUID) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"group_id": groupID}).
		OrderBy("seat_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByGroupID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByGroupID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := r.scanBookings(rows)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, ErrBookingNotFound
	}
	return bookings, nil
}

// GetOverlapping получает активные строки, чьи интервалы пересекают окно фильтра.
// Пересечение полуоткрытое: строка попадает в выборку, если start_at < To и
// (end_at IS NULL OR end_at > From) — касание границ пересечением не считается.
//
// Если метод вызван внутри транзакции и фильтр ограничен конкретными местами,
// добавляется FOR UPDATE — это финальная проверка конфликтов перед вставкой.
func (r *Repository) GetOverlapping(ctx context.Context, filter domain.SeatBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings")

	if len(filter.SeatIDs) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"seat_id": filter.SeatIDs})
	}

	// Окно по полуоткрытому пересечению; открытый конец (NULL) = +бесконечность
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_at": *filter.To})
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.Eq{"end_at": nil},
			squirrel.Gt{"end_at": *filter.From},
		})
	}

	if !filter.IncludeInactive {
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	selectBuilder = selectBuilder.OrderBy("start_at ASC, seat_id ASC")

	// Блокировка строк только в финальной проверке перед записью
	if dbmetrics.IsInTransaction(ctx) && len(filter.SeatIDs) > 0 {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// CancelGroup отменяет все активные строки группы с указанием причины
func (r *Repository) CancelGroup(ctx context.Context, groupID uuid.UUID, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"group_id": groupID,
			"status":   domain.StatusActive,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: CancelGroup - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: CancelGroup - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: CancelGroup - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// CloseGroup закрывает открытое по времени бронирование: фиксирует конец,
// фактическую длительность и сумму
func (r *Repository) CloseGroup(ctx context.Context, groupID uuid.UUID, end time.Time, bill domain.Bill) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusClosed).
		Set("end_at", end).
		Set("duration_minutes", bill.TotalMinutes).
		Set("amount", bill.Amount).
		Set("open_time", false).
		Where(squirrel.Eq{
			"group_id":  groupID,
			"status":    domain.StatusActive,
			"open_time": true,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: CloseGroup - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: CloseGroup - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: CloseGroup - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrCannotClose
	}

	return nil
}

// DeleteOverridesCovering удаляет принудительные статусы места, действующие
// в указанный момент ("очистить сейчас" в админке карты мест).
// Оверрайды, запланированные на будущее, не затрагиваются.
func (r *Repository) DeleteOverridesCovering(ctx context.Context, seatID domain.SeatID, at time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	overrideKinds := []string{
		string(domain.KindTemporaryHold),
		string(domain.KindPromoCurrent),
		string(domain.KindPromoFuture),
		string(domain.KindReservedBlock),
	}

	deleteBuilder := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{
			"seat_id": seatID,
			"kind":    overrideKinds,
			"status":  domain.StatusActive,
		}).
		Where(squirrel.LtOrEq{"start_at": at}).
		Where(squirrel.Or{
			squirrel.Eq{"end_at": nil},
			squirrel.Gt{"end_at": at},
		})

	query, args, err := deleteBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOverridesCovering - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOverridesCovering - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOverridesCovering - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// scanBookings сканирует результаты запроса в слайс строк бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking
		var endAt, reservationDate sql.NullTime
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.GroupID,
			&b.SeatID,
			&b.CustomerName,
			&b.Kind,
			&b.Status,
			&b.Interval.Start,
			&endAt,
			&b.DurationMinutes,
			&b.Amount,
			&b.OpenTime,
			&b.IsReservation,
			&reservationDate,
			&b.CancellationReason,
			&b.CancelledAt,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		if endAt.Valid {
			end := endAt.Time
			b.Interval.End = &end
		}
		if reservationDate.Valid {
			date := reservationDate.Time
			b.ReservationDate = &date
		}
		b.CreatedAt = createdAt.Time
		b.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
