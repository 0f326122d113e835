package timeslot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/easerve/Grooming-BookingService/internal/domain"
	"github.com/easerve/Grooming-BookingService/pkg/dbmetrics"
	"github.com/easerve/Grooming-BookingService/pkg/psqlbuilder"
	"github.com/easerve/Grooming-BookingService/pkg/types"
)

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// AdditionalSlot вручную добавленный персоналом занятый слот
// Учитывается в расчете доступности наравне с бронированиями
type AdditionalSlot struct {
	ID        int64
	Date      time.Time
	Time      types.TimeString
	Note      *string
	CreatedAt time.Time
}

// Repository репозиторий для работы с дополнительными слотами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория дополнительных слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает дополнительный слот
func (r *Repository) Create(ctx context.Context, slot *AdditionalSlot) (*AdditionalSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("additional_time_slot").
		Columns("slot_date", "slot_time", "note").
		Values(slot.Date, slot.Time, slot.Note).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&slot.ID, &createdAt)
	if err != nil {
		// 23505 = unique_violation по (slot_date, slot_time)
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrSlotAlreadyExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	slot.CreatedAt = createdAt.Time
	return slot, nil
}

// Delete удаляет дополнительный слот
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("additional_time_slot").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// GetBookedDays получает дополнительные слоты, сгруппированные по дате
func (r *Repository) GetBookedDays(ctx context.Context, from, to time.Time) ([]domain.BookedDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("slot_date", "slot_time").
		From("additional_time_slot").
		Where(squirrel.GtOrEq{"slot_date": from}).
		Where(squirrel.LtOrEq{"slot_date": to}).
		OrderBy("slot_date ASC, slot_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedDays - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedDays - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	days := make([]domain.BookedDay, 0)
	for rows.Next() {
		var (
			date time.Time
			t    types.TimeString
		)
		if err := rows.Scan(&date, &t); err != nil {
			return nil, fmt.Errorf("%w: GetBookedDays - scan row: %v", ErrScanRow, err)
		}

		dateStr := date.Format(domain.DateFormat)
		if n := len(days); n > 0 && days[n-1].Date == dateStr {
			days[n-1].Times = append(days[n-1].Times, t)
			continue
		}
		days = append(days, domain.BookedDay{Date: dateStr, Times: []types.TimeString{t}})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBookedDays - rows error: %v", ErrScanRow, err)
	}

	return days, nil
}

// List получает дополнительные слоты за период с их ID (для админской сетки)
func (r *Repository) List(ctx context.Context, from, to time.Time) ([]*AdditionalSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "slot_date", "slot_time", "note", "created_at").
		From("additional_time_slot").
		Where(squirrel.GtOrEq{"slot_date": from}).
		Where(squirrel.LtOrEq{"slot_date": to}).
		OrderBy("slot_date ASC, slot_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*AdditionalSlot, 0)
	for rows.Next() {
		var (
			slot      AdditionalSlot
			createdAt sql.NullTime
		)
		if err := rows.Scan(&slot.ID, &slot.Date, &slot.Time, &slot.Note, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		slot.CreatedAt = createdAt.Time
		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
