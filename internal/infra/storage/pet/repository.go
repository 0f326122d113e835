package pet

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/easerve/Grooming-BookingService/internal/domain"
	"github.com/easerve/Grooming-BookingService/pkg/dbmetrics"
	"github.com/easerve/Grooming-BookingService/pkg/psqlbuilder"
)

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с питомцами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория питомцев
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает питомца
// ID (uuid) генерируется вызывающим кодом
func (r *Repository) Create(ctx context.Context, p *domain.Pet) (*domain.Pet, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("pets").
		Columns("id", "owner_phone", "name", "weight", "birth", "breed_id").
		Values(p.ID, p.OwnerPhone, p.Name, p.Weight, p.Birth, p.BreedID).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return p, nil
}

// GetByID получает питомца по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Pet, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := petSelect().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	p, err := scanPet(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan pet: %v", ErrScanRow, err)
	}

	return p, nil
}

// ListByPhone получает питомцев владельца по номеру телефона
func (r *Repository) ListByPhone(ctx context.Context, phone string) ([]*domain.Pet, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := petSelect().
		Where(squirrel.Eq{"owner_phone": phone}).
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByPhone - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByPhone - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	pets := make([]*domain.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByPhone - scan row: %v", ErrScanRow, err)
		}
		pets = append(pets, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByPhone - rows error: %v", ErrScanRow, err)
	}

	return pets, nil
}

func petSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"owner_phone",
		"name",
		"weight",
		"birth",
		"breed_id",
		"created_at",
		"updated_at",
	).From("pets")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPet(row rowScanner) (*domain.Pet, error) {
	var (
		p                    domain.Pet
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&p.ID,
		&p.OwnerPhone,
		&p.Name,
		&p.Weight,
		&p.Birth,
		&p.BreedID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time
	return &p, nil
}
