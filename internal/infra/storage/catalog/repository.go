package catalog

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

// Repository репозиторий каталога услуг, опций и пород
// Каталог принадлежит салону и меняется только через БД, клиентский код
// никогда его не мутирует
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// serviceSelect общий select услуги с присоединенным справочником названий
func serviceSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"s.id",
		"s.name_id",
		"sn.name",
		"s.price",
		"s.weight_range_id",
		"s.type_id",
		"sn.kind",
		"sn.price_per_kg",
	).
		From("services s").
		Join("services_names sn ON sn.id = s.name_id")
}

// GetMainServices получает основные услуги для пары (весовая категория, тип породы)
// Пустой результат не является ошибкой: вызывающий показывает "услуги не найдены"
func (r *Repository) GetMainServices(ctx context.Context, weightTier, breedType int) ([]domain.GroomingService, error) {
	return r.getServices(ctx, weightTier, breedType, false)
}

// GetAdditionalServices получает дополнительные услуги для пары (весовая категория, тип породы)
func (r *Repository) GetAdditionalServices(ctx context.Context, weightTier, breedType int) ([]domain.GroomingService, error) {
	return r.getServices(ctx, weightTier, breedType, true)
}

func (r *Repository) getServices(ctx context.Context, weightTier, breedType int, additional bool) ([]domain.GroomingService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := serviceSelect().
		Where(squirrel.Eq{"s.weight_range_id": weightTier}).
		Where(squirrel.Eq{"s.type_id": breedType}).
		Where(squirrel.Eq{"sn.is_additional": additional}).
		OrderBy("s.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanServices(rows)
}

// GetServiceByID получает услугу по ID
func (r *Repository) GetServiceByID(ctx context.Context, id int64) (*domain.GroomingService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := serviceSelect().
		Where(squirrel.Eq{"s.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - build select query: %v", ErrBuildQuery, err)
	}

	var svc domain.GroomingService
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&svc.ID,
		&svc.NameID,
		&svc.Name,
		&svc.BasePrice,
		&svc.WeightTierID,
		&svc.BreedTypeID,
		&svc.Kind,
		&svc.PricePerKg,
	)

	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - scan service: %v", ErrScanRow, err)
	}

	return &svc, nil
}

// GetOptionsForService получает опции услуги с их категориями
// Опции привязаны к справочнику названий услуг, а не к конкретной строке
// каталога: один набор опций обслуживает услугу во всех весовых категориях
func (r *Repository) GetOptionsForService(ctx context.Context, serviceID int64) ([]domain.ServiceOption, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"so.id",
		"so.name",
		"so.add_price",
		"soc.name",
		"soc.multi_select",
		"so.variable",
	).
		From("service_options so").
		Join("service_option_category soc ON soc.id = so.category_id").
		Join("services s ON s.name_id = so.service_name_id").
		Where(squirrel.Eq{"s.id": serviceID}).
		OrderBy("soc.id ASC, so.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOptionsForService - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOptionsForService - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanOptions(rows)
}

// GetOptionsByIDs получает опции услуги по списку ID
// Используется при расчете цены и создании бронирования: опции, не
// принадлежащие услуге, в результат не попадают
func (r *Repository) GetOptionsByIDs(ctx context.Context, serviceID int64, optionIDs []int64) ([]domain.ServiceOption, error) {
	if len(optionIDs) == 0 {
		return []domain.ServiceOption{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"so.id",
		"so.name",
		"so.add_price",
		"soc.name",
		"soc.multi_select",
		"so.variable",
	).
		From("service_options so").
		Join("service_option_category soc ON soc.id = so.category_id").
		Join("services s ON s.name_id = so.service_name_id").
		Where(squirrel.Eq{"s.id": serviceID}).
		Where(squirrel.Eq{"so.id": optionIDs}).
		OrderBy("so.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOptionsByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOptionsByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanOptions(rows)
}

// GetBreedByID получает породу по ID
func (r *Repository) GetBreedByID(ctx context.Context, id int64) (*domain.Breed, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "type_id").
		From("breeds").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBreedByID - build select query: %v", ErrBuildQuery, err)
	}

	var breed domain.Breed
	err = executor.QueryRowContext(ctx, query, args...).Scan(&breed.ID, &breed.Name, &breed.TypeID)
	if err == sql.ErrNoRows {
		return nil, ErrBreedNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBreedByID - scan breed: %v", ErrScanRow, err)
	}

	return &breed, nil
}

// ListBreeds получает все породы для формы выбора
func (r *Repository) ListBreeds(ctx context.Context) ([]domain.Breed, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "type_id").
		From("breeds").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBreeds - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBreeds - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	breeds := make([]domain.Breed, 0)
	for rows.Next() {
		var breed domain.Breed
		if err := rows.Scan(&breed.ID, &breed.Name, &breed.TypeID); err != nil {
			return nil, fmt.Errorf("%w: ListBreeds - scan row: %v", ErrScanRow, err)
		}
		breeds = append(breeds, breed)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBreeds - rows error: %v", ErrScanRow, err)
	}

	return breeds, nil
}

func scanServices(rows *sql.Rows) ([]domain.GroomingService, error) {
	services := make([]domain.GroomingService, 0)

	for rows.Next() {
		var svc domain.GroomingService
		err := rows.Scan(
			&svc.ID,
			&svc.NameID,
			&svc.Name,
			&svc.BasePrice,
			&svc.WeightTierID,
			&svc.BreedTypeID,
			&svc.Kind,
			&svc.PricePerKg,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

func scanOptions(rows *sql.Rows) ([]domain.ServiceOption, error) {
	options := make([]domain.ServiceOption, 0)

	for rows.Next() {
		var opt domain.ServiceOption
		err := rows.Scan(
			&opt.ID,
			&opt.Name,
			&opt.AddPrice,
			&opt.Category,
			&opt.MultiSelect,
			&opt.Variable,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanOptions - scan row: %v", ErrScanRow, err)
		}
		options = append(options, opt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanOptions - rows error: %v", ErrScanRow, err)
	}

	return options, nil
}
