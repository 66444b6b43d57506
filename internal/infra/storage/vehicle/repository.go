package vehicle

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
)

// vehicleColumns колонки таблицы vehicles в порядке сканирования
var vehicleColumns = []string{
	"id",
	"name",
	"type",
	"brand",
	"model",
	"year",
	"color",
	"logo",
	"image",
	"hourly_rate",
	"daily_rate",
	"weekly_rate",
	"monthly_rate",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога автомобилей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет автомобиль в каталог
// Используется сабмитом для сохранения синтезированного из свободного ввода
// автомобиля в одной транзакции с договором
func (r *Repository) Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("vehicles").
		Columns(
			"name",
			"type",
			"brand",
			"model",
			"year",
			"color",
			"logo",
			"image",
			"hourly_rate",
			"daily_rate",
			"weekly_rate",
			"monthly_rate",
		).
		Values(
			v.Name,
			v.Type,
			v.Brand,
			v.Model,
			v.Year,
			v.Color,
			v.Logo,
			v.Image,
			v.HourlyRate,
			v.DailyRate,
			v.WeeklyRate,
			v.MonthlyRate,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&v.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return v, nil
}

// GetByID получает автомобиль по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(vehicleColumns...).
		From("vehicles").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var v domain.Vehicle
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&v.ID,
		&v.Name,
		&v.Type,
		&v.Brand,
		&v.Model,
		&v.Year,
		&v.Color,
		&v.Logo,
		&v.Image,
		&v.HourlyRate,
		&v.DailyRate,
		&v.WeeklyRate,
		&v.MonthlyRate,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan vehicle: %v", ErrScanRow, err)
	}

	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return &v, nil
}

// List получает каталог автомобилей, отсортированный по названию
func (r *Repository) List(ctx context.Context) ([]*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(vehicleColumns...).
		From("vehicles").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	vehicles := make([]*domain.Vehicle, 0)

	for rows.Next() {
		var v domain.Vehicle
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&v.ID,
			&v.Name,
			&v.Type,
			&v.Brand,
			&v.Model,
			&v.Year,
			&v.Color,
			&v.Logo,
			&v.Image,
			&v.HourlyRate,
			&v.DailyRate,
			&v.WeeklyRate,
			&v.MonthlyRate,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		v.CreatedAt = createdAt.Time
		v.UpdatedAt = updatedAt.Time

		vehicles = append(vehicles, &v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return vehicles, nil
}
