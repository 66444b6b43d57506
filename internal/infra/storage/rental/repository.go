package rental

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
)

// rentalColumns полный набор колонок таблицы rentals в порядке сканирования
var rentalColumns = []string{
	"id",
	"agreement_number",
	"user_id",
	"client_full_name",
	"client_cnic",
	"client_phone",
	"client_address",
	"client_images",
	"vehicle_id",
	"vehicle_name",
	"vehicle_brand",
	"vehicle_model",
	"vehicle_year",
	"vehicle_color",
	"witness_name",
	"witness_cnic",
	"witness_phone",
	"witness_address",
	"witness_image",
	"delivery_date",
	"delivery_time",
	"return_date",
	"return_time",
	"rent_type",
	"custom_days",
	"total_amount",
	"advance_payment",
	"balance",
	"payment_status",
	"notes",
	"accessories",
	"vehicle_condition",
	"dents_scratches",
	"client_signature",
	"owner_signature",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с договорами аренды
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория договоров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет финализированный договор
// Если в контексте передана активная транзакция, использует её - сабмит
// создаёт синтезированный автомобиль и договор в одной транзакции
func (r *Repository) Create(ctx context.Context, rental *domain.Rental) (*domain.Rental, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("rentals").
		Columns(
			"agreement_number",
			"user_id",
			"client_full_name",
			"client_cnic",
			"client_phone",
			"client_address",
			"client_images",
			"vehicle_id",
			"vehicle_name",
			"vehicle_brand",
			"vehicle_model",
			"vehicle_year",
			"vehicle_color",
			"witness_name",
			"witness_cnic",
			"witness_phone",
			"witness_address",
			"witness_image",
			"delivery_date",
			"delivery_time",
			"return_date",
			"return_time",
			"rent_type",
			"custom_days",
			"total_amount",
			"advance_payment",
			"balance",
			"payment_status",
			"notes",
			"accessories",
			"vehicle_condition",
			"dents_scratches",
			"client_signature",
			"owner_signature",
		).
		Values(
			rental.AgreementNumber,
			rental.UserID,
			rental.Client.FullName,
			rental.Client.CNIC,
			rental.Client.Phone,
			rental.Client.Address,
			rental.Client.Images,
			rental.VehicleID,
			rental.VehicleName,
			rental.VehicleBrand,
			rental.VehicleModel,
			rental.VehicleYear,
			rental.VehicleColor,
			rental.Witness.Name,
			rental.Witness.CNIC,
			rental.Witness.Phone,
			rental.Witness.Address,
			rental.Witness.Image,
			rental.DeliveryDate,
			rental.DeliveryTime,
			rental.ReturnDate,
			rental.ReturnTime,
			rental.RentType,
			rental.CustomDays,
			rental.TotalAmount,
			rental.AdvancePayment,
			rental.Balance,
			rental.PaymentStatus,
			rental.Notes,
			rental.Accessories,
			rental.VehicleCondition,
			rental.DentsScratches,
			rental.ClientSignature,
			rental.OwnerSignature,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rental.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rental.CreatedAt = createdAt.Time
	rental.UpdatedAt = updatedAt.Time

	return rental, nil
}

// GetByID получает договор по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(rentalColumns...).
		From("rentals").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	rental, err := scanRental(row)
	if err == sql.ErrNoRows {
		return nil, ErrRentalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan rental: %v", ErrScanRow, err)
	}

	return rental, nil
}

// List получает список договоров с фильтрацией, новые - первыми
func (r *Repository) List(ctx context.Context, filter domain.RentalsFilter) ([]*domain.Rental, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(rentalColumns...).
		From("rentals").
		OrderBy("created_at DESC")

	// Фильтрация по создателю (если указан)
	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}

	// Фильтрация по статусу оплаты (если указан)
	if filter.PaymentStatus != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"payment_status": *filter.PaymentStatus})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRentals(rows)
}

// Update обновляет изменяемые поля договора
// Вызывающая сторона обязана заранее пересчитать balance и payment_status
func (r *Repository) Update(ctx context.Context, rental *domain.Rental) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rentals").
		Set("agreement_number", rental.AgreementNumber).
		Set("advance_payment", rental.AdvancePayment).
		Set("balance", rental.Balance).
		Set("payment_status", rental.PaymentStatus).
		Set("notes", rental.Notes).
		Set("client_signature", rental.ClientSignature).
		Set("owner_signature", rental.OwnerSignature).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": rental.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRentalNotFound
	}

	return nil
}

// Delete удаляет договор (физическое удаление)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("rentals").
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
		return ErrRentalNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanRental сканирует одну строку в договор
func scanRental(row rowScanner) (*domain.Rental, error) {
	var rental domain.Rental
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&rental.ID,
		&rental.AgreementNumber,
		&rental.UserID,
		&rental.Client.FullName,
		&rental.Client.CNIC,
		&rental.Client.Phone,
		&rental.Client.Address,
		&rental.Client.Images,
		&rental.VehicleID,
		&rental.VehicleName,
		&rental.VehicleBrand,
		&rental.VehicleModel,
		&rental.VehicleYear,
		&rental.VehicleColor,
		&rental.Witness.Name,
		&rental.Witness.CNIC,
		&rental.Witness.Phone,
		&rental.Witness.Address,
		&rental.Witness.Image,
		&rental.DeliveryDate,
		&rental.DeliveryTime,
		&rental.ReturnDate,
		&rental.ReturnTime,
		&rental.RentType,
		&rental.CustomDays,
		&rental.TotalAmount,
		&rental.AdvancePayment,
		&rental.Balance,
		&rental.PaymentStatus,
		&rental.Notes,
		&rental.Accessories,
		&rental.VehicleCondition,
		&rental.DentsScratches,
		&rental.ClientSignature,
		&rental.OwnerSignature,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	rental.CreatedAt = createdAt.Time
	rental.UpdatedAt = updatedAt.Time

	return &rental, nil
}

// scanRentals сканирует результаты запроса в слайс договоров
func (r *Repository) scanRentals(rows *sql.Rows) ([]*domain.Rental, error) {
	rentals := make([]*domain.Rental, 0)

	for rows.Next() {
		rental, err := scanRental(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRentals - scan row: %v", ErrScanRow, err)
		}
		rentals = append(rentals, rental)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRentals - rows error: %v", ErrScanRow, err)
	}

	return rentals, nil
}
