package submit_agreement

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	draftStore "github.com/m04kA/SMC-RentalService/internal/infra/storage/draft"
	"github.com/m04kA/SMC-RentalService/internal/service/rentals/models"
)

// UseCase сценарий финализации договора аренды
// Превращает черновик мастера в постоянную запись: повторно прогоняет
// предикаты всех шагов, при свободном вводе автомобиля создаёт запись
// каталога и сохраняет договор с ней в одной транзакции
type UseCase struct {
	drafts   DraftStore
	rentals  RentalRepository
	vehicles VehicleRepository
	txMgr    TransactionManager
	logger   Logger
}

// NewUseCase создает новый экземпляр сценария финализации
func NewUseCase(
	drafts DraftStore,
	rentals RentalRepository,
	vehicles VehicleRepository,
	txMgr TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		drafts:   drafts,
		rentals:  rentals,
		vehicles: vehicles,
		txMgr:    txMgr,
		logger:   logger,
	}
}

// Execute финализирует черновик
// Пока сабмит идёт, черновик помечен флагом - повторный вызов отклоняется.
// При любой ошибке черновик сохраняется, флаг снимается - пользователь может
// исправить данные и повторить
func (uc *UseCase) Execute(ctx context.Context, draftID string, userID int64) (*models.RentalResponse, error) {
	d, err := uc.drafts.GetByID(draftID)
	if err != nil {
		if errors.Is(err, draftStore.ErrDraftNotFound) {
			uc.logger.Warn("Execute: draft id=%s not found", draftID)
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("%w: Execute - draft store error: %v", ErrInternal, err)
	}

	if d.UserID != userID {
		uc.logger.Warn("Execute: access denied for user=%d to draft id=%s", userID, draftID)
		return nil, ErrAccessDenied
	}

	if d.Submitting {
		uc.logger.Warn("Execute: draft id=%s submit already in progress", draftID)
		return nil, ErrSubmitInProgress
	}

	d.Submitting = true
	if err := uc.drafts.Save(d); err != nil {
		return nil, fmt.Errorf("%w: Execute - mark submitting: %v", ErrInternal, err)
	}

	rental, err := uc.finalize(ctx, d)
	if err != nil {
		// Черновик остаётся - пользователь исправит данные и повторит
		d.Submitting = false
		if saveErr := uc.drafts.Save(d); saveErr != nil {
			uc.logger.Error("Execute: draft id=%s failed to clear submitting flag: %v", draftID, saveErr)
		}
		return nil, err
	}

	// Успешный сабмит уничтожает сессию мастера
	if err := uc.drafts.Delete(draftID); err != nil {
		uc.logger.Error("Execute: draft id=%s submitted but not deleted: %v", draftID, err)
	}

	uc.logger.Info("Execute: draft id=%s submitted as rental id=%d, total=%.0f, status=%s",
		draftID, rental.ID, rental.TotalAmount, rental.PaymentStatus)
	return models.FromDomainRental(rental), nil
}

// finalize валидирует черновик и сохраняет договор
func (uc *UseCase) finalize(ctx context.Context, d *domain.Draft) (*domain.Rental, error) {
	// Производные величины пересчитываем от текущих входов - на случай,
	// если последнее изменение их не затронуло
	d.Derive()

	if err := domain.ValidateAll(d); err != nil {
		uc.logger.Warn("finalize: draft id=%s failed validation: %v", d.ID, err)
		return nil, err
	}

	vehicle := d.Vehicle
	needInsert := vehicle == nil || vehicle.ID == 0
	if needInsert {
		// Свободный ввод - записи каталога ещё нет, собираем её от текущей цены за день
		vehicle = synthesizedVehicle(d)
	}

	var rental *domain.Rental

	err := uc.txMgr.DoSerializable(ctx, func(txCtx context.Context) error {
		if needInsert {
			created, err := uc.vehicles.Create(txCtx, vehicle)
			if err != nil {
				return fmt.Errorf("create vehicle: %w", err)
			}
			vehicle = created
		}

		created, err := uc.rentals.Create(txCtx, rentalFromDraft(d, vehicle))
		if err != nil {
			return fmt.Errorf("create rental: %w", err)
		}
		rental = created
		return nil
	})

	if err != nil {
		uc.logger.Error("finalize: draft id=%s transaction failed: %v", d.ID, err)
		return nil, fmt.Errorf("%w: finalize - transaction error: %v", ErrInternal, err)
	}

	return rental, nil
}
