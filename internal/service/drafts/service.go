package drafts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	draftStore "github.com/m04kA/SMC-RentalService/internal/infra/storage/draft"
	vehicleRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-RentalService/internal/service/drafts/models"
	"github.com/m04kA/SMC-RentalService/pkg/cnic"
)

// Service сервис черновиков мастера оформления договора
// Держит агрегат сессии, прогоняет цепочку перерасчёта производных величин
// на каждой мутации и управляет линейной машиной из семи шагов
type Service struct {
	store        DraftStore
	vehicles     VehicleRepository
	timeProvider TimeProvider
	idGenerator  IDGenerator
	logger       Logger
}

// NewService создает новый экземпляр сервиса черновиков
func NewService(store DraftStore, vehicles VehicleRepository, logger Logger) *Service {
	return &Service{
		store:        store,
		vehicles:     vehicles,
		timeProvider: &RealTimeProvider{},
		idGenerator:  &UUIDGenerator{},
		logger:       logger,
	}
}

// Create создает свежую сессию мастера: шаг 1, нулевая оплата, auto-режим цены
func (s *Service) Create(ctx context.Context, userID int64) (*models.DraftResponse, error) {
	now := s.timeProvider.Now()
	d := domain.NewDraft(s.idGenerator.NewID(), userID, now)

	s.store.Create(d)

	s.logger.Info("Create: draft id=%s created for user=%d", d.ID, userID)
	return models.FromDomainDraft(d), nil
}

// Get возвращает текущее состояние черновика вместе с производными величинами
func (s *Service) Get(ctx context.Context, draftID string, userID int64) (*models.DraftResponse, error) {
	d, err := s.getOwned(draftID, userID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainDraft(d), nil
}

// Update применяет частичное обновление полей мастера
// После применения всех изменений один раз прогоняет цепочку перерасчёта:
// длительность -> цена (если не заморожена manual-режимом) -> сверка оплаты
func (s *Service) Update(ctx context.Context, draftID string, userID int64, req *models.UpdateDraftRequest) (*models.DraftResponse, error) {
	current, err := s.getOwned(draftID, userID)
	if err != nil {
		return nil, err
	}

	// Правки применяются к копии агрегата: при отказе любой секции
	// сохранённая сессия остаётся нетронутой
	d := *current
	if err := s.apply(ctx, &d, req); err != nil {
		s.logger.Warn("Update: draft id=%s apply failed: %v", draftID, err)
		return nil, err
	}

	d.Derive()
	d.Touch(s.timeProvider.Now())

	if err := s.store.Save(&d); err != nil {
		return nil, s.saveError("Update", draftID, err)
	}

	s.logger.Info("Update: draft id=%s updated, total=%.0f, balance=%.0f, status=%s",
		d.ID, d.Payment.TotalAmount, d.Payment.Balance, d.Payment.Status)
	return models.FromDomainDraft(&d), nil
}

// AutoCalculate снимает manual-режим и немедленно пересчитывает итог
// из текущих длительности и цены
func (s *Service) AutoCalculate(ctx context.Context, draftID string, userID int64) (*models.DraftResponse, error) {
	d, err := s.getOwned(draftID, userID)
	if err != nil {
		return nil, err
	}

	d.Payment.Mode = domain.PricingAuto
	d.Derive()
	d.Touch(s.timeProvider.Now())

	if err := s.store.Save(d); err != nil {
		return nil, s.saveError("AutoCalculate", draftID, err)
	}

	s.logger.Info("AutoCalculate: draft id=%s recalculated, total=%.0f", d.ID, d.Payment.TotalAmount)
	return models.FromDomainDraft(d), nil
}

// Advance продвигает мастер на следующий шаг, если предикат текущего шага выполнен
// При нарушении предиката возвращает ошибку с причиной, шаг не меняется
func (s *Service) Advance(ctx context.Context, draftID string, userID int64) (*models.DraftResponse, error) {
	d, err := s.getOwned(draftID, userID)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateStep(d, d.Step); err != nil {
		s.logger.Warn("Advance: draft id=%s blocked at step %d: %v", d.ID, d.Step, err)
		return nil, err
	}

	d.Step = d.Step.Next()
	d.Touch(s.timeProvider.Now())

	if err := s.store.Save(d); err != nil {
		return nil, s.saveError("Advance", draftID, err)
	}

	s.logger.Info("Advance: draft id=%s moved to step %d (%s)", d.ID, d.Step, d.Step)
	return models.FromDomainDraft(d), nil
}

// Retreat возвращает мастер на предыдущий шаг без повторной валидации
func (s *Service) Retreat(ctx context.Context, draftID string, userID int64) (*models.DraftResponse, error) {
	d, err := s.getOwned(draftID, userID)
	if err != nil {
		return nil, err
	}

	d.Step = d.Step.Prev()
	d.Touch(s.timeProvider.Now())

	if err := s.store.Save(d); err != nil {
		return nil, s.saveError("Retreat", draftID, err)
	}

	s.logger.Info("Retreat: draft id=%s moved back to step %d (%s)", d.ID, d.Step, d.Step)
	return models.FromDomainDraft(d), nil
}

// Delete удаляет черновик (пользователь бросил оформление)
func (s *Service) Delete(ctx context.Context, draftID string, userID int64) error {
	d, err := s.getOwned(draftID, userID)
	if err != nil {
		return err
	}

	if err := s.store.Delete(d.ID); err != nil {
		if errors.Is(err, draftStore.ErrDraftNotFound) {
			return ErrDraftNotFound
		}
		return fmt.Errorf("%w: Delete - store error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: draft id=%s discarded by user=%d", draftID, userID)
	return nil
}

// SweepExpired удаляет брошенные черновики, неактивные дольше ttl
// Запускается по расписанию из main
func (s *Service) SweepExpired(ttl time.Duration) int {
	type expirer interface {
		DeleteExpired(now time.Time, ttl time.Duration) int
	}

	sweeper, ok := s.store.(expirer)
	if !ok {
		return 0
	}

	removed := sweeper.DeleteExpired(s.timeProvider.Now(), ttl)
	if removed > 0 {
		s.logger.Info("SweepExpired: removed %d abandoned drafts (ttl=%s)", removed, ttl)
	}
	return removed
}

// Вспомогательные методы

// getOwned возвращает черновик и проверяет, что он принадлежит пользователю
func (s *Service) getOwned(draftID string, userID int64) (*domain.Draft, error) {
	d, err := s.store.GetByID(draftID)
	if err != nil {
		if errors.Is(err, draftStore.ErrDraftNotFound) {
			s.logger.Warn("getOwned: draft id=%s not found", draftID)
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("%w: getOwned - store error: %v", ErrInternal, err)
	}

	if d.UserID != userID {
		s.logger.Warn("getOwned: access denied for user=%d to draft id=%s", userID, draftID)
		return nil, ErrAccessDenied
	}

	return d, nil
}

// apply применяет присланные секции к агрегату
func (s *Service) apply(ctx context.Context, d *domain.Draft, req *models.UpdateDraftRequest) error {
	if req.AgreementNumber != nil {
		if len(*req.AgreementNumber) > domain.MaxAgreementNumberLength {
			return fmt.Errorf("%w: agreement number is too long", ErrInvalidInput)
		}
		d.AgreementNumber = *req.AgreementNumber
	}

	if req.Client != nil {
		d.Client = domain.Client{
			FullName: req.Client.FullName,
			CNIC:     cnic.Format(req.Client.CNIC),
			Phone:    req.Client.Phone,
			Address:  req.Client.Address,
			Images:   req.Client.Images,
		}
	}

	if req.VehicleID != nil {
		v, err := s.vehicles.GetByID(ctx, *req.VehicleID)
		if err != nil {
			if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
				return ErrVehicleNotFound
			}
			return fmt.Errorf("%w: apply - vehicle lookup: %v", ErrInternal, err)
		}
		d.Vehicle = v
		d.VehicleSelection = domain.VehicleSelection{
			Brand: v.Brand,
			Model: v.Model,
			Year:  v.Year,
			Color: v.Color,
			Logo:  v.Logo,
		}
	}

	if req.VehicleSelection != nil {
		d.VehicleSelection = domain.VehicleSelection{
			Brand: req.VehicleSelection.Brand,
			Model: req.VehicleSelection.Model,
			Year:  req.VehicleSelection.Year,
			Color: req.VehicleSelection.Color,
			Logo:  req.VehicleSelection.Logo,
		}
		// Свободный ввод подменяет выбор из каталога snapshot'ом с дефолтной
		// тарифной сеткой - от него считается fallback цены за день
		d.Vehicle = synthesizeVehicle(d.VehicleSelection, domain.DefaultDailyRate)
	}

	if req.Period != nil {
		period, err := parsePeriod(req.Period)
		if err != nil {
			return err
		}
		period.RentType = d.Period.RentType
		period.CustomDays = d.Period.CustomDays
		d.Period = period
	}

	if req.RentType != nil {
		rt := domain.RentType(*req.RentType)
		if !rt.IsValid() {
			return fmt.Errorf("%w: unknown rent type %q", ErrInvalidInput, *req.RentType)
		}
		d.Period.RentType = rt
	}

	if req.CustomDays != nil {
		if *req.CustomDays < 0 {
			return fmt.Errorf("%w: customDays must be non-negative", ErrInvalidInput)
		}
		d.Period.CustomDays = *req.CustomDays
	}

	if req.PerDayPrice != nil {
		if *req.PerDayPrice < 0 {
			return fmt.Errorf("%w: perDayPrice must be non-negative", ErrInvalidInput)
		}
		d.PerDayPrice = *req.PerDayPrice
	}

	if req.Witness != nil {
		d.Witness = domain.Witness{
			Name:    req.Witness.Name,
			CNIC:    cnic.Format(req.Witness.CNIC),
			Phone:   req.Witness.Phone,
			Address: req.Witness.Address,
			Image:   req.Witness.Image,
		}
	}

	if req.AdvancePayment != nil {
		d.Payment.AdvancePayment = *req.AdvancePayment
	}

	// Прямое редактирование итога включает manual-режим: с этого момента
	// изменения длительности/цены итог не перезаписывают
	if req.TotalAmount != nil {
		d.Payment.Mode = domain.PricingManual
		d.Payment.TotalAmount = *req.TotalAmount
	}

	if req.Notes != nil {
		if len(*req.Notes) > domain.MaxNotesLength {
			return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
		}
		d.Notes = *req.Notes
	}

	if req.Accessories != nil {
		d.Accessories = req.Accessories
	}
	if req.VehicleCondition != nil {
		d.VehicleCondition = req.VehicleCondition
	}
	if req.DentsScratches != nil {
		d.DentsScratches = req.DentsScratches
	}
	if req.ClientSignature != nil {
		d.ClientSignature = *req.ClientSignature
	}
	if req.OwnerSignature != nil {
		d.OwnerSignature = *req.OwnerSignature
	}

	return nil
}

func (s *Service) saveError(op, draftID string, err error) error {
	if errors.Is(err, draftStore.ErrDraftNotFound) {
		s.logger.Warn("%s: draft id=%s vanished before save", op, draftID)
		return ErrDraftNotFound
	}
	return fmt.Errorf("%w: %s - store error: %v", ErrInternal, op, err)
}
