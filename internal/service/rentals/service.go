package rentals

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
	"github.com/m04kA/SMC-RentalService/internal/service/rentals/models"
)

// Service сервис для работы с финализированными договорами аренды
type Service struct {
	repo   RentalRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса договоров
func NewService(repo RentalRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List возвращает договоры пользователя, новые - первыми
func (s *Service) List(ctx context.Context, userID int64, filter models.ListRentalsFilter) (*models.ListRentalsResponse, error) {
	domainFilter := domain.RentalsFilter{
		UserID: &userID,
	}

	if filter.PaymentStatus != nil {
		status := domain.PaymentStatus(*filter.PaymentStatus)
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: unknown payment status %q", ErrInvalidInput, *filter.PaymentStatus)
		}
		domainFilter.PaymentStatus = &status
	}

	rentals, err := s.repo.List(ctx, domainFilter)
	if err != nil {
		s.logger.Error("List: failed to list rentals for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRentals(rentals), nil
}

// GetByID возвращает договор по ID с проверкой владельца
func (s *Service) GetByID(ctx context.Context, id, userID int64) (*models.RentalResponse, error) {
	rental, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainRental(rental), nil
}

// Update применяет частичное обновление договора
// При изменении аванса balance и payment_status пересчитываются от
// сохранённого итога - итог финализированного договора неизменяем
func (s *Service) Update(ctx context.Context, id, userID int64, req *models.UpdateRentalRequest) (*models.RentalResponse, error) {
	update := req.ToDomainUpdate()
	if update.IsEmpty() {
		return nil, ErrEmptyUpdate
	}

	rental, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if update.AgreementNumber != nil {
		if len(*update.AgreementNumber) > domain.MaxAgreementNumberLength {
			return nil, fmt.Errorf("%w: agreement number is too long", ErrInvalidInput)
		}
		rental.AgreementNumber = update.AgreementNumber
	}

	if update.AdvancePayment != nil {
		if *update.AdvancePayment < 0 {
			return nil, fmt.Errorf("%w: advance payment must be non-negative", ErrInvalidInput)
		}
		rental.AdvancePayment = *update.AdvancePayment

		state := domain.Reconcile(domain.PaymentState{
			TotalAmount:    rental.TotalAmount,
			AdvancePayment: rental.AdvancePayment,
		})
		rental.Balance = state.Balance
		rental.PaymentStatus = state.Status
	}

	if update.Notes != nil {
		if len(*update.Notes) > domain.MaxNotesLength {
			return nil, fmt.Errorf("%w: notes are too long", ErrInvalidInput)
		}
		rental.Notes = update.Notes
	}

	if update.ClientSignature != nil {
		rental.ClientSignature = update.ClientSignature
	}
	if update.OwnerSignature != nil {
		rental.OwnerSignature = update.OwnerSignature
	}

	if err := s.repo.Update(ctx, rental); err != nil {
		if errors.Is(err, rentalRepo.ErrRentalNotFound) {
			return nil, ErrRentalNotFound
		}
		s.logger.Error("Update: failed to update rental id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: rental id=%d updated, balance=%.0f, status=%s",
		rental.ID, rental.Balance, rental.PaymentStatus)
	return models.FromDomainRental(rental), nil
}

// Delete удаляет договор с проверкой владельца
func (s *Service) Delete(ctx context.Context, id, userID int64) error {
	if _, err := s.getOwned(ctx, id, userID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, rentalRepo.ErrRentalNotFound) {
			return ErrRentalNotFound
		}
		s.logger.Error("Delete: failed to delete rental id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: rental id=%d deleted by user=%d", id, userID)
	return nil
}

// getOwned возвращает договор и проверяет, что он принадлежит пользователю
func (s *Service) getOwned(ctx context.Context, id, userID int64) (*domain.Rental, error) {
	rental, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, rentalRepo.ErrRentalNotFound) {
			s.logger.Warn("getOwned: rental id=%d not found", id)
			return nil, ErrRentalNotFound
		}
		s.logger.Error("getOwned: failed to get rental id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: getOwned - repository error: %v", ErrInternal, err)
	}

	if rental.UserID != userID {
		s.logger.Warn("getOwned: access denied for user=%d to rental id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return rental, nil
}
