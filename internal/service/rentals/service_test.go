package rentals

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
	"github.com/m04kA/SMC-RentalService/internal/service/rentals/models"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type stubRentalRepo struct {
	rentals map[int64]*domain.Rental
	updated *domain.Rental
}

func (r *stubRentalRepo) GetByID(_ context.Context, id int64) (*domain.Rental, error) {
	rental, ok := r.rentals[id]
	if !ok {
		return nil, rentalRepo.ErrRentalNotFound
	}
	copied := *rental
	return &copied, nil
}

func (r *stubRentalRepo) List(_ context.Context, filter domain.RentalsFilter) ([]*domain.Rental, error) {
	result := make([]*domain.Rental, 0)
	for _, rental := range r.rentals {
		if filter.UserID != nil && rental.UserID != *filter.UserID {
			continue
		}
		if filter.PaymentStatus != nil && rental.PaymentStatus != *filter.PaymentStatus {
			continue
		}
		result = append(result, rental)
	}
	return result, nil
}

func (r *stubRentalRepo) Update(_ context.Context, rental *domain.Rental) error {
	if _, ok := r.rentals[rental.ID]; !ok {
		return rentalRepo.ErrRentalNotFound
	}
	r.updated = rental
	r.rentals[rental.ID] = rental
	return nil
}

func (r *stubRentalRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.rentals[id]; !ok {
		return rentalRepo.ErrRentalNotFound
	}
	delete(r.rentals, id)
	return nil
}

func newTestService(t *testing.T) (*Service, *stubRentalRepo) {
	t.Helper()

	repo := &stubRentalRepo{rentals: map[int64]*domain.Rental{
		101: {
			ID:             101,
			UserID:         42,
			TotalAmount:    9000,
			AdvancePayment: 3000,
			Balance:        6000,
			PaymentStatus:  domain.PaymentPartial,
			RentType:       domain.RentTypeDaily,
		},
	}}
	return NewService(repo, noopLogger{}), repo
}

func TestService_Update_RecomputesPayment(t *testing.T) {
	svc, repo := newTestService(t)

	resp, err := svc.Update(context.Background(), 101, 42, &models.UpdateRentalRequest{
		AdvancePayment: ptr.Ptr(9000.0),
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, resp.Balance)
	assert.Equal(t, string(domain.PaymentPaid), resp.PaymentStatus)
	// Итог финализированного договора неизменяем
	assert.Equal(t, 9000.0, resp.TotalAmount)
	assert.Equal(t, domain.PaymentPaid, repo.updated.PaymentStatus)
}

func TestService_Update_EmptyRequest(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Update(context.Background(), 101, 42, &models.UpdateRentalRequest{})
	assert.ErrorIs(t, err, ErrEmptyUpdate)
}

func TestService_Update_NegativeAdvance(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Update(context.Background(), 101, 42, &models.UpdateRentalRequest{
		AdvancePayment: ptr.Ptr(-1.0),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_AccessDenied(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetByID(context.Background(), 101, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)

	err = svc.Delete(context.Background(), 101, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_List_InvalidStatusFilter(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.List(context.Background(), 42, models.ListRentalsFilter{
		PaymentStatus: ptr.Ptr("unknown"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Delete(t *testing.T) {
	svc, repo := newTestService(t)

	require.NoError(t, svc.Delete(context.Background(), 101, 42))
	assert.Empty(t, repo.rentals)
}
