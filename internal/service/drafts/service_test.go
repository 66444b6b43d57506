package drafts

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	draftStore "github.com/m04kA/SMC-RentalService/internal/infra/storage/draft"
	vehicleRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-RentalService/internal/service/drafts/models"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type seqIDGenerator struct {
	next int
}

func (g *seqIDGenerator) NewID() string {
	g.next++
	return "draft-" + strconv.Itoa(g.next)
}

type stubVehicleRepo struct {
	vehicles map[int64]*domain.Vehicle
}

func (r *stubVehicleRepo) GetByID(_ context.Context, id int64) (*domain.Vehicle, error) {
	v, ok := r.vehicles[id]
	if !ok {
		return nil, vehicleRepo.ErrVehicleNotFound
	}
	return v, nil
}

func newTestService(t *testing.T) (*Service, *draftStore.Store) {
	t.Helper()

	store := draftStore.NewStore()
	repo := &stubVehicleRepo{vehicles: map[int64]*domain.Vehicle{
		7: {ID: 7, Name: "Honda Civic", Brand: "Honda", Model: "Civic", Year: "2023", Color: "black", DailyRate: 5000},
	}}

	return &Service{
		store:        store,
		vehicles:     repo,
		timeProvider: &fixedTimeProvider{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)},
		idGenerator:  &seqIDGenerator{},
		logger:       noopLogger{},
	}, store
}

func periodPayload(deliveryDate, deliveryTime, returnDate, returnTime string) *models.PeriodPayload {
	return &models.PeriodPayload{
		DeliveryDate: deliveryDate,
		DeliveryTime: deliveryTime,
		ReturnDate:   returnDate,
		ReturnTime:   returnTime,
	}
}

func TestService_Create(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.Create(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Step)
	assert.Equal(t, "client", resp.StepTitle)
	assert.Equal(t, string(domain.PricingAuto), resp.Payment.Mode)
	assert.Equal(t, string(domain.PaymentPending), resp.Payment.Status)
}

func TestService_Update_DerivesTotals(t *testing.T) {
	svc, _ := newTestService(t)
	created, err := svc.Create(context.Background(), 42)
	require.NoError(t, err)

	resp, err := svc.Update(context.Background(), created.ID, 42, &models.UpdateDraftRequest{
		Period:      periodPayload("2025-03-10", "10:00", "2025-03-13", "10:00"),
		PerDayPrice: ptr.Ptr(3000.0),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Duration.Days)
	assert.Equal(t, 9000.0, resp.Payment.TotalAmount)
	assert.Equal(t, 9000.0, resp.Payment.Balance)
}

func TestService_Update_ClientCNICIsNormalized(t *testing.T) {
	svc, _ := newTestService(t)
	created, err := svc.Create(context.Background(), 42)
	require.NoError(t, err)

	resp, err := svc.Update(context.Background(), created.ID, 42, &models.UpdateDraftRequest{
		Client: &models.ClientPayload{
			FullName: "Ali Khan",
			CNIC:     "1234512345671",
			Phone:    "+92 300 1234567",
			Address:  "Karachi",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "12345-1234567-1", resp.Client.CNIC)
}

func TestService_Update_CatalogVehicleRateFallback(t *testing.T) {
	svc, _ := newTestService(t)
	created, err := svc.Create(context.Background(), 42)
	require.NoError(t, err)

	resp, err := svc.Update(context.Background(), created.ID, 42, &models.UpdateDraftRequest{
		VehicleID: ptr.Ptr(int64(7)),
		Period:    periodPayload("2025-03-10", "10:00", "2025-03-12", "10:00"),
	})
	require.NoError(t, err)

	require.NotNil(t, resp.VehicleID)
	assert.Equal(t, int64(7), *resp.VehicleID)
	// Цена за день не задана - берётся дневная ставка автомобиля
	assert.Equal(t, 10000.0, resp.Payment.TotalAmount)
}

func TestService_Update_VehicleNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	created, err := svc.Create(context.Background(), 42)
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, 42, &models.UpdateDraftRequest{
		VehicleID: ptr.Ptr(int64(999)),
	})
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestService_Update_InvalidPeriod(t *testing.T) {
	svc, _ := newTestService(t)
	created, err := svc.Create(context.Background(), 42)
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, 42, &models.UpdateDraftRequest{
		Period: periodPayload("10.03.2025", "10:00", "2025-03-12", "10:00"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Update_RejectedRequestLeavesDraftUntouched(t *testing.T) {
	svc, store := newTestService(t)
	created, err := svc.Create(context.Background(), 42)
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, 42, &models.UpdateDraftRequest{
		Period:         periodPayload("2025-03-10", "10:00", "2025-03-13", "10:00"),
		PerDayPrice:    ptr.Ptr(3000.0),
		AdvancePayment: ptr.Ptr(3000.0),
	})
	require.NoError(t, err)

	before, err := store.GetByID(created.ID)
	require.NoError(t, err)
	snapshot := *before

	// Отказ поздней секции не должен оставлять следов ранних
	_, err = svc.Update(context.Background(), created.ID, 42, &models.UpdateDraftRequest{
		Client: &models.ClientPayload{
			FullName: "Ali Khan",
			CNIC:     "12345-1234567-1",
			Phone:    "+92 300 1234567",
			Address:  "Karachi",
		},
		CustomDays: ptr.Ptr(-5),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	kept, err := store.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, snapshot, *kept, "отклонённый запрос не меняет сессию")
	assert.Empty(t, kept.Client.FullName)

	// Новый аванс без пересверки баланса сохраниться не может
	_, err = svc.Update(context.Background(), created.ID, 42, &models.UpdateDraftRequest{
		AdvancePayment: ptr.Ptr(4000.0),
		Notes:          ptr.Ptr(strings.Repeat("x", domain.MaxNotesLength+1)),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	kept, err = store.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 3000.0, kept.Payment.AdvancePayment)
	assert.Equal(t, kept.Payment.TotalAmount-kept.Payment.AdvancePayment, kept.Payment.Balance)
}

func TestService_ManualOverrideFrozenUntilAutoCalculate(t *testing.T) {
	svc, _ := newTestService(t)
	created, err := svc.Create(context.Background(), 42)
	require.NoError(t, err)

	// Прямое редактирование итога включает manual-режим
	resp, err := svc.Update(context.Background(), created.ID, 42, &models.UpdateDraftRequest{
		Period:      periodPayload("2025-03-10", "10:00", "2025-03-12", "10:00"),
		PerDayPrice: ptr.Ptr(3000.0),
		TotalAmount: ptr.Ptr(5500.0),
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.PricingManual), resp.Payment.Mode)
	assert.Equal(t, 5500.0, resp.Payment.TotalAmount)

	// Изменение периода итог не перезаписывает
	resp, err = svc.Update(context.Background(), created.ID, 42, &models.UpdateDraftRequest{
		Period: periodPayload("2025-03-10", "10:00", "2025-03-20", "10:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, 5500.0, resp.Payment.TotalAmount)
	assert.Equal(t, 10, resp.Duration.Days, "длительность пересчитывается и в manual-режиме")

	// Явный пересчёт возвращает auto-режим
	resp, err = svc.AutoCalculate(context.Background(), created.ID, 42)
	require.NoError(t, err)
	assert.Equal(t, string(domain.PricingAuto), resp.Payment.Mode)
	assert.Equal(t, 30000.0, resp.Payment.TotalAmount)
}

func TestService_Advance_BlockedByStepPredicate(t *testing.T) {
	svc, _ := newTestService(t)
	created, err := svc.Create(context.Background(), 42)
	require.NoError(t, err)

	// Шаг 1 с пустым клиентом не пройти
	_, err = svc.Advance(context.Background(), created.ID, 42)
	assert.ErrorIs(t, err, domain.ErrClientIncomplete)

	// Шаг не изменился
	resp, err := svc.Get(context.Background(), created.ID, 42)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Step)

	// После заполнения клиента переход проходит
	_, err = svc.Update(context.Background(), created.ID, 42, &models.UpdateDraftRequest{
		Client: &models.ClientPayload{
			FullName: "Ali Khan",
			CNIC:     "12345-1234567-1",
			Phone:    "+92 300 1234567",
			Address:  "Karachi",
		},
	})
	require.NoError(t, err)

	resp, err = svc.Advance(context.Background(), created.ID, 42)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Step)
}

func TestService_Retreat_NoValidation(t *testing.T) {
	svc, store := newTestService(t)
	created, err := svc.Create(context.Background(), 42)
	require.NoError(t, err)

	d, err := store.GetByID(created.ID)
	require.NoError(t, err)
	d.Step = domain.StepWitness

	resp, err := svc.Retreat(context.Background(), created.ID, 42)
	require.NoError(t, err)
	assert.Equal(t, 4, resp.Step)

	// С первого шага назад не уйти
	d.Step = domain.StepClient
	resp, err = svc.Retreat(context.Background(), created.ID, 42)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Step)
}

func TestService_AccessDenied(t *testing.T) {
	svc, _ := newTestService(t)
	created, err := svc.Create(context.Background(), 42)
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), created.ID, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.Update(context.Background(), created.ID, 99, &models.UpdateDraftRequest{})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_SweepExpired(t *testing.T) {
	svc, store := newTestService(t)
	created, err := svc.Create(context.Background(), 42)
	require.NoError(t, err)

	// Сдвигаем часы сервиса на три часа вперёд
	svc.timeProvider = &fixedTimeProvider{now: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)}

	removed := svc.SweepExpired(time.Hour)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 0, store.Len())

	_, err = svc.Get(context.Background(), created.ID, 42)
	assert.ErrorIs(t, err, ErrDraftNotFound)
}
