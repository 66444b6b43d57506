package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNow(t *testing.T) time.Time {
	t.Helper()
	now, err := time.Parse(time.RFC3339, "2025-03-10T09:00:00Z")
	require.NoError(t, err)
	return now
}

func TestDeriveState_AutoMode(t *testing.T) {
	period := makePeriod(t, "2025-03-10", "10:00", "2025-03-13", "10:00")
	payment := PaymentState{AdvancePayment: 3000, Mode: PricingAuto}

	dur, state := DeriveState(period, 3000, nil, payment)

	assert.Equal(t, 3, dur.Days)
	assert.Equal(t, 9000.0, state.TotalAmount)
	assert.Equal(t, 6000.0, state.Balance)
	assert.Equal(t, PaymentPartial, state.Status)
}

func TestDeriveState_VehicleRateFallback(t *testing.T) {
	period := makePeriod(t, "2025-03-10", "10:00", "2025-03-12", "10:00")
	vehicle := &Vehicle{DailyRate: 2500}

	_, state := DeriveState(period, 0, vehicle, PaymentState{Mode: PricingAuto})

	assert.Equal(t, 5000.0, state.TotalAmount)
}

func TestDeriveState_ManualModeFreezesTotal(t *testing.T) {
	period := makePeriod(t, "2025-03-10", "10:00", "2025-03-13", "10:00")
	payment := PaymentState{TotalAmount: 7777, AdvancePayment: 1000, Mode: PricingManual}

	dur, state := DeriveState(period, 3000, nil, payment)

	// Длительность пересчитывается, итог - нет
	assert.Equal(t, 3, dur.Days)
	assert.Equal(t, 7777.0, state.TotalAmount)
	assert.Equal(t, 6777.0, state.Balance)
	assert.Equal(t, PaymentPartial, state.Status)
}

func TestDeriveState_IncompletePeriod(t *testing.T) {
	_, state := DeriveState(RentalPeriod{RentType: RentTypeDaily}, 3000, nil, PaymentState{Mode: PricingAuto})

	assert.Equal(t, 0.0, state.TotalAmount)
	assert.Equal(t, PaymentPaid, state.Status, "zero total with zero advance counts as paid")
}

func TestDraftDerive_Idempotent(t *testing.T) {
	d := NewDraft("draft-1", 42, testNow(t))
	d.Period = makePeriod(t, "2025-03-10", "10:00", "2025-03-12", "10:00")
	d.PerDayPrice = 3000

	d.Derive()
	first := d.Payment
	d.Derive()

	assert.Equal(t, first, d.Payment)
}
