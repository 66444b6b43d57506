package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// completeDraft черновик, проходящий предикаты всех семи шагов
func completeDraft(t *testing.T) *Draft {
	t.Helper()

	d := NewDraft("draft-1", 42, testNow(t))
	d.Client = Client{
		FullName: "Ali Khan",
		CNIC:     "12345-1234567-1",
		Phone:    "+92 300 1234567",
		Address:  "Karachi",
	}
	d.VehicleSelection = VehicleSelection{
		Brand: "Toyota",
		Model: "Corolla",
		Year:  "2022",
		Color: "white",
	}
	d.Period = makePeriod(t, "2025-03-10", "10:00", "2025-03-12", "10:00")
	d.Witness = Witness{
		Name:    "Bilal Ahmed",
		CNIC:    "54321-7654321-9",
		Phone:   "+92 300 7654321",
		Address: "Lahore",
	}
	return d
}

func TestValidateStep(t *testing.T) {
	t.Run("complete draft passes every step", func(t *testing.T) {
		d := completeDraft(t)
		for step := FirstStep; step <= LastStep; step++ {
			assert.NoError(t, ValidateStep(d, step), "step %d", step)
		}
	})

	t.Run("missing client field", func(t *testing.T) {
		d := completeDraft(t)
		d.Client.Phone = ""
		assert.ErrorIs(t, ValidateStep(d, StepClient), ErrClientIncomplete)
	})

	t.Run("malformed client cnic", func(t *testing.T) {
		d := completeDraft(t)
		d.Client.CNIC = "12345-123-1"
		assert.ErrorIs(t, ValidateStep(d, StepClient), ErrInvalidClientCNIC)
	})

	t.Run("missing vehicle field", func(t *testing.T) {
		d := completeDraft(t)
		d.VehicleSelection.Color = ""
		assert.ErrorIs(t, ValidateStep(d, StepVehicle), ErrVehicleIncomplete)
	})

	t.Run("condition step is always valid", func(t *testing.T) {
		d := NewDraft("draft-1", 42, testNow(t))
		assert.NoError(t, ValidateStep(d, StepCondition))
	})

	t.Run("incomplete period", func(t *testing.T) {
		d := completeDraft(t)
		d.Period.ReturnDate = makePeriod(t, "", "", "", "").ReturnDate
		assert.ErrorIs(t, ValidateStep(d, StepPeriod), ErrPeriodIncomplete)
	})

	t.Run("return not after delivery", func(t *testing.T) {
		d := completeDraft(t)
		d.Period = makePeriod(t, "2025-03-12", "10:00", "2025-03-12", "10:00")
		assert.ErrorIs(t, ValidateStep(d, StepPeriod), ErrReturnNotAfterDelivery)
	})

	t.Run("missing witness field", func(t *testing.T) {
		d := completeDraft(t)
		d.Witness.Address = ""
		assert.ErrorIs(t, ValidateStep(d, StepWitness), ErrWitnessIncomplete)
	})

	t.Run("malformed witness cnic", func(t *testing.T) {
		d := completeDraft(t)
		d.Witness.CNIC = "not-a-cnic"
		assert.ErrorIs(t, ValidateStep(d, StepWitness), ErrInvalidWitnessCNIC)
	})

	t.Run("negative advance", func(t *testing.T) {
		d := completeDraft(t)
		d.Payment.AdvancePayment = -100
		assert.ErrorIs(t, ValidateStep(d, StepPayment), ErrNegativeAdvance)
	})

	t.Run("agreement step is always valid", func(t *testing.T) {
		d := NewDraft("draft-1", 42, testNow(t))
		assert.NoError(t, ValidateStep(d, StepAgreement))
	})
}

func TestValidateAll(t *testing.T) {
	t.Run("complete draft passes", func(t *testing.T) {
		require.NoError(t, ValidateAll(completeDraft(t)))
	})

	t.Run("reports the first failing step", func(t *testing.T) {
		d := completeDraft(t)
		d.Client.FullName = ""
		d.Witness.Name = ""
		assert.ErrorIs(t, ValidateAll(d), ErrClientIncomplete)
	})
}

func TestWizardStepTransitions(t *testing.T) {
	assert.Equal(t, StepVehicle, StepClient.Next())
	assert.Equal(t, StepAgreement, StepAgreement.Next(), "last step does not advance past itself")
	assert.Equal(t, StepClient, StepClient.Prev(), "first step does not retreat past itself")
	assert.Equal(t, StepPayment, StepAgreement.Prev())
}
