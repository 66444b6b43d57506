package domain

// PricingMode determines whether the total amount is derived automatically
// or frozen by a manual edit
type PricingMode string

const (
	// PricingAuto total is recomputed from duration/pricing inputs on every change
	PricingAuto PricingMode = "auto"

	// PricingManual total was edited directly; upstream changes do not overwrite it
	// until auto mode is explicitly restored
	PricingManual PricingMode = "manual"
)

// PaymentState holds the reconciled payment figures of a booking session
type PaymentState struct {
	TotalAmount    float64
	AdvancePayment float64
	Balance        float64
	Status         PaymentStatus
	Mode           PricingMode
}

// PaymentStatusFor derives the payment status from the advance/total pair:
// paid when the advance covers the total (including total = 0),
// partial when some advance was made, pending otherwise.
func PaymentStatusFor(advance, total float64) PaymentStatus {
	switch {
	case advance >= total:
		return PaymentPaid
	case advance > 0:
		return PaymentPartial
	default:
		return PaymentPending
	}
}

// Reconcile restores the payment invariants for the given total/advance pair:
// balance = total - advance (may be negative) and status as per PaymentStatusFor.
// Independent of pricing mode.
func Reconcile(state PaymentState) PaymentState {
	state.Balance = state.TotalAmount - state.AdvancePayment
	state.Status = PaymentStatusFor(state.AdvancePayment, state.TotalAmount)
	return state
}
