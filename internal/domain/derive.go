package domain

// DeriveState recomputes the derived figures of a booking session from its
// raw inputs, in dependency order: duration, then total price (skipped when
// the total is frozen by manual mode), then payment reconciliation.
//
// Pure function: calling it twice with identical inputs yields identical
// output. The aggregate invokes it after every relevant field mutation.
func DeriveState(period RentalPeriod, perDayPrice float64, vehicle *Vehicle, payment PaymentState) (Duration, PaymentState) {
	dur := CalculateDuration(period)

	if payment.Mode != PricingManual {
		perDay := ResolvePerDayRate(perDayPrice, vehicle)
		payment.TotalAmount = AutoTotal(period.RentType, dur, period.CustomDays, perDay)
	}

	return dur, Reconcile(payment)
}
