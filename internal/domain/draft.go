package domain

import (
	"encoding/json"
	"time"
)

// VehicleSelection free-text vehicle details entered on the Vehicle step
// (used when no catalog vehicle is picked)
type VehicleSelection struct {
	Brand string
	Model string
	Year  string
	Color string
	Logo  string
}

// Draft represents an in-progress booking session of the agreement wizard.
// Created fresh per wizard invocation, lives only in memory until submission,
// destroyed on abandonment. Exclusively owned by the user who created it.
type Draft struct {
	ID     string
	UserID int64

	AgreementNumber string

	Client           Client
	VehicleSelection VehicleSelection
	Vehicle          *Vehicle // selected catalog vehicle (or synthesized snapshot)
	Period           RentalPeriod
	PerDayPrice      float64
	Witness          Witness

	// Derived figures - recomputed on every relevant field change
	Duration Duration
	Payment  PaymentState

	Notes string

	// Opaque payloads - passed through unexamined
	Accessories      json.RawMessage
	VehicleCondition json.RawMessage
	DentsScratches   json.RawMessage
	ClientSignature  string
	OwnerSignature   string

	Step WizardStep

	// Submitting guards against a second submit while the first is pending
	Submitting bool

	CreatedAt      time.Time
	LastActivityAt time.Time
}

// NewDraft creates a fresh wizard session at the first step with auto pricing
func NewDraft(id string, userID int64, now time.Time) *Draft {
	return &Draft{
		ID:     id,
		UserID: userID,
		Period: RentalPeriod{
			RentType: RentTypeDaily,
		},
		Payment: PaymentState{
			Status: PaymentPending,
			Mode:   PricingAuto,
		},
		Step:           FirstStep,
		CreatedAt:      now,
		LastActivityAt: now,
	}
}

// Derive recomputes all derived figures from the current inputs:
// duration first, then pricing (unless frozen by manual mode), then reconciliation.
func (d *Draft) Derive() {
	d.Duration, d.Payment = DeriveState(d.Period, d.PerDayPrice, d.Vehicle, d.Payment)
}

// Touch updates the activity timestamp used for expiry sweeps
func (d *Draft) Touch(now time.Time) {
	d.LastActivityAt = now
}

// IsExpired returns true if the session has been inactive longer than ttl
func (d *Draft) IsExpired(now time.Time, ttl time.Duration) bool {
	return now.Sub(d.LastActivityAt) > ttl
}
