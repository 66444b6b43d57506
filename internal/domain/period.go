package domain

import (
	"time"

	"github.com/m04kA/SMC-RentalService/pkg/types"
)

// RentalPeriod represents the delivery/return endpoints of a rental
// together with the pricing unit selector.
// Dates and times of day are captured separately (as the wizard collects them)
// and combined into instants on demand.
type RentalPeriod struct {
	DeliveryDate time.Time // zero = not set
	DeliveryTime types.TimeString
	ReturnDate   time.Time // zero = not set
	ReturnTime   types.TimeString

	RentType   RentType
	CustomDays int
}

// IsComplete returns true if all four period fields are present
func (p RentalPeriod) IsComplete() bool {
	return !p.DeliveryDate.IsZero() && !p.DeliveryTime.IsZero() &&
		!p.ReturnDate.IsZero() && !p.ReturnTime.IsZero()
}

// DeliveryAt combines the delivery date and time of day into a single instant
func (p RentalPeriod) DeliveryAt() (time.Time, error) {
	return p.DeliveryTime.On(p.DeliveryDate)
}

// ReturnAt combines the return date and time of day into a single instant
func (p RentalPeriod) ReturnAt() (time.Time, error) {
	return p.ReturnTime.On(p.ReturnDate)
}

// Bounds returns both endpoints as instants.
// ok=false when any of the four source fields is missing or malformed.
func (p RentalPeriod) Bounds() (delivery, ret time.Time, ok bool) {
	if !p.IsComplete() {
		return time.Time{}, time.Time{}, false
	}
	delivery, err := p.DeliveryAt()
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	ret, err = p.ReturnAt()
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return delivery, ret, true
}
