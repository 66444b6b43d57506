package domain

import "time"

// Duration holds the rental duration expressed in four units at once.
// The zero value means "undefined" - the period endpoints are missing or invalid.
type Duration struct {
	Hours  int
	Days   int
	Weeks  int
	Months int
}

// IsZero returns true if the duration is undefined
func (d Duration) IsZero() bool {
	return d == Duration{}
}

// CalculateDuration derives the duration figures from a rental period.
// Returns the zero Duration when any endpoint is missing or return <= delivery -
// no negative or zero duration is ever produced.
//
// Rounding conventions:
//   - hours: ceiling of the raw difference
//   - days: ceiling, minimum 1 (a one-hour rental is billed as one day)
//   - weeks/months: ceiling of days over 7/30, minimum 1
func CalculateDuration(p RentalPeriod) Duration {
	delivery, ret, ok := p.Bounds()
	if !ok {
		return Duration{}
	}

	diff := ret.Sub(delivery)
	if diff <= 0 {
		return Duration{}
	}

	hours := ceilDiv(diff, time.Hour)
	days := ceilDiv(diff, 24*time.Hour)
	if days < 1 {
		days = 1
	}

	return Duration{
		Hours:  hours,
		Days:   days,
		Weeks:  ceilRatio(days, DaysPerWeek),
		Months: ceilRatio(days, DaysPerMonth),
	}
}

// ceilDiv делит длительность на единицу с округлением вверх
func ceilDiv(d, unit time.Duration) int {
	return int((d + unit - 1) / unit)
}

// ceilRatio делит дни на размер единицы с округлением вверх, минимум 1
func ceilRatio(days, unitDays int) int {
	n := (days + unitDays - 1) / unitDays
	if n < 1 {
		n = 1
	}
	return n
}
