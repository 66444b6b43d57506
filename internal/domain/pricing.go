package domain

import "math"

// ResolvePerDayRate resolves the effective per-day rate:
// the explicitly set per-day price when positive, otherwise the selected
// vehicle's daily rate, otherwise 0.
func ResolvePerDayRate(perDayPrice float64, vehicle *Vehicle) float64 {
	if perDayPrice > 0 {
		return perDayPrice
	}
	if vehicle != nil {
		return vehicle.DailyRate
	}
	return 0
}

// CalculateTotal computes the total price for a rent type from the duration
// figures and the resolved per-day rate. Pure function, no side effects.
//
// The hourly sub-rate (perDay/24) is rounded half-up before multiplying by hours.
// A non-positive per-day rate yields 0 regardless of duration.
func CalculateTotal(rentType RentType, dur Duration, customDays int, perDay float64) float64 {
	if perDay <= 0 {
		return 0
	}

	switch rentType {
	case RentTypeHourly:
		return roundHalfUp(perDay/HoursPerDay) * float64(dur.Hours)
	case RentTypeDaily:
		return perDay * float64(dur.Days)
	case RentTypeWeekly:
		return perDay * DaysPerWeek * float64(dur.Weeks)
	case RentTypeMonthly:
		return perDay * DaysPerMonth * float64(dur.Months)
	case RentTypeCustom:
		return perDay * float64(customDays)
	default:
		return 0
	}
}

// AutoTotal computes the total for auto pricing mode.
//
// Precedence: an explicit custom-day count always wins over a date-derived
// duration, even when the rent type is not "custom" - callers relying on
// date-derived pricing must clear CustomDays to 0.
// TODO: confirm with product whether the customDays-wins rule outside the
// "custom" rent type is intended; it is preserved here as observed behavior.
func AutoTotal(rentType RentType, dur Duration, customDays int, perDay float64) float64 {
	if perDay <= 0 {
		return 0
	}

	switch {
	case rentType == RentTypeCustom && customDays > 0:
		return perDay * float64(customDays)
	case customDays > 0:
		// Остаточное значение customDays с предыдущего шага тоже имеет приоритет
		return perDay * float64(customDays)
	case dur.Days > 0:
		return CalculateTotal(rentType, dur, customDays, perDay)
	default:
		return 0
	}
}

// roundHalfUp округляет до ближайшего целого, 0.5 - вверх
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
