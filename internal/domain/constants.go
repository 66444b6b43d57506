package domain

// Default rate card for vehicles synthesized from free-text input
const (
	DefaultHourlyRate = 500.0
	DefaultDailyRate  = 3000.0
)

// Pricing unit conversions
const (
	HoursPerDay  = 24
	DaysPerWeek  = 7
	DaysPerMonth = 30
)

// Business validation constants
const (
	MaxNotesLength           = 500
	MaxAgreementNumberLength = 50
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
