package domain

import (
	"encoding/json"
	"time"

	"github.com/m04kA/SMC-RentalService/pkg/types"
)

// RentType represents the pricing unit selector for a rental
type RentType string

const (
	RentTypeHourly  RentType = "hourly"
	RentTypeDaily   RentType = "daily"
	RentTypeWeekly  RentType = "weekly"
	RentTypeMonthly RentType = "monthly"
	RentTypeCustom  RentType = "custom"
)

// IsValid returns true if the rent type is one of the known selectors
func (t RentType) IsValid() bool {
	switch t {
	case RentTypeHourly, RentTypeDaily, RentTypeWeekly, RentTypeMonthly, RentTypeCustom:
		return true
	}
	return false
}

// PaymentStatus represents the payment state of a rental
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

// IsValid returns true if the payment status is one of the known values
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentPartial, PaymentPaid:
		return true
	}
	return false
}

// Client represents the renting client captured on the first wizard step
type Client struct {
	FullName string
	CNIC     string
	Phone    string
	Address  string

	// Opaque image payload (CNIC scans, photo, driving license) - passed through unexamined
	Images json.RawMessage
}

// Witness represents the agreement witness
type Witness struct {
	Name    string
	CNIC    string
	Phone   string
	Address string

	// Opaque image reference - passed through unexamined
	Image *string
}

// Vehicle represents a catalog vehicle with its rate card
type Vehicle struct {
	ID    int64
	Name  string
	Type  string
	Brand string
	Model string
	Year  string
	Color string
	Logo  string
	Image string

	HourlyRate  float64
	DailyRate   float64
	WeeklyRate  float64
	MonthlyRate float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Rental represents a finalized rental agreement record
type Rental struct {
	ID              int64
	AgreementNumber *string
	UserID          int64

	Client Client

	// Denormalized vehicle data for the agreement document
	VehicleID    int64
	VehicleName  string
	VehicleBrand string
	VehicleModel string
	VehicleYear  string
	VehicleColor string

	Witness Witness

	DeliveryDate time.Time
	DeliveryTime types.TimeString
	ReturnDate   time.Time
	ReturnTime   types.TimeString
	RentType     RentType
	CustomDays   int

	TotalAmount    float64
	AdvancePayment float64
	Balance        float64
	PaymentStatus  PaymentStatus

	Notes *string

	// Opaque checklist/condition payloads - passed through unexamined
	Accessories      json.RawMessage
	VehicleCondition json.RawMessage
	DentsScratches   json.RawMessage

	// Opaque signature payloads
	ClientSignature *string
	OwnerSignature  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RentalsFilter фильтр для получения списка договоров
type RentalsFilter struct {
	UserID        *int64         // Фильтр по создателю (опционально)
	PaymentStatus *PaymentStatus // Фильтр по статусу оплаты (опционально)
}

// RentalUpdate частичное обновление договора (используется экранами вокруг мастера)
// nil-поля не изменяются
type RentalUpdate struct {
	AgreementNumber *string
	AdvancePayment  *float64
	Notes           *string
	ClientSignature *string
	OwnerSignature  *string
}

// IsEmpty returns true if the update changes nothing
func (u RentalUpdate) IsEmpty() bool {
	return u.AgreementNumber == nil &&
		u.AdvancePayment == nil &&
		u.Notes == nil &&
		u.ClientSignature == nil &&
		u.OwnerSignature == nil
}
