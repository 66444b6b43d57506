package models

import (
	"encoding/json"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Секции черновика

// ClientPayload данные клиента (шаг 1)
type ClientPayload struct {
	FullName string          `json:"fullName"`
	CNIC     string          `json:"cnic"`
	Phone    string          `json:"phone"`
	Address  string          `json:"address"`
	Images   json.RawMessage `json:"images,omitempty"` // opaque
}

// VehicleSelectionPayload данные автомобиля свободным вводом (шаг 2)
type VehicleSelectionPayload struct {
	Brand string `json:"brand"`
	Model string `json:"model"`
	Year  string `json:"year"`
	Color string `json:"color"`
	Logo  string `json:"logo,omitempty"`
}

// PeriodPayload период аренды (шаг 4)
// Даты в формате YYYY-MM-DD, время в формате HH:MM; пустая строка очищает поле
type PeriodPayload struct {
	DeliveryDate string `json:"deliveryDate"`
	DeliveryTime string `json:"deliveryTime"`
	ReturnDate   string `json:"returnDate"`
	ReturnTime   string `json:"returnTime"`
}

// WitnessPayload данные свидетеля (шаг 5)
type WitnessPayload struct {
	Name    string  `json:"name"`
	CNIC    string  `json:"cnic"`
	Phone   string  `json:"phone"`
	Address string  `json:"address"`
	Image   *string `json:"image,omitempty"` // opaque
}

// DurationPayload производные величины длительности
type DurationPayload struct {
	Hours  int `json:"hours"`
	Days   int `json:"days"`
	Weeks  int `json:"weeks"`
	Months int `json:"months"`
}

// PaymentPayload производное состояние оплаты
type PaymentPayload struct {
	TotalAmount    float64 `json:"totalAmount"`
	AdvancePayment float64 `json:"advancePayment"`
	Balance        float64 `json:"balance"`
	Status         string  `json:"paymentStatus"`
	Mode           string  `json:"pricingMode"`
}

// Request модели

// UpdateDraftRequest частичное обновление полей мастера
// nil-поля не изменяются; каждая присланная секция заменяет свою целиком
type UpdateDraftRequest struct {
	AgreementNumber  *string                  `json:"agreementNumber,omitempty"`
	Client           *ClientPayload           `json:"client,omitempty"`
	VehicleID        *int64                   `json:"vehicleId,omitempty"`
	VehicleSelection *VehicleSelectionPayload `json:"vehicleSelection,omitempty"`
	Period           *PeriodPayload           `json:"period,omitempty"`
	RentType         *string                  `json:"rentType,omitempty"`
	CustomDays       *int                     `json:"customDays,omitempty"`
	PerDayPrice      *float64                 `json:"perDayPrice,omitempty"`
	Witness          *WitnessPayload          `json:"witness,omitempty"`
	AdvancePayment   *float64                 `json:"advancePayment,omitempty"`
	TotalAmount      *float64                 `json:"totalAmount,omitempty"` // прямое редактирование включает manual-режим
	Notes            *string                  `json:"notes,omitempty"`
	Accessories      json.RawMessage          `json:"accessories,omitempty"`      // opaque
	VehicleCondition json.RawMessage          `json:"vehicleCondition,omitempty"` // opaque
	DentsScratches   json.RawMessage          `json:"dentsScratches,omitempty"`   // opaque
	ClientSignature  *string                  `json:"clientSignature,omitempty"`  // opaque
	OwnerSignature   *string                  `json:"ownerSignature,omitempty"`   // opaque
}

// Response модели

// DraftResponse полное состояние черновика, включая производные величины
type DraftResponse struct {
	ID        string `json:"id"`
	Step      int    `json:"step"`
	StepTitle string `json:"stepTitle"`

	AgreementNumber  string                  `json:"agreementNumber,omitempty"`
	Client           ClientPayload           `json:"client"`
	VehicleID        *int64                  `json:"vehicleId,omitempty"`
	VehicleSelection VehicleSelectionPayload `json:"vehicleSelection"`
	Period           PeriodPayload           `json:"period"`
	RentType         string                  `json:"rentType"`
	CustomDays       int                     `json:"customDays"`
	PerDayPrice      float64                 `json:"perDayPrice"`
	Witness          WitnessPayload          `json:"witness"`

	Duration DurationPayload `json:"duration"`
	Payment  PaymentPayload  `json:"payment"`

	Notes            string          `json:"notes,omitempty"`
	Accessories      json.RawMessage `json:"accessories,omitempty"`
	VehicleCondition json.RawMessage `json:"vehicleCondition,omitempty"`
	DentsScratches   json.RawMessage `json:"dentsScratches,omitempty"`
	ClientSignature  string          `json:"clientSignature,omitempty"`
	OwnerSignature   string          `json:"ownerSignature,omitempty"`

	Submitting bool `json:"submitting"`

	CreatedAt      time.Time `json:"createdAt"`
	LastActivityAt time.Time `json:"lastActivityAt"`
}

// FromDomainDraft конвертирует domain модель в DTO
func FromDomainDraft(d *domain.Draft) *DraftResponse {
	if d == nil {
		return nil
	}

	resp := &DraftResponse{
		ID:              d.ID,
		Step:            int(d.Step),
		StepTitle:       d.Step.String(),
		AgreementNumber: d.AgreementNumber,
		Client: ClientPayload{
			FullName: d.Client.FullName,
			CNIC:     d.Client.CNIC,
			Phone:    d.Client.Phone,
			Address:  d.Client.Address,
			Images:   d.Client.Images,
		},
		VehicleSelection: VehicleSelectionPayload{
			Brand: d.VehicleSelection.Brand,
			Model: d.VehicleSelection.Model,
			Year:  d.VehicleSelection.Year,
			Color: d.VehicleSelection.Color,
			Logo:  d.VehicleSelection.Logo,
		},
		Period: PeriodPayload{
			DeliveryTime: d.Period.DeliveryTime.String(),
			ReturnTime:   d.Period.ReturnTime.String(),
		},
		RentType:    string(d.Period.RentType),
		CustomDays:  d.Period.CustomDays,
		PerDayPrice: d.PerDayPrice,
		Witness: WitnessPayload{
			Name:    d.Witness.Name,
			CNIC:    d.Witness.CNIC,
			Phone:   d.Witness.Phone,
			Address: d.Witness.Address,
			Image:   d.Witness.Image,
		},
		Duration: DurationPayload{
			Hours:  d.Duration.Hours,
			Days:   d.Duration.Days,
			Weeks:  d.Duration.Weeks,
			Months: d.Duration.Months,
		},
		Payment: PaymentPayload{
			TotalAmount:    d.Payment.TotalAmount,
			AdvancePayment: d.Payment.AdvancePayment,
			Balance:        d.Payment.Balance,
			Status:         string(d.Payment.Status),
			Mode:           string(d.Payment.Mode),
		},
		Notes:            d.Notes,
		Accessories:      d.Accessories,
		VehicleCondition: d.VehicleCondition,
		DentsScratches:   d.DentsScratches,
		ClientSignature:  d.ClientSignature,
		OwnerSignature:   d.OwnerSignature,
		Submitting:       d.Submitting,
		CreatedAt:        d.CreatedAt,
		LastActivityAt:   d.LastActivityAt,
	}

	// ID есть только у автомобиля из каталога; синтезированный snapshot его не имеет
	if d.Vehicle != nil && d.Vehicle.ID > 0 {
		resp.VehicleID = &d.Vehicle.ID
	}

	if !d.Period.DeliveryDate.IsZero() {
		resp.Period.DeliveryDate = d.Period.DeliveryDate.Format(domain.DateFormat)
	}
	if !d.Period.ReturnDate.IsZero() {
		resp.Period.ReturnDate = d.Period.ReturnDate.Format(domain.DateFormat)
	}

	return resp
}
