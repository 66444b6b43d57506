package models

import (
	"encoding/json"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Request модели

// UpdateRentalRequest частичное обновление финализированного договора
// nil-поля не изменяются
type UpdateRentalRequest struct {
	AgreementNumber *string  `json:"agreementNumber,omitempty"`
	AdvancePayment  *float64 `json:"advancePayment,omitempty"`
	Notes           *string  `json:"notes,omitempty"`
	ClientSignature *string  `json:"clientSignature,omitempty"`
	OwnerSignature  *string  `json:"ownerSignature,omitempty"`
}

// ToDomainUpdate конвертирует запрос в domain модель обновления
func (r *UpdateRentalRequest) ToDomainUpdate() domain.RentalUpdate {
	return domain.RentalUpdate{
		AgreementNumber: r.AgreementNumber,
		AdvancePayment:  r.AdvancePayment,
		Notes:           r.Notes,
		ClientSignature: r.ClientSignature,
		OwnerSignature:  r.OwnerSignature,
	}
}

// ListRentalsFilter фильтр списка договоров из query-параметров
type ListRentalsFilter struct {
	PaymentStatus *string
}

// Response модели

// ClientResponse данные клиента договора
type ClientResponse struct {
	FullName string          `json:"fullName"`
	CNIC     string          `json:"cnic"`
	Phone    string          `json:"phone"`
	Address  string          `json:"address"`
	Images   json.RawMessage `json:"images,omitempty"`
}

// VehicleResponse денормализованные данные автомобиля договора
type VehicleResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Model string `json:"model"`
	Year  string `json:"year"`
	Color string `json:"color"`
}

// WitnessResponse данные свидетеля договора
type WitnessResponse struct {
	Name    string  `json:"name"`
	CNIC    string  `json:"cnic"`
	Phone   string  `json:"phone"`
	Address string  `json:"address"`
	Image   *string `json:"image,omitempty"`
}

// RentalResponse финализированный договор аренды
type RentalResponse struct {
	ID              int64   `json:"id"`
	AgreementNumber *string `json:"agreementNumber,omitempty"`
	UserID          int64   `json:"userId"`

	Client  ClientResponse  `json:"client"`
	Vehicle VehicleResponse `json:"vehicle"`
	Witness WitnessResponse `json:"witness"`

	DeliveryDate string `json:"deliveryDate"`
	DeliveryTime string `json:"deliveryTime"`
	ReturnDate   string `json:"returnDate"`
	ReturnTime   string `json:"returnTime"`
	RentType     string `json:"rentType"`
	CustomDays   int    `json:"customDays"`

	TotalAmount    float64 `json:"totalAmount"`
	AdvancePayment float64 `json:"advancePayment"`
	Balance        float64 `json:"balance"`
	PaymentStatus  string  `json:"paymentStatus"`

	Notes *string `json:"notes,omitempty"`

	Accessories      json.RawMessage `json:"accessories,omitempty"`
	VehicleCondition json.RawMessage `json:"vehicleCondition,omitempty"`
	DentsScratches   json.RawMessage `json:"dentsScratches,omitempty"`
	ClientSignature  *string         `json:"clientSignature,omitempty"`
	OwnerSignature   *string         `json:"ownerSignature,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ListRentalsResponse список договоров
type ListRentalsResponse struct {
	Rentals []*RentalResponse `json:"rentals"`
}

// FromDomainRental конвертирует domain модель в DTO
func FromDomainRental(r *domain.Rental) *RentalResponse {
	if r == nil {
		return nil
	}

	return &RentalResponse{
		ID:              r.ID,
		AgreementNumber: r.AgreementNumber,
		UserID:          r.UserID,
		Client: ClientResponse{
			FullName: r.Client.FullName,
			CNIC:     r.Client.CNIC,
			Phone:    r.Client.Phone,
			Address:  r.Client.Address,
			Images:   r.Client.Images,
		},
		Vehicle: VehicleResponse{
			ID:    r.VehicleID,
			Name:  r.VehicleName,
			Brand: r.VehicleBrand,
			Model: r.VehicleModel,
			Year:  r.VehicleYear,
			Color: r.VehicleColor,
		},
		Witness: WitnessResponse{
			Name:    r.Witness.Name,
			CNIC:    r.Witness.CNIC,
			Phone:   r.Witness.Phone,
			Address: r.Witness.Address,
			Image:   r.Witness.Image,
		},
		DeliveryDate:     r.DeliveryDate.Format(domain.DateFormat),
		DeliveryTime:     r.DeliveryTime.String(),
		ReturnDate:       r.ReturnDate.Format(domain.DateFormat),
		ReturnTime:       r.ReturnTime.String(),
		RentType:         string(r.RentType),
		CustomDays:       r.CustomDays,
		TotalAmount:      r.TotalAmount,
		AdvancePayment:   r.AdvancePayment,
		Balance:          r.Balance,
		PaymentStatus:    string(r.PaymentStatus),
		Notes:            r.Notes,
		Accessories:      r.Accessories,
		VehicleCondition: r.VehicleCondition,
		DentsScratches:   r.DentsScratches,
		ClientSignature:  r.ClientSignature,
		OwnerSignature:   r.OwnerSignature,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

// FromDomainRentals конвертирует список domain моделей в DTO
func FromDomainRentals(rentals []*domain.Rental) *ListRentalsResponse {
	result := make([]*RentalResponse, 0, len(rentals))
	for _, r := range rentals {
		result = append(result, FromDomainRental(r))
	}
	return &ListRentalsResponse{Rentals: result}
}
