package models

import "github.com/m04kA/SMC-RentalService/internal/domain"

// VehicleResponse автомобиль каталога с тарифной сеткой
type VehicleResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Brand string `json:"brand"`
	Model string `json:"model"`
	Year  string `json:"year"`
	Color string `json:"color"`
	Logo  string `json:"logo,omitempty"`
	Image string `json:"image,omitempty"`

	HourlyRate  float64 `json:"hourlyRate"`
	DailyRate   float64 `json:"dailyRate"`
	WeeklyRate  float64 `json:"weeklyRate"`
	MonthlyRate float64 `json:"monthlyRate"`
}

// ListVehiclesResponse каталог автомобилей
type ListVehiclesResponse struct {
	Vehicles []*VehicleResponse `json:"vehicles"`
}

// FromDomainVehicle конвертирует domain модель в DTO
func FromDomainVehicle(v *domain.Vehicle) *VehicleResponse {
	if v == nil {
		return nil
	}

	return &VehicleResponse{
		ID:          v.ID,
		Name:        v.Name,
		Type:        v.Type,
		Brand:       v.Brand,
		Model:       v.Model,
		Year:        v.Year,
		Color:       v.Color,
		Logo:        v.Logo,
		Image:       v.Image,
		HourlyRate:  v.HourlyRate,
		DailyRate:   v.DailyRate,
		WeeklyRate:  v.WeeklyRate,
		MonthlyRate: v.MonthlyRate,
	}
}

// FromDomainVehicles конвертирует список domain моделей в DTO
func FromDomainVehicles(vehicles []*domain.Vehicle) *ListVehiclesResponse {
	result := make([]*VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		result = append(result, FromDomainVehicle(v))
	}
	return &ListVehiclesResponse{Vehicles: result}
}
