package submit_agreement

import (
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

// rentalFromDraft собирает финализированную запись договора из черновика
// Данные автомобиля денормализуются - договор хранит их независимо от каталога
func rentalFromDraft(d *domain.Draft, vehicle *domain.Vehicle) *domain.Rental {
	rental := &domain.Rental{
		UserID: d.UserID,
		Client: d.Client,

		VehicleID:    vehicle.ID,
		VehicleName:  vehicle.Name,
		VehicleBrand: vehicle.Brand,
		VehicleModel: vehicle.Model,
		VehicleYear:  vehicle.Year,
		VehicleColor: vehicle.Color,

		Witness: d.Witness,

		DeliveryDate: d.Period.DeliveryDate,
		DeliveryTime: d.Period.DeliveryTime,
		ReturnDate:   d.Period.ReturnDate,
		ReturnTime:   d.Period.ReturnTime,
		RentType:     d.Period.RentType,
		CustomDays:   d.Period.CustomDays,

		TotalAmount:    d.Payment.TotalAmount,
		AdvancePayment: d.Payment.AdvancePayment,
		Balance:        d.Payment.Balance,
		PaymentStatus:  d.Payment.Status,

		Accessories:      d.Accessories,
		VehicleCondition: d.VehicleCondition,
		DentsScratches:   d.DentsScratches,
	}

	if d.AgreementNumber != "" {
		rental.AgreementNumber = ptr.Ptr(d.AgreementNumber)
	}
	if d.Notes != "" {
		rental.Notes = ptr.Ptr(d.Notes)
	}
	if d.ClientSignature != "" {
		rental.ClientSignature = ptr.Ptr(d.ClientSignature)
	}
	if d.OwnerSignature != "" {
		rental.OwnerSignature = ptr.Ptr(d.OwnerSignature)
	}

	return rental
}

// synthesizedVehicle собирает запись каталога из свободного ввода мастера
// Тарифная сетка выводится из цены за день: час - фиксированная ставка,
// неделя и месяц - производные от дневной
func synthesizedVehicle(d *domain.Draft) *domain.Vehicle {
	dailyRate := d.PerDayPrice
	if dailyRate <= 0 {
		dailyRate = domain.DefaultDailyRate
	}

	name := d.VehicleSelection.Brand
	if d.VehicleSelection.Model != "" {
		if name != "" {
			name += " "
		}
		name += d.VehicleSelection.Model
	}

	return &domain.Vehicle{
		Name:        name,
		Type:        "car",
		Brand:       d.VehicleSelection.Brand,
		Model:       d.VehicleSelection.Model,
		Year:        d.VehicleSelection.Year,
		Color:       d.VehicleSelection.Color,
		Logo:        d.VehicleSelection.Logo,
		HourlyRate:  domain.DefaultHourlyRate,
		DailyRate:   dailyRate,
		WeeklyRate:  dailyRate * domain.DaysPerWeek,
		MonthlyRate: dailyRate * domain.DaysPerMonth,
	}
}
