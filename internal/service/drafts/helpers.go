package drafts

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/drafts/models"
	"github.com/m04kA/SMC-RentalService/pkg/types"
)

// parsePeriod разбирает строковые даты и времена периода аренды
// Пустая строка очищает соответствующее поле
func parsePeriod(p *models.PeriodPayload) (domain.RentalPeriod, error) {
	var period domain.RentalPeriod

	if p.DeliveryDate != "" {
		date, err := time.Parse(domain.DateFormat, p.DeliveryDate)
		if err != nil {
			return period, fmt.Errorf("%w: invalid delivery date %q", ErrInvalidInput, p.DeliveryDate)
		}
		period.DeliveryDate = date
	}

	if p.ReturnDate != "" {
		date, err := time.Parse(domain.DateFormat, p.ReturnDate)
		if err != nil {
			return period, fmt.Errorf("%w: invalid return date %q", ErrInvalidInput, p.ReturnDate)
		}
		period.ReturnDate = date
	}

	if p.DeliveryTime != "" {
		ts, err := types.NewTimeStringFromString(p.DeliveryTime)
		if err != nil {
			return period, fmt.Errorf("%w: invalid delivery time %q", ErrInvalidInput, p.DeliveryTime)
		}
		period.DeliveryTime = ts
	}

	if p.ReturnTime != "" {
		ts, err := types.NewTimeStringFromString(p.ReturnTime)
		if err != nil {
			return period, fmt.Errorf("%w: invalid return time %q", ErrInvalidInput, p.ReturnTime)
		}
		period.ReturnTime = ts
	}

	return period, nil
}

// synthesizeVehicle собирает snapshot автомобиля из свободного ввода
// Тарифная сетка строится от дневной ставки по тем же коэффициентам,
// что и при сабмите договора
func synthesizeVehicle(sel domain.VehicleSelection, dailyRate float64) *domain.Vehicle {
	name := sel.Brand
	if sel.Model != "" {
		if name != "" {
			name += " "
		}
		name += sel.Model
	}

	return &domain.Vehicle{
		Name:        name,
		Type:        "car",
		Brand:       sel.Brand,
		Model:       sel.Model,
		Year:        sel.Year,
		Color:       sel.Color,
		Logo:        sel.Logo,
		HourlyRate:  domain.DefaultHourlyRate,
		DailyRate:   dailyRate,
		WeeklyRate:  dailyRate * domain.DaysPerWeek,
		MonthlyRate: dailyRate * domain.DaysPerMonth,
	}
}
