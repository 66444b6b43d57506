package domain

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/pkg/cnic"
)

// Sentinel errors surfaced as step-validation failures.
// Each blocks only the requested transition; session state stays unchanged.
var (
	// ErrClientIncomplete возвращается, когда не заполнены обязательные поля клиента
	ErrClientIncomplete = errors.New("domain: client details are incomplete")

	// ErrInvalidClientCNIC возвращается при некорректном формате CNIC клиента
	ErrInvalidClientCNIC = errors.New("domain: invalid client CNIC format")

	// ErrVehicleIncomplete возвращается, когда не заполнены данные автомобиля
	ErrVehicleIncomplete = errors.New("domain: vehicle details are incomplete")

	// ErrPeriodIncomplete возвращается, когда не заполнены все четыре поля периода
	ErrPeriodIncomplete = errors.New("domain: rental period details are incomplete")

	// ErrReturnNotAfterDelivery возвращается, когда возврат не позже выдачи
	ErrReturnNotAfterDelivery = errors.New("domain: return must be after delivery")

	// ErrWitnessIncomplete возвращается, когда не заполнены данные свидетеля
	ErrWitnessIncomplete = errors.New("domain: witness details are incomplete")

	// ErrInvalidWitnessCNIC возвращается при некорректном формате CNIC свидетеля
	ErrInvalidWitnessCNIC = errors.New("domain: invalid witness CNIC format")

	// ErrNegativeAdvance возвращается при отрицательном авансе
	ErrNegativeAdvance = errors.New("domain: advance payment cannot be negative")
)

// ValidateStep checks the completeness/format predicate of a single wizard step.
// Steps 3 (condition) and 7 (agreement) are always valid: checklist data is
// freeform and signatures are optional.
func ValidateStep(d *Draft, step WizardStep) error {
	switch step {
	case StepClient:
		c := d.Client
		if c.FullName == "" || c.CNIC == "" || c.Phone == "" || c.Address == "" {
			return ErrClientIncomplete
		}
		if !cnic.IsValid(c.CNIC) {
			return ErrInvalidClientCNIC
		}
		return nil

	case StepVehicle:
		v := d.VehicleSelection
		if v.Brand == "" || v.Model == "" || v.Year == "" || v.Color == "" {
			return ErrVehicleIncomplete
		}
		return nil

	case StepCondition:
		return nil

	case StepPeriod:
		delivery, ret, ok := d.Period.Bounds()
		if !ok {
			return ErrPeriodIncomplete
		}
		if !ret.After(delivery) {
			return ErrReturnNotAfterDelivery
		}
		return nil

	case StepWitness:
		w := d.Witness
		if w.Name == "" || w.CNIC == "" || w.Phone == "" || w.Address == "" {
			return ErrWitnessIncomplete
		}
		if !cnic.IsValid(w.CNIC) {
			return ErrInvalidWitnessCNIC
		}
		return nil

	case StepPayment:
		if d.Payment.AdvancePayment < 0 {
			return ErrNegativeAdvance
		}
		return nil

	case StepAgreement:
		return nil

	default:
		return fmt.Errorf("domain: unknown wizard step %d", step)
	}
}

// ValidateAll re-runs every step predicate in order.
// Used right before a final record is produced; a failure here blocks
// submission with the same reason it would block a forward transition.
func ValidateAll(d *Draft) error {
	for step := FirstStep; step <= LastStep; step++ {
		if err := ValidateStep(d, step); err != nil {
			return err
		}
	}
	return nil
}
