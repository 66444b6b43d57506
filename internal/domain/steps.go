package domain

// WizardStep identifies one of the seven linear wizard steps
type WizardStep int

const (
	StepClient    WizardStep = 1
	StepVehicle   WizardStep = 2
	StepCondition WizardStep = 3
	StepPeriod    WizardStep = 4
	StepWitness   WizardStep = 5
	StepPayment   WizardStep = 6
	StepAgreement WizardStep = 7

	FirstStep = StepClient
	LastStep  = StepAgreement
)

// IsValid returns true if the step is within the 1..7 range
func (s WizardStep) IsValid() bool {
	return s >= FirstStep && s <= LastStep
}

// Next returns the following step, capped at the last one
func (s WizardStep) Next() WizardStep {
	if s >= LastStep {
		return LastStep
	}
	return s + 1
}

// Prev returns the preceding step, capped at the first one
func (s WizardStep) Prev() WizardStep {
	if s <= FirstStep {
		return FirstStep
	}
	return s - 1
}

// String returns the step title
func (s WizardStep) String() string {
	switch s {
	case StepClient:
		return "client"
	case StepVehicle:
		return "vehicle"
	case StepCondition:
		return "condition"
	case StepPeriod:
		return "period"
	case StepWitness:
		return "witness"
	case StepPayment:
		return "payment"
	case StepAgreement:
		return "agreement"
	default:
		return "unknown"
	}
}
