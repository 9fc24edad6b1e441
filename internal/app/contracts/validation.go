package contracts

import (
	"calculator-service/internal/app/models"
	"calculator-service/internal/pkg/exceptions"
)

// PayloadValidator checks a calculator payload against declared constraints
// and returns every field-level violation. An empty result means valid.
type PayloadValidator interface {
	Validate(config *models.CalculatorConfig, patient models.PatientData, answers models.CalculatorData) []exceptions.FieldViolation
}
