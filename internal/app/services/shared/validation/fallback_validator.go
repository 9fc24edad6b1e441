package validation

import (
	"calculator-service/internal/app/contracts"
	"calculator-service/internal/app/models"
	"calculator-service/internal/pkg/exceptions"
)

type requiredOnlyValidator struct{}

// NewRequiredOnlyValidator only checks that required fields are answered and
// that the patient is eligible. It is used when no schema is supplied.
func NewRequiredOnlyValidator() contracts.PayloadValidator {
	return requiredOnlyValidator{}
}

func (requiredOnlyValidator) Validate(config *models.CalculatorConfig, patient models.PatientData, answers models.CalculatorData) []exceptions.FieldViolation {
	var violations []exceptions.FieldViolation

	required := RequiredFields(config)
	for _, field := range config.Fields {
		if required[field.ID] && !answers.IsAnswered(field.ID) {
			violations = append(violations, violation(field.ID, tagAnswered, ""))
		}
	}
	if !config.IsAgeAllowed(patient.Age) {
		violations = append(violations, violation(FieldPatientAge, tagAge, ""))
	}
	if !config.IsGenderAllowed(patient.Gender) {
		violations = append(violations, violation(FieldPatientGender, tagGender, ""))
	}
	return violations
}
