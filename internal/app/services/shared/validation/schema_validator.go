package validation

import (
	"calculator-service/internal/app/contracts"
	"calculator-service/internal/app/models"
	"calculator-service/internal/pkg/exceptions"
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	FieldPatientAge    = "patient.age"
	FieldPatientGender = "patient.gender"

	tagAnswered = "answered"
	tagGender   = "gender"
	tagAge      = "age"
)

type schemaValidator struct {
	validate *validator.Validate
}

// NewSchemaValidator checks answers against the constraint tags declared on
// each field definition, and the patient against the calculator eligibility.
func NewSchemaValidator() contracts.PayloadValidator {
	validate := validator.New()
	validate.RegisterValidation("choice", validateChoice)
	return &schemaValidator{validate: validate}
}

func (v *schemaValidator) Validate(config *models.CalculatorConfig, patient models.PatientData, answers models.CalculatorData) []exceptions.FieldViolation {
	var violations []exceptions.FieldViolation

	required := RequiredFields(config)
	for _, field := range config.Fields {
		if !answers.IsAnswered(field.ID) {
			if required[field.ID] {
				violations = append(violations, violation(field.ID, tagAnswered, ""))
			}
			continue
		}
		if field.Constraint == "" {
			continue
		}
		violations = append(violations, v.checkValue(field.ID, *answers[field.ID], field.Constraint)...)
	}

	violations = append(violations, v.checkPatient(config, patient)...)
	return violations
}

func (v *schemaValidator) checkValue(fieldID string, value float64, constraint string) []exceptions.FieldViolation {
	err := v.validate.Var(value, constraint)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []exceptions.FieldViolation{violation(fieldID, "invalid", "")}
	}
	violations := make([]exceptions.FieldViolation, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		violations = append(violations, violation(fieldID, fieldErr.Tag(), fieldErr.Param()))
	}
	return violations
}

func (v *schemaValidator) checkPatient(config *models.CalculatorConfig, patient models.PatientData) []exceptions.FieldViolation {
	var violations []exceptions.FieldViolation

	if err := v.validate.Var(patient.Age, "gte=0"); err != nil {
		violations = append(violations, violation(FieldPatientAge, "gte", "0"))
	} else if !config.IsAgeAllowed(patient.Age) {
		violations = append(violations, violation(FieldPatientAge, tagAge, ""))
	}

	if patient.Gender != nil && !patient.Gender.IsValid() {
		violations = append(violations, violation(FieldPatientGender, "oneof", "male female other"))
	} else if !config.IsGenderAllowed(patient.Gender) {
		violations = append(violations, violation(FieldPatientGender, tagGender, ""))
	}
	return violations
}

// RequiredFields returns the ids of fields that sit on a step with validation enabled.
func RequiredFields(config *models.CalculatorConfig) map[string]bool {
	validated := make(map[string]bool, len(config.Steps))
	for _, step := range config.Steps {
		if step.Validation {
			validated[step.ID] = true
		}
	}
	required := make(map[string]bool, len(config.Fields))
	for _, field := range config.Fields {
		if validated[field.StepID] {
			required[field.ID] = true
		}
	}
	return required
}

func violation(field, tag, param string) exceptions.FieldViolation {
	return exceptions.FieldViolation{
		Field:   field,
		Tag:     tag,
		Param:   param,
		Message: exceptions.FieldMessage(tag, param),
	}
}

// validateChoice is oneof for numbers: "choice=0 2 4".
func validateChoice(fl validator.FieldLevel) bool {
	var value float64
	field := fl.Field()
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		value = field.Float()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		value = float64(field.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		value = float64(field.Uint())
	default:
		return false
	}

	for _, option := range strings.Fields(fl.Param()) {
		allowed, err := strconv.ParseFloat(option, 64)
		if err == nil && allowed == value {
			return true
		}
	}
	return false
}
