package requests

import "calculator-service/internal/app/models"

type CreateSession struct {
	CalculatorType models.CalculatorType `json:"calculator_type" validate:"required"`
	Patient        *PatientInput         `json:"patient,omitempty"`
}

type PatientInput struct {
	Name   string  `json:"name"`
	Age    *int    `json:"age" validate:"omitempty,gte=0"`
	Gender *string `json:"gender" validate:"omitempty,gender"`
}

// SetFieldValues writes any number of fields in one call. A null value clears
// the answer.
type SetFieldValues struct {
	Fields []FieldValue `json:"fields" validate:"required,min=1,dive"`
}

type FieldValue struct {
	Bucket models.Bucket `json:"bucket" validate:"required,oneof=patient calculator"`
	Key    string        `json:"key" validate:"required"`
	Value  interface{}   `json:"value"`
}
