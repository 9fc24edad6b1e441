package models

import "time"

// CalculatorType selects the scoring strategy of a calculator.
type CalculatorType string

const (
	CalculatorTypeAUDIT           CalculatorType = "audit"
	CalculatorTypeEPDS            CalculatorType = "epds"
	CalculatorTypeGCS             CalculatorType = "gcs"
	CalculatorTypeIPSS            CalculatorType = "ipss"
	CalculatorTypePUQE            CalculatorType = "puqe"
	CalculatorTypeWHO5            CalculatorType = "who5"
	CalculatorTypeWestleyCroup    CalculatorType = "westley_croup"
	CalculatorTypeDANPSS          CalculatorType = "danpss"
	CalculatorTypeCardiovascular  CalculatorType = "cardiovascular_risk"
	CalculatorTypePediatricDosing CalculatorType = "pediatric_dosing"
)

// Bucket names the data bag a field setter writes into.
type Bucket string

const (
	BucketPatient    Bucket = "patient"
	BucketCalculator Bucket = "calculator"
)

// CalculatorConfig is the immutable declaration of one questionnaire.
type CalculatorConfig struct {
	Type              CalculatorType `json:"type" yaml:"type"`
	Name              string         `json:"name" yaml:"name"`
	Version           string         `json:"version" yaml:"version"`
	Category          string         `json:"category" yaml:"category"`
	Theme             string         `json:"theme" yaml:"theme"`
	DefaultAge        *int           `json:"default_age,omitempty" yaml:"default_age,omitempty"`
	DefaultGender     *Gender        `json:"default_gender,omitempty" yaml:"default_gender,omitempty"`
	MinAge            *int           `json:"min_age,omitempty" yaml:"min_age,omitempty"`
	MaxAge            *int           `json:"max_age,omitempty" yaml:"max_age,omitempty"`
	AllowedGenders    []Gender       `json:"allowed_genders,omitempty" yaml:"allowed_genders,omitempty"`
	EstimatedDuration time.Duration  `json:"estimated_duration" yaml:"estimated_duration"`

	// ResetPatient makes resetCalculator recreate PatientData as well.
	ResetPatient bool              `json:"reset_patient" yaml:"reset_patient"`
	Steps        []CalculatorStep  `json:"steps" yaml:"steps"`
	Fields       []FieldDefinition `json:"fields" yaml:"fields"`
}

// CalculatorStep groups fields into one screen of a questionnaire.
type CalculatorStep struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
	Order int    `json:"order" yaml:"order"`

	// Validation requires every field of the step to be answered.
	Validation bool `json:"validation" yaml:"validation"`
}

// FieldDefinition declares one answer slot of CalculatorData.
type FieldDefinition struct {
	ID     string `json:"id" yaml:"id"`
	StepID string `json:"step_id" yaml:"step_id"`
	Label  string `json:"label" yaml:"label"`

	// Constraint is a validator tag list applied to the answered value, e.g. "min=0,max=4".
	Constraint string   `json:"constraint,omitempty" yaml:"constraint,omitempty"`
	Default    *float64 `json:"default,omitempty" yaml:"default,omitempty"`
}

// IsGenderAllowed reports whether gender satisfies the calculator restriction.
// An unrestricted calculator accepts any gender, including an unset one.
func (c *CalculatorConfig) IsGenderAllowed(gender *Gender) bool {
	if len(c.AllowedGenders) == 0 {
		return true
	}
	if gender == nil {
		return false
	}
	for _, allowed := range c.AllowedGenders {
		if allowed == *gender {
			return true
		}
	}
	return false
}

// IsAgeAllowed reports whether age lies inside the configured bounds.
func (c *CalculatorConfig) IsAgeAllowed(age int) bool {
	if c.MinAge != nil && age < *c.MinAge {
		return false
	}
	if c.MaxAge != nil && age > *c.MaxAge {
		return false
	}
	return true
}

// DefaultCalculatorData builds the answer map a fresh or reset session starts with.
func (c *CalculatorConfig) DefaultCalculatorData() CalculatorData {
	data := make(CalculatorData, len(c.Fields))
	for _, field := range c.Fields {
		if field.Default != nil {
			data[field.ID] = Float(*field.Default)
			continue
		}
		data[field.ID] = nil
	}
	return data
}

// DefaultPatientData builds the patient bag a fresh session starts with.
func (c *CalculatorConfig) DefaultPatientData() PatientData {
	patient := PatientData{}
	if c.DefaultAge != nil {
		patient.Age = *c.DefaultAge
	}
	if c.DefaultGender != nil {
		gender := *c.DefaultGender
		patient.Gender = &gender
	}
	return patient
}
