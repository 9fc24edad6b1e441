package responses

import (
	"calculator-service/internal/app/models"
	"time"
)

type CalculatorSummary struct {
	Type              models.CalculatorType `json:"type"`
	Name              string                `json:"name"`
	Version           string                `json:"version"`
	Category          string                `json:"category"`
	Theme             string                `json:"theme"`
	EstimatedDuration string                `json:"estimated_duration"`
}

type Calculator struct {
	CalculatorSummary
	DefaultAge     *int                     `json:"default_age,omitempty"`
	DefaultGender  *models.Gender           `json:"default_gender,omitempty"`
	MinAge         *int                     `json:"min_age,omitempty"`
	MaxAge         *int                     `json:"max_age,omitempty"`
	AllowedGenders []models.Gender          `json:"allowed_genders,omitempty"`
	Steps          []models.CalculatorStep  `json:"steps"`
	Fields         []models.FieldDefinition `json:"fields"`
}

func NewCalculatorSummary(config *models.CalculatorConfig) CalculatorSummary {
	return CalculatorSummary{
		Type:              config.Type,
		Name:              config.Name,
		Version:           config.Version,
		Category:          config.Category,
		Theme:             config.Theme,
		EstimatedDuration: config.EstimatedDuration.Round(time.Second).String(),
	}
}

func NewCalculator(config *models.CalculatorConfig) *Calculator {
	return &Calculator{
		CalculatorSummary: NewCalculatorSummary(config),
		DefaultAge:        config.DefaultAge,
		DefaultGender:     config.DefaultGender,
		MinAge:            config.MinAge,
		MaxAge:            config.MaxAge,
		AllowedGenders:    config.AllowedGenders,
		Steps:             config.Steps,
		Fields:            config.Fields,
	}
}
