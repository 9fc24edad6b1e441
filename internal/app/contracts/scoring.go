package contracts

import "calculator-service/internal/app/models"

// ScoringStrategy turns one calculator's answers into a result. Implementations
// are pure: the same input always yields the same output, and CompletedAt is
// left for the framework to stamp.
type ScoringStrategy interface {
	Score(answers models.CalculatorData, patient models.PatientData) (*models.CalculationResult, error)
}

// ScoringStrategyFunc adapts a plain function to ScoringStrategy.
type ScoringStrategyFunc func(answers models.CalculatorData, patient models.PatientData) (*models.CalculationResult, error)

func (f ScoringStrategyFunc) Score(answers models.CalculatorData, patient models.PatientData) (*models.CalculationResult, error) {
	return f(answers, patient)
}

type ScoringRegistry interface {
	Resolve(calculatorType models.CalculatorType) (ScoringStrategy, error)
	Types() []models.CalculatorType
}
