// Package scoring holds one pure scoring strategy per calculator type.
package scoring

import (
	"calculator-service/internal/app/contracts"
	"calculator-service/internal/app/models"
	"calculator-service/internal/pkg/exceptions"
	"fmt"
	"sort"
)

type registry struct {
	strategies map[models.CalculatorType]contracts.ScoringStrategy
}

// NewRegistry returns a registry holding every bundled calculator strategy.
func NewRegistry() contracts.ScoringRegistry {
	return NewRegistryWith(map[models.CalculatorType]contracts.ScoringStrategy{
		models.CalculatorTypeAUDIT:           contracts.ScoringStrategyFunc(ScoreAUDIT),
		models.CalculatorTypeEPDS:            contracts.ScoringStrategyFunc(ScoreEPDS),
		models.CalculatorTypeGCS:             contracts.ScoringStrategyFunc(ScoreGCS),
		models.CalculatorTypeIPSS:            contracts.ScoringStrategyFunc(ScoreIPSS),
		models.CalculatorTypePUQE:            contracts.ScoringStrategyFunc(ScorePUQE),
		models.CalculatorTypeWHO5:            contracts.ScoringStrategyFunc(ScoreWHO5),
		models.CalculatorTypeWestleyCroup:    contracts.ScoringStrategyFunc(ScoreWestleyCroup),
		models.CalculatorTypeDANPSS:          contracts.ScoringStrategyFunc(ScoreDANPSS),
		models.CalculatorTypeCardiovascular:  contracts.ScoringStrategyFunc(ScoreCardiovascular),
		models.CalculatorTypePediatricDosing: contracts.ScoringStrategyFunc(ScorePediatricDosing),
	})
}

// NewRegistryWith builds a registry from an explicit strategy set.
func NewRegistryWith(strategies map[models.CalculatorType]contracts.ScoringStrategy) contracts.ScoringRegistry {
	copied := make(map[models.CalculatorType]contracts.ScoringStrategy, len(strategies))
	for calculatorType, strategy := range strategies {
		copied[calculatorType] = strategy
	}
	return &registry{strategies: copied}
}

func (r *registry) Resolve(calculatorType models.CalculatorType) (contracts.ScoringStrategy, error) {
	strategy, ok := r.strategies[calculatorType]
	if !ok || strategy == nil {
		return nil, &exceptions.ConfigurationError{
			CalculatorType: string(calculatorType),
			Reason:         fmt.Sprintf("no scoring strategy registered for %q", calculatorType),
		}
	}
	return strategy, nil
}

func (r *registry) Types() []models.CalculatorType {
	types := make([]models.CalculatorType, 0, len(r.strategies))
	for calculatorType := range r.strategies {
		types = append(types, calculatorType)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
