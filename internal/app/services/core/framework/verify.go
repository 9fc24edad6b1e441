package framework

import (
	"calculator-service/internal/app/contracts"
	"calculator-service/internal/app/models"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// VerifyConfigs builds a throwaway calculator for every config so a missing
// scoring strategy or a broken step list surfaces at startup. The result
// combines one ConfigurationError per defective config.
func VerifyConfigs(configs []*models.CalculatorConfig, registry contracts.ScoringRegistry, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	var errs error
	for _, config := range configs {
		if _, err := NewCalculator(config, registry, nil, nil, logger); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}
