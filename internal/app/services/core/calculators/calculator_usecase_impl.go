package calculators

import (
	"calculator-service/internal/app/contracts"
	"calculator-service/internal/app/models"
	"calculator-service/internal/app/services/core/catalog"
	"calculator-service/internal/app/services/core/riskengine"
	"calculator-service/internal/pkg/constvars"
	"calculator-service/internal/pkg/dto/requests"
	"calculator-service/internal/pkg/dto/responses"
	"calculator-service/internal/pkg/exceptions"
	"calculator-service/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

type calculatorUsecase struct {
	Catalog *catalog.Catalog
	Log     *zap.Logger
}

func NewCalculatorUsecase(calculatorCatalog *catalog.Catalog, logger *zap.Logger) contracts.CalculatorUsecase {
	return &calculatorUsecase{
		Catalog: calculatorCatalog,
		Log:     logger,
	}
}

func (uc *calculatorUsecase) ListCalculators(ctx context.Context) ([]responses.CalculatorSummary, error) {
	configs := uc.Catalog.List()
	result := make([]responses.CalculatorSummary, 0, len(configs))
	for _, config := range configs {
		result = append(result, responses.NewCalculatorSummary(config))
	}
	return result, nil
}

func (uc *calculatorUsecase) GetCalculator(ctx context.Context, calculatorType models.CalculatorType) (*responses.Calculator, error) {
	config, err := uc.Catalog.Get(calculatorType)
	if err != nil {
		return nil, err
	}
	return responses.NewCalculator(config), nil
}

// EvaluateCardiovascularRisk runs the risk engine without a session. A missing
// target scenario defaults to the current one.
func (uc *calculatorUsecase) EvaluateCardiovascularRisk(ctx context.Context, request *requests.CardiovascularRisk) (*responses.CardiovascularRisk, error) {
	sex := riskengine.SexFemale
	if request.Gender == string(models.GenderMale) {
		sex = riskengine.SexMale
	}

	current := riskengine.Profile{
		Sex:        sex,
		Age:        request.Age,
		Smoker:     request.Current.Smoker,
		SystolicBP: request.Current.SystolicBP,
		LDL:        request.Current.LDL,
	}
	target := current
	if request.Target != nil {
		target.Smoker = request.Target.Smoker
		target.SystolicBP = request.Target.SystolicBP
		target.LDL = request.Target.LDL
	}

	assessment, err := riskengine.Evaluate(current, target)
	if err != nil {
		return nil, exceptions.ErrScoring(err)
	}

	uc.Log.Debug("calculatorUsecase.EvaluateCardiovascularRisk evaluated",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.Float64(constvars.LoggingScoreKey, assessment.CurrentRisk),
		zap.String(constvars.LoggingRiskLevelKey, string(assessment.RiskGroup)),
	)

	return &responses.CardiovascularRisk{
		Assessment: *assessment,
		RiskLevel:  string(assessment.RiskGroup),
	}, nil
}
