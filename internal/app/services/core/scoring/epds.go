package scoring

import "calculator-service/internal/app/models"

// EPDSFields are the ten EPDS items, each scored 0-3. Item 10 asks about
// thoughts of self-harm.
var EPDSFields = QuestionIDs("q", 10)

const epdsSelfHarmField = "q10"

var epdsBands = bandTable{
	{
		Min:            0,
		RiskLevel:      models.RiskLevelLow,
		Interpretation: "Depression is unlikely.",
		Recommendations: []string{
			"Repeat the screening if symptoms appear later in the postnatal period.",
		},
	},
	{
		Min:            10,
		RiskLevel:      models.RiskLevelModerate,
		Interpretation: "Possible depression.",
		Recommendations: []string{
			"Repeat the EPDS in 2-4 weeks.",
			"Consider a clinical assessment.",
		},
	},
	{
		Min:            13,
		RiskLevel:      models.RiskLevelHigh,
		Interpretation: "Probable depression.",
		Recommendations: []string{
			"Arrange a clinical assessment for postnatal depression.",
		},
	},
}

func ScoreEPDS(answers models.CalculatorData, _ models.PatientData) (*models.CalculationResult, error) {
	score := answers.Sum(EPDSFields...)
	result := epdsBands.result(score, map[string]interface{}{
		"max_score": 30,
	})

	urgent := answers.Value(epdsSelfHarmField) > 0
	result.Details["urgent_referral"] = urgent
	if urgent {
		result.Recommendations = append([]string{
			"Thoughts of self-harm reported: assess suicide risk the same day.",
		}, result.Recommendations...)
	}
	return result, nil
}
