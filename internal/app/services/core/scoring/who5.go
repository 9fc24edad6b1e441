package scoring

import "calculator-service/internal/app/models"

// WHO5Fields are the five WHO-5 items, each scored 0-5.
var WHO5Fields = QuestionIDs("q", 5)

const who5PercentageFactor = 4

// Bands are on the 0-100 percentage, not the raw sum.
var who5Bands = bandTable{
	{
		Min:            0,
		RiskLevel:      models.RiskLevelHigh,
		Interpretation: "Poor well-being with high risk of depression.",
		Recommendations: []string{
			"Assess for depression, for example with a diagnostic interview.",
		},
	},
	{
		Min:            36,
		RiskLevel:      models.RiskLevelMedium,
		Interpretation: "Reduced well-being with risk of stress or depression.",
		Recommendations: []string{
			"Follow up on well-being and consider further assessment.",
		},
	},
	{
		Min:            51,
		RiskLevel:      models.RiskLevelLow,
		Interpretation: "Good well-being.",
		Recommendations: []string{
			"No action needed.",
		},
	},
}

func ScoreWHO5(answers models.CalculatorData, _ models.PatientData) (*models.CalculationResult, error) {
	raw := answers.Sum(WHO5Fields...)
	percentage := raw * who5PercentageFactor
	return who5Bands.result(percentage, map[string]interface{}{
		"raw_score": raw,
		"max_score": 100,
	}), nil
}
