package scoring

import "calculator-service/internal/app/models"

// AUDITFields are the ten AUDIT items. Items 1-8 score 0-4, items 9 and 10
// score 0, 2 or 4.
var AUDITFields = QuestionIDs("q", 10)

const auditDependenceThreshold = 8

var auditBands = bandTable{
	{
		Min:            0,
		RiskLevel:      models.RiskLevelLow,
		Interpretation: "Low-risk alcohol consumption.",
		Recommendations: []string{
			"No intervention needed beyond general information about alcohol.",
		},
	},
	{
		Min:            auditDependenceThreshold,
		RiskLevel:      models.RiskLevelMedium,
		Interpretation: "Hazardous drinking. The score signals a risk of alcohol dependence.",
		Recommendations: []string{
			"Give brief advice on reducing alcohol intake.",
			"Consider a follow-up consultation.",
		},
	},
	{
		Min:            16,
		RiskLevel:      models.RiskLevelHigh,
		Interpretation: "Harmful drinking.",
		Recommendations: []string{
			"Offer brief counselling and continued monitoring.",
			"Assess for alcohol related harm.",
		},
	},
	{
		Min:            20,
		RiskLevel:      models.RiskLevelVeryHigh,
		Interpretation: "Possible alcohol dependence.",
		Recommendations: []string{
			"Refer for diagnostic evaluation and treatment of alcohol dependence.",
		},
	},
}

func ScoreAUDIT(answers models.CalculatorData, _ models.PatientData) (*models.CalculationResult, error) {
	score := answers.Sum(AUDITFields...)
	return auditBands.result(score, map[string]interface{}{
		"max_score":         40,
		"dependence_signal": score >= auditDependenceThreshold,
	}), nil
}
