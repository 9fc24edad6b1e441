package scoring

import "calculator-service/internal/app/models"

// IPSSFields are the seven symptom items, each scored 0-5.
var IPSSFields = QuestionIDs("q", 7)

// IPSSQualityOfLifeField is scored 0-6 and reported separately.
const IPSSQualityOfLifeField = "qol"

var ipssBands = bandTable{
	{
		Min:            0,
		RiskLevel:      models.RiskLevelMild,
		Interpretation: "Mildly symptomatic.",
		Recommendations: []string{
			"Watchful waiting and lifestyle advice.",
		},
	},
	{
		Min:            8,
		RiskLevel:      models.RiskLevelModerate,
		Interpretation: "Moderately symptomatic.",
		Recommendations: []string{
			"Consider medical treatment of lower urinary tract symptoms.",
		},
	},
	{
		Min:            20,
		RiskLevel:      models.RiskLevelSevere,
		Interpretation: "Severely symptomatic.",
		Recommendations: []string{
			"Consider referral to urology.",
		},
	},
}

func ScoreIPSS(answers models.CalculatorData, _ models.PatientData) (*models.CalculationResult, error) {
	score := answers.Sum(IPSSFields...)
	return ipssBands.result(score, map[string]interface{}{
		"max_score":       35,
		"quality_of_life": answers.Value(IPSSQualityOfLifeField),
	}), nil
}
