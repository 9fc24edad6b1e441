package scoring

import "calculator-service/internal/app/models"

// PUQEFields are the three PUQE items, each scored 1-5.
var PUQEFields = QuestionIDs("q", 3)

var puqeBands = bandTable{
	{
		Min:            0,
		RiskLevel:      models.RiskLevelMild,
		Interpretation: "Mild nausea and vomiting of pregnancy.",
		Recommendations: []string{
			"Dietary advice and small frequent meals.",
		},
	},
	{
		Min:            7,
		RiskLevel:      models.RiskLevelModerate,
		Interpretation: "Moderate nausea and vomiting of pregnancy.",
		Recommendations: []string{
			"Consider antiemetic treatment.",
		},
	},
	{
		Min:            12,
		RiskLevel:      models.RiskLevelSevere,
		Interpretation: "Severe nausea and vomiting of pregnancy.",
		Recommendations: []string{
			"Assess for hyperemesis gravidarum and dehydration.",
			"Consider hospital admission.",
		},
	},
}

func ScorePUQE(answers models.CalculatorData, _ models.PatientData) (*models.CalculationResult, error) {
	score := answers.Sum(PUQEFields...)
	return puqeBands.result(score, map[string]interface{}{
		"min_score": 3,
		"max_score": 15,
	}), nil
}
