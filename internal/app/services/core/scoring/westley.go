package scoring

import "calculator-service/internal/app/models"

const (
	WestleyConsciousnessField = "consciousness"
	WestleyCyanosisField      = "cyanosis"
	WestleyStridorField       = "stridor"
	WestleyAirEntryField      = "air_entry"
	WestleyRetractionsField   = "retractions"
)

var WestleyCroupFields = []string{
	WestleyConsciousnessField,
	WestleyCyanosisField,
	WestleyStridorField,
	WestleyAirEntryField,
	WestleyRetractionsField,
}

var westleyBands = bandTable{
	{
		Min:            0,
		RiskLevel:      models.RiskLevelMild,
		Interpretation: "Mild croup.",
		Recommendations: []string{
			"Single dose of oral dexamethasone; home care is usually possible.",
		},
	},
	{
		Min:            3,
		RiskLevel:      models.RiskLevelModerate,
		Interpretation: "Moderate croup.",
		Recommendations: []string{
			"Oral dexamethasone and observation.",
			"Consider nebulised adrenaline.",
		},
	},
	{
		Min:            8,
		RiskLevel:      models.RiskLevelSevere,
		Interpretation: "Severe croup.",
		Recommendations: []string{
			"Nebulised adrenaline and corticosteroid; admit for observation.",
		},
	},
	{
		Min:            12,
		RiskLevel:      models.RiskLevelVeryHigh,
		Interpretation: "Impending respiratory failure.",
		Recommendations: []string{
			"Immediate escalation to paediatric intensive care.",
		},
	},
}

func ScoreWestleyCroup(answers models.CalculatorData, _ models.PatientData) (*models.CalculationResult, error) {
	score := answers.Sum(WestleyCroupFields...)
	return westleyBands.result(score, map[string]interface{}{
		"max_score": 17,
	}), nil
}
