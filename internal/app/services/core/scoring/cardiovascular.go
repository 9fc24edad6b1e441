package scoring

import (
	"calculator-service/internal/app/models"
	"calculator-service/internal/app/services/core/riskengine"
	"fmt"
)

const (
	CardiovascularSmokingField       = "smoking"
	CardiovascularSystolicBPField    = "systolic_bp"
	CardiovascularLDLField           = "ldl"
	CardiovascularTargetBPField      = "target_systolic_bp"
	CardiovascularTargetLDLField     = "target_ldl"
	CardiovascularTargetSmokingField = "target_smoking"
)

var CardiovascularFields = []string{
	CardiovascularSmokingField,
	CardiovascularSystolicBPField,
	CardiovascularLDLField,
	CardiovascularTargetBPField,
	CardiovascularTargetLDLField,
	CardiovascularTargetSmokingField,
}

var cardiovascularRiskLevels = map[riskengine.RiskGroup]models.RiskLevel{
	riskengine.RiskGroupLow:      models.RiskLevelLow,
	riskengine.RiskGroupHigh:     models.RiskLevelHigh,
	riskengine.RiskGroupVeryHigh: models.RiskLevelVeryHigh,
}

var cardiovascularInterpretations = map[riskengine.RiskGroup]string{
	riskengine.RiskGroupLow:      "Low 10-year risk of fatal cardiovascular disease for this age group.",
	riskengine.RiskGroupHigh:     "High 10-year risk of fatal cardiovascular disease for this age group.",
	riskengine.RiskGroupVeryHigh: "Very high 10-year risk of fatal cardiovascular disease for this age group.",
}

var cardiovascularRecommendations = map[riskengine.RiskGroup][]string{
	riskengine.RiskGroupLow: {
		"Lifestyle advice.",
	},
	riskengine.RiskGroupHigh: {
		"Lifestyle intervention and consider blood pressure and lipid lowering treatment.",
	},
	riskengine.RiskGroupVeryHigh: {
		"Blood pressure and lipid lowering treatment is recommended.",
		"Smoking cessation support where relevant.",
	},
}

// SexFromGender maps a patient gender onto the two sexes of the risk table.
func SexFromGender(gender *models.Gender) (riskengine.Sex, error) {
	if gender == nil {
		return 0, fmt.Errorf("%w: gender not set", riskengine.ErrUnknownSex)
	}
	switch *gender {
	case models.GenderMale:
		return riskengine.SexMale, nil
	case models.GenderFemale:
		return riskengine.SexFemale, nil
	}
	return 0, fmt.Errorf("%w: %s", riskengine.ErrUnknownSex, *gender)
}

// CardiovascularProfiles builds the current and target risk engine inputs.
func CardiovascularProfiles(answers models.CalculatorData, patient models.PatientData) (current, target riskengine.Profile, err error) {
	sex, err := SexFromGender(patient.Gender)
	if err != nil {
		return current, target, err
	}

	current = riskengine.Profile{
		Sex:        sex,
		Age:        patient.Age,
		Smoker:     answers.Value(CardiovascularSmokingField) > 0,
		SystolicBP: answers.Value(CardiovascularSystolicBPField),
		LDL:        answers.Value(CardiovascularLDLField),
	}
	target = riskengine.Profile{
		Sex:        sex,
		Age:        patient.Age,
		Smoker:     answers.Value(CardiovascularTargetSmokingField) > 0,
		SystolicBP: answers.Value(CardiovascularTargetBPField),
		LDL:        answers.Value(CardiovascularTargetLDLField),
	}
	return current, target, nil
}

func ScoreCardiovascular(answers models.CalculatorData, patient models.PatientData) (*models.CalculationResult, error) {
	current, target, err := CardiovascularProfiles(answers, patient)
	if err != nil {
		return nil, err
	}

	assessment, err := riskengine.Evaluate(current, target)
	if err != nil {
		return nil, err
	}

	return &models.CalculationResult{
		Score:           assessment.CurrentRisk,
		Interpretation:  cardiovascularInterpretations[assessment.RiskGroup],
		RiskLevel:       cardiovascularRiskLevels[assessment.RiskGroup],
		Recommendations: append([]string(nil), cardiovascularRecommendations[assessment.RiskGroup]...),
		Details: map[string]interface{}{
			"target_risk":           assessment.TargetRisk,
			"risk_group":            string(assessment.RiskGroup),
			"thresholds":            assessment.Thresholds,
			"bands":                 assessment.Bands,
			"arr_percentage_points": assessment.ARRPercentagePoints,
			"rrr_percent":           assessment.RRRPercent,
			"nnt":                   assessment.Reduction.NNT,
			"attribution":           assessment.Attribution,
		},
	}, nil
}
