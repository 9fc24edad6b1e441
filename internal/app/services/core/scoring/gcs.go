package scoring

import (
	"calculator-service/internal/app/models"
	"fmt"
)

const (
	GCSEyeField    = "eye"
	GCSVerbalField = "verbal"
	GCSMotorField  = "motor"
)

var GCSFields = []string{GCSEyeField, GCSVerbalField, GCSMotorField}

const gcsAirwayThreshold = 8

// Lower scores are worse, so the severe band comes first.
var gcsBands = bandTable{
	{
		Min:            0,
		RiskLevel:      models.RiskLevelSevere,
		Interpretation: "Severe brain injury.",
		Recommendations: []string{
			"Secure the airway and consider intubation.",
			"Urgent neurosurgical assessment.",
		},
	},
	{
		Min:            9,
		RiskLevel:      models.RiskLevelModerate,
		Interpretation: "Moderate brain injury.",
		Recommendations: []string{
			"CT of the head and close neurological observation.",
		},
	},
	{
		Min:            13,
		RiskLevel:      models.RiskLevelMild,
		Interpretation: "Mild brain injury.",
		Recommendations: []string{
			"Neurological observation according to local guidelines.",
		},
	},
}

func ScoreGCS(answers models.CalculatorData, _ models.PatientData) (*models.CalculationResult, error) {
	eye := answers.Value(GCSEyeField)
	verbal := answers.Value(GCSVerbalField)
	motor := answers.Value(GCSMotorField)
	score := eye + verbal + motor

	return gcsBands.result(score, map[string]interface{}{
		"min_score":         3,
		"max_score":         15,
		"components":        fmt.Sprintf("E%gV%gM%g", eye, verbal, motor),
		"airway_protection": score <= gcsAirwayThreshold,
	}), nil
}
