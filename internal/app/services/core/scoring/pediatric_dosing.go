package scoring

import (
	"calculator-service/internal/app/models"
	"fmt"
	"math"
)

const (
	PediatricWeightField = "weight_kg"
	PediatricDrugField   = "drug"
)

var PediatricDosingFields = []string{PediatricWeightField, PediatricDrugField}

type drugDosing struct {
	Name          string
	MgPerKg       float64
	DosesPerDay   int
	MaxSingleMg   float64
	MaxDailyMgKg  float64
	MaxDailyMg    float64
	DosingComment string
}

// PediatricDrugs is indexed by the value of the drug field.
var PediatricDrugs = []drugDosing{
	{
		Name:          "paracetamol",
		MgPerKg:       15,
		DosesPerDay:   4,
		MaxSingleMg:   1000,
		MaxDailyMgKg:  60,
		MaxDailyMg:    4000,
		DosingComment: "Give every 6 hours.",
	},
	{
		Name:          "ibuprofen",
		MgPerKg:       10,
		DosesPerDay:   3,
		MaxSingleMg:   400,
		MaxDailyMgKg:  30,
		MaxDailyMg:    1200,
		DosingComment: "Give every 8 hours with food.",
	},
}

// ScorePediatricDosing returns the single dose in mg as the score.
func ScorePediatricDosing(answers models.CalculatorData, _ models.PatientData) (*models.CalculationResult, error) {
	index := int(answers.Value(PediatricDrugField))
	if index < 0 || index >= len(PediatricDrugs) {
		return nil, fmt.Errorf("unknown drug index %d", index)
	}
	drug := PediatricDrugs[index]
	weight := answers.Value(PediatricWeightField)

	uncapped := roundDose(weight * drug.MgPerKg)
	single := math.Min(uncapped, drug.MaxSingleMg)
	maxDaily := math.Min(roundDose(weight*drug.MaxDailyMgKg), drug.MaxDailyMg)
	capped := uncapped > drug.MaxSingleMg

	recommendations := []string{
		fmt.Sprintf("%s %g mg per dose, %d times a day. %s", drug.Name, single, drug.DosesPerDay, drug.DosingComment),
		fmt.Sprintf("Do not exceed %g mg in 24 hours.", maxDaily),
	}
	if capped {
		recommendations = append(recommendations, "The weight based dose exceeds the adult single dose and is capped.")
	}

	return &models.CalculationResult{
		Score:           single,
		Interpretation:  fmt.Sprintf("Single dose of %s for %g kg.", drug.Name, weight),
		RiskLevel:       models.RiskLevelUnknown,
		Recommendations: recommendations,
		Details: map[string]interface{}{
			"drug":          drug.Name,
			"single_dose":   single,
			"doses_per_day": drug.DosesPerDay,
			"max_daily":     maxDaily,
			"capped":        capped,
		},
	}, nil
}

// roundDose rounds to one decimal, the precision used on the dosing card.
func roundDose(mg float64) float64 {
	return math.Round(mg*10) / 10
}
