package scoring

import (
	"calculator-service/internal/app/models"
	"calculator-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answersOf(values map[string]float64) models.CalculatorData {
	data := make(models.CalculatorData, len(values))
	for key, value := range values {
		data[key] = models.Float(value)
	}
	return data
}

func uniform(fields []string, value float64) models.CalculatorData {
	data := make(models.CalculatorData, len(fields))
	for _, field := range fields {
		data[field] = models.Float(value)
	}
	return data
}

// withTotal spreads total over fields, filling each up to limit before moving on.
func withTotal(fields []string, total, limit float64) models.CalculatorData {
	data := uniform(fields, 0)
	for _, field := range fields {
		if total <= 0 {
			break
		}
		value := limit
		if total < limit {
			value = total
		}
		data[field] = models.Float(value)
		total -= value
	}
	return data
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry()

	t.Run("Every calculator type resolves", func(t *testing.T) {
		for _, calculatorType := range []models.CalculatorType{
			models.CalculatorTypeAUDIT,
			models.CalculatorTypeEPDS,
			models.CalculatorTypeGCS,
			models.CalculatorTypeIPSS,
			models.CalculatorTypePUQE,
			models.CalculatorTypeWHO5,
			models.CalculatorTypeWestleyCroup,
			models.CalculatorTypeDANPSS,
			models.CalculatorTypeCardiovascular,
			models.CalculatorTypePediatricDosing,
		} {
			strategy, err := registry.Resolve(calculatorType)
			require.NoError(t, err, calculatorType)
			assert.NotNil(t, strategy)
		}
		assert.Len(t, registry.Types(), 10)
	})

	t.Run("Unknown type is a configuration error", func(t *testing.T) {
		_, err := registry.Resolve("unknown")
		var configErr *exceptions.ConfigurationError
		require.ErrorAs(t, err, &configErr)
		assert.Equal(t, "unknown", configErr.CalculatorType)
	})
}

func TestScoreAUDIT(t *testing.T) {
	t.Run("All minimum answers score 0", func(t *testing.T) {
		result, err := ScoreAUDIT(uniform(AUDITFields, 0), models.PatientData{})
		require.NoError(t, err)
		assert.Equal(t, 0.0, result.Score)
		assert.Equal(t, models.RiskLevelLow, result.RiskLevel)
	})

	t.Run("All maximum answers score 40", func(t *testing.T) {
		result, err := ScoreAUDIT(uniform(AUDITFields, 4), models.PatientData{})
		require.NoError(t, err)
		assert.Equal(t, 40.0, result.Score)
		assert.Equal(t, models.RiskLevelVeryHigh, result.RiskLevel)
	})

	t.Run("Dependence signal starts at 8", func(t *testing.T) {
		result, err := ScoreAUDIT(withTotal(AUDITFields, 7, 4), models.PatientData{})
		require.NoError(t, err)
		assert.Equal(t, 7.0, result.Score)
		assert.Equal(t, models.RiskLevelLow, result.RiskLevel)
		assert.Equal(t, false, result.Details["dependence_signal"])

		result, err = ScoreAUDIT(withTotal(AUDITFields, 8, 4), models.PatientData{})
		require.NoError(t, err)
		assert.Equal(t, 8.0, result.Score)
		assert.Equal(t, models.RiskLevelMedium, result.RiskLevel)
		assert.Equal(t, true, result.Details["dependence_signal"])
	})

	t.Run("Unanswered fields count as zero", func(t *testing.T) {
		data := withTotal(AUDITFields, 5, 4)
		data["q10"] = nil
		delete(data, "q9")

		result, err := ScoreAUDIT(data, models.PatientData{})
		require.NoError(t, err)
		assert.Equal(t, 5.0, result.Score)
	})
}

func TestScoreWHO5(t *testing.T) {
	t.Run("Raw 9 is the risk band", func(t *testing.T) {
		result, err := ScoreWHO5(withTotal(WHO5Fields, 9, 5), models.PatientData{})
		require.NoError(t, err)
		assert.Equal(t, 36.0, result.Score)
		assert.Equal(t, 9.0, result.Details["raw_score"])
		assert.Equal(t, models.RiskLevelMedium, result.RiskLevel)
	})

	t.Run("Raw 8 is the high risk band", func(t *testing.T) {
		result, err := ScoreWHO5(withTotal(WHO5Fields, 8, 5), models.PatientData{})
		require.NoError(t, err)
		assert.Equal(t, 32.0, result.Score)
		assert.Equal(t, models.RiskLevelHigh, result.RiskLevel)
	})

	t.Run("Full marks are 100", func(t *testing.T) {
		result, err := ScoreWHO5(uniform(WHO5Fields, 5), models.PatientData{})
		require.NoError(t, err)
		assert.Equal(t, 100.0, result.Score)
		assert.Equal(t, models.RiskLevelLow, result.RiskLevel)
	})
}

func TestScoreEPDS(t *testing.T) {
	t.Run("Bands", func(t *testing.T) {
		testCases := []struct {
			total    float64
			expected models.RiskLevel
		}{
			{total: 0, expected: models.RiskLevelLow},
			{total: 9, expected: models.RiskLevelLow},
			{total: 10, expected: models.RiskLevelModerate},
			{total: 12, expected: models.RiskLevelModerate},
			{total: 13, expected: models.RiskLevelHigh},
			{total: 27, expected: models.RiskLevelHigh},
		}
		for _, tc := range testCases {
			result, err := ScoreEPDS(withTotal(EPDSFields, tc.total, 3), models.PatientData{})
			require.NoError(t, err)
			assert.Equal(t, tc.total, result.Score)
			assert.Equal(t, tc.expected, result.RiskLevel, "total %v", tc.total)
			assert.Equal(t, false, result.Details["urgent_referral"])
		}
	})

	t.Run("Self-harm answer requires urgent referral", func(t *testing.T) {
		data := uniform(EPDSFields, 0)
		data["q10"] = models.Float(1)

		result, err := ScoreEPDS(data, models.PatientData{})
		require.NoError(t, err)
		assert.Equal(t, models.RiskLevelLow, result.RiskLevel)
		assert.Equal(t, true, result.Details["urgent_referral"])
		assert.Contains(t, result.Recommendations[0], "self-harm")
	})
}

func TestSimpleBands(t *testing.T) {
	testCases := []struct {
		name     string
		score    func(models.CalculatorData, models.PatientData) (*models.CalculationResult, error)
		answers  models.CalculatorData
		expected float64
		level    models.RiskLevel
	}{
		{name: "IPSS mild", score: ScoreIPSS, answers: withTotal(IPSSFields, 7, 5), expected: 7, level: models.RiskLevelMild},
		{name: "IPSS moderate", score: ScoreIPSS, answers: withTotal(IPSSFields, 8, 5), expected: 8, level: models.RiskLevelModerate},
		{name: "IPSS severe", score: ScoreIPSS, answers: withTotal(IPSSFields, 20, 5), expected: 20, level: models.RiskLevelSevere},
		{name: "PUQE mild", score: ScorePUQE, answers: uniform(PUQEFields, 2), expected: 6, level: models.RiskLevelMild},
		{name: "PUQE moderate", score: ScorePUQE, answers: withTotal(PUQEFields, 7, 5), expected: 7, level: models.RiskLevelModerate},
		{name: "PUQE severe", score: ScorePUQE, answers: uniform(PUQEFields, 5), expected: 15, level: models.RiskLevelSevere},
		{name: "GCS severe", score: ScoreGCS, answers: answersOf(map[string]float64{"eye": 2, "verbal": 2, "motor": 4}), expected: 8, level: models.RiskLevelSevere},
		{name: "GCS moderate", score: ScoreGCS, answers: answersOf(map[string]float64{"eye": 3, "verbal": 2, "motor": 4}), expected: 9, level: models.RiskLevelModerate},
		{name: "GCS mild", score: ScoreGCS, answers: answersOf(map[string]float64{"eye": 4, "verbal": 5, "motor": 6}), expected: 15, level: models.RiskLevelMild},
		{name: "Westley mild", score: ScoreWestleyCroup, answers: answersOf(map[string]float64{"stridor": 1, "retractions": 1}), expected: 2, level: models.RiskLevelMild},
		{name: "Westley moderate", score: ScoreWestleyCroup, answers: answersOf(map[string]float64{"stridor": 2, "retractions": 1}), expected: 3, level: models.RiskLevelModerate},
		{name: "Westley severe", score: ScoreWestleyCroup, answers: answersOf(map[string]float64{"cyanosis": 4, "stridor": 2, "air_entry": 2}), expected: 8, level: models.RiskLevelSevere},
		{name: "Westley failure", score: ScoreWestleyCroup, answers: answersOf(map[string]float64{"consciousness": 5, "cyanosis": 5, "stridor": 2}), expected: 12, level: models.RiskLevelVeryHigh},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := tc.score(tc.answers, models.PatientData{})
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result.Score)
			assert.Equal(t, tc.level, result.RiskLevel)
			assert.NotEmpty(t, result.Interpretation)
			assert.NotEmpty(t, result.Recommendations)
		})
	}
}

func TestScoreIPSSQualityOfLife(t *testing.T) {
	data := uniform(IPSSFields, 1)
	data[IPSSQualityOfLifeField] = models.Float(6)

	result, err := ScoreIPSS(data, models.PatientData{})
	require.NoError(t, err)
	assert.Equal(t, 7.0, result.Score)
	assert.Equal(t, 6.0, result.Details["quality_of_life"])
}

func TestScoreDANPSS(t *testing.T) {
	t.Run("Products are summed without the unanswered sexual sub-scale", func(t *testing.T) {
		data := uniform(DANPSSRequiredFields, 0)
		data[DANPSSSymptomField(1)] = models.Float(2)
		data[DANPSSBotherField(1)] = models.Float(3)
		data[DANPSSSymptomField(5)] = models.Float(1)
		data[DANPSSBotherField(5)] = models.Float(2)

		result, err := ScoreDANPSS(data, models.PatientData{})
		require.NoError(t, err)
		assert.Equal(t, 8.0, result.Score)
		assert.Equal(t, 6.0, result.Details["voiding_score"])
		assert.Equal(t, 2.0, result.Details["storage_score"])
		assert.Equal(t, string(SubscaleNotStarted), result.Details["sexual_status"])
		assert.Equal(t, models.RiskLevelModerate, result.RiskLevel)
	})

	t.Run("Partial sexual sub-scale stays out of the total", func(t *testing.T) {
		data := uniform(DANPSSRequiredFields, 0)
		data[DANPSSSymptomField(11)] = models.Float(3)
		data[DANPSSBotherField(11)] = models.Float(3)

		result, err := ScoreDANPSS(data, models.PatientData{})
		require.NoError(t, err)
		assert.Equal(t, 0.0, result.Score)
		assert.Equal(t, 9.0, result.Details["sexual_score"])
		assert.Equal(t, string(SubscalePartial), result.Details["sexual_status"])
		assert.NotEqual(t, danpssSexualMessages[SubscaleNotStarted], result.Details["sexual_status_message"])
	})

	t.Run("Complete sexual sub-scale joins the total", func(t *testing.T) {
		data := uniform(DANPSSFields, 0)
		data[DANPSSSymptomField(11)] = models.Float(3)
		data[DANPSSBotherField(11)] = models.Float(3)

		result, err := ScoreDANPSS(data, models.PatientData{})
		require.NoError(t, err)
		assert.Equal(t, 9.0, result.Score)
		assert.Equal(t, string(SubscaleComplete), result.Details["sexual_status"])
	})
}

func TestScoreCardiovascular(t *testing.T) {
	answers := answersOf(map[string]float64{
		CardiovascularSmokingField:       1,
		CardiovascularSystolicBPField:    165,
		CardiovascularLDLField:           5.5,
		CardiovascularTargetBPField:      120,
		CardiovascularTargetLDLField:     2.6,
		CardiovascularTargetSmokingField: 0,
	})

	t.Run("Scores the current risk and its reduction", func(t *testing.T) {
		patient := models.PatientData{Age: 62, Gender: models.GenderPtr(models.GenderMale)}

		result, err := ScoreCardiovascular(answers, patient)
		require.NoError(t, err)
		assert.Greater(t, result.Score, result.Details["target_risk"].(float64))
		assert.Greater(t, result.Details["arr_percentage_points"].(float64), 0.0)
		assert.Greater(t, result.Details["nnt"].(float64), 0.0)
		assert.Contains(t, []models.RiskLevel{models.RiskLevelHigh, models.RiskLevelVeryHigh}, result.RiskLevel)
	})

	t.Run("Same current and target has no reduction", func(t *testing.T) {
		same := answersOf(map[string]float64{
			CardiovascularSmokingField:       0,
			CardiovascularSystolicBPField:    130,
			CardiovascularLDLField:           3,
			CardiovascularTargetBPField:      130,
			CardiovascularTargetLDLField:     3,
			CardiovascularTargetSmokingField: 0,
		})
		patient := models.PatientData{Age: 55, Gender: models.GenderPtr(models.GenderFemale)}

		result, err := ScoreCardiovascular(same, patient)
		require.NoError(t, err)
		assert.Equal(t, 0.0, result.Details["arr_percentage_points"])
		assert.Equal(t, 0.0, result.Details["rrr_percent"])
		assert.Equal(t, 0.0, result.Details["nnt"])
	})

	t.Run("Gender outside the table is rejected", func(t *testing.T) {
		_, err := ScoreCardiovascular(answers, models.PatientData{Age: 60, Gender: models.GenderPtr(models.GenderOther)})
		assert.Error(t, err)

		_, err = ScoreCardiovascular(answers, models.PatientData{Age: 60})
		assert.Error(t, err)
	})
}

func TestScorePediatricDosing(t *testing.T) {
	t.Run("Paracetamol by weight", func(t *testing.T) {
		result, err := ScorePediatricDosing(answersOf(map[string]float64{PediatricWeightField: 20, PediatricDrugField: 0}), models.PatientData{})
		require.NoError(t, err)
		assert.Equal(t, 300.0, result.Score)
		assert.Equal(t, 1200.0, result.Details["max_daily"])
		assert.Equal(t, false, result.Details["capped"])
		assert.Equal(t, models.RiskLevelUnknown, result.RiskLevel)
	})

	t.Run("Dose equal to the adult dose is not capped", func(t *testing.T) {
		result, err := ScorePediatricDosing(answersOf(map[string]float64{PediatricWeightField: 40, PediatricDrugField: 1}), models.PatientData{})
		require.NoError(t, err)
		assert.Equal(t, 400.0, result.Score)
		assert.Equal(t, false, result.Details["capped"])
	})

	t.Run("Ibuprofen is capped at the adult dose", func(t *testing.T) {
		result, err := ScorePediatricDosing(answersOf(map[string]float64{PediatricWeightField: 60, PediatricDrugField: 1}), models.PatientData{})
		require.NoError(t, err)
		assert.Equal(t, 400.0, result.Score)
		assert.Equal(t, 1200.0, result.Details["max_daily"])
		assert.Equal(t, true, result.Details["capped"])
	})

	t.Run("Unknown drug", func(t *testing.T) {
		_, err := ScorePediatricDosing(answersOf(map[string]float64{PediatricWeightField: 10, PediatricDrugField: 5}), models.PatientData{})
		assert.Error(t, err)
	})
}
