package scoring

import (
	"calculator-service/internal/app/models"
	"fmt"
)

const danpssQuestionCount = 12

// DANPSS sub-scales by question number.
var (
	danpssVoidingQuestions = []int{1, 2, 3, 4}
	danpssStorageQuestions = []int{5, 6, 7, 8, 9, 10}
	danpssSexualQuestions  = []int{11, 12}
)

// DANPSSSymptomField and DANPSSBotherField name the paired answers of question n.
func DANPSSSymptomField(n int) string { return fmt.Sprintf("q%d_symptom", n) }
func DANPSSBotherField(n int) string { return fmt.Sprintf("q%d_bother", n) }

// DANPSSFields lists every symptom and bother field in question order.
var DANPSSFields = danpssFields(1, danpssQuestionCount)

// DANPSSRequiredFields excludes the optional sexual-function sub-scale.
var DANPSSRequiredFields = danpssFields(1, danpssSexualQuestions[0]-1)

func danpssFields(from, to int) []string {
	fields := make([]string, 0, (to-from+1)*2)
	for n := from; n <= to; n++ {
		fields = append(fields, DANPSSSymptomField(n), DANPSSBotherField(n))
	}
	return fields
}

type SubscaleStatus string

const (
	SubscaleNotStarted SubscaleStatus = "not_started"
	SubscalePartial    SubscaleStatus = "partial"
	SubscaleComplete   SubscaleStatus = "complete"
)

var danpssBands = bandTable{
	{
		Min:            0,
		RiskLevel:      models.RiskLevelMild,
		Interpretation: "Mild prostate symptoms.",
		Recommendations: []string{
			"Watchful waiting and lifestyle advice.",
		},
	},
	{
		Min:            8,
		RiskLevel:      models.RiskLevelModerate,
		Interpretation: "Moderate prostate symptoms.",
		Recommendations: []string{
			"Consider medical treatment.",
		},
	},
	{
		Min:            20,
		RiskLevel:      models.RiskLevelSevere,
		Interpretation: "Severe prostate symptoms.",
		Recommendations: []string{
			"Consider referral to urology.",
		},
	},
}

var danpssSexualMessages = map[SubscaleStatus]string{
	SubscaleNotStarted: "The sexual function questions were not answered and are not part of the total score.",
	SubscalePartial:    "The sexual function questions are only partially answered and are not part of the total score.",
	SubscaleComplete:   "The sexual function questions are included in the total score.",
}

func danpssSubscale(answers models.CalculatorData, questions []int) (total float64, status SubscaleStatus) {
	answered := 0
	for _, n := range questions {
		symptom, bother := DANPSSSymptomField(n), DANPSSBotherField(n)
		if answers.IsAnswered(symptom) && answers.IsAnswered(bother) {
			answered++
		}
		total += answers.Value(symptom) * answers.Value(bother)
	}

	switch answered {
	case 0:
		status = SubscaleNotStarted
	case len(questions):
		status = SubscaleComplete
	default:
		status = SubscalePartial
	}
	return total, status
}

// ScoreDANPSS multiplies symptom by bother per question and sums the products.
// The sexual sub-scale joins the total only when all of it was answered.
func ScoreDANPSS(answers models.CalculatorData, _ models.PatientData) (*models.CalculationResult, error) {
	voiding, _ := danpssSubscale(answers, danpssVoidingQuestions)
	storage, _ := danpssSubscale(answers, danpssStorageQuestions)
	sexual, sexualStatus := danpssSubscale(answers, danpssSexualQuestions)

	score := voiding + storage
	if sexualStatus == SubscaleComplete {
		score += sexual
	}

	result := danpssBands.result(score, map[string]interface{}{
		"voiding_score":         voiding,
		"storage_score":         storage,
		"sexual_score":          sexual,
		"sexual_status":         string(sexualStatus),
		"sexual_status_message": danpssSexualMessages[sexualStatus],
	})
	return result, nil
}
