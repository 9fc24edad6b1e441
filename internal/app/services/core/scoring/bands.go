package scoring

import (
	"calculator-service/internal/app/models"
	"fmt"
)

// band is one row of a calculator's threshold table. A score belongs to the
// last band whose Min it reaches, so lower bounds are inclusive.
type band struct {
	Min             float64
	RiskLevel       models.RiskLevel
	Interpretation  string
	Recommendations []string
}

type bandTable []band

func (t bandTable) classify(score float64) band {
	selected := t[0]
	for _, b := range t {
		if score >= b.Min {
			selected = b
		}
	}
	return selected
}

func (t bandTable) result(score float64, details map[string]interface{}) *models.CalculationResult {
	b := t.classify(score)
	return &models.CalculationResult{
		Score:           score,
		Interpretation:  b.Interpretation,
		RiskLevel:       b.RiskLevel,
		Recommendations: append([]string(nil), b.Recommendations...),
		Details:         details,
	}
}

// QuestionIDs returns prefix1..prefixN.
func QuestionIDs(prefix string, count int) []string {
	ids := make([]string, count)
	for i := range ids {
		ids[i] = fmt.Sprintf("%s%d", prefix, i+1)
	}
	return ids
}
