package models

import "time"

type RiskLevel string

const (
	RiskLevelMinimal  RiskLevel = "minimal"
	RiskLevelLow      RiskLevel = "low"
	RiskLevelMild     RiskLevel = "mild"
	RiskLevelModerate RiskLevel = "moderate"
	RiskLevelMedium   RiskLevel = "medium"
	RiskLevelSevere   RiskLevel = "severe"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelVeryHigh RiskLevel = "very_high"
	RiskLevelUnknown  RiskLevel = "unknown"
)

// CalculationResult is produced only by a successful scoring strategy run.
type CalculationResult struct {
	Score           float64                `json:"score" yaml:"score"`
	Interpretation  string                 `json:"interpretation" yaml:"interpretation"`
	RiskLevel       RiskLevel              `json:"risk_level" yaml:"risk_level"`
	Recommendations []string               `json:"recommendations" yaml:"recommendations"`
	Details         map[string]interface{} `json:"details,omitempty" yaml:"details,omitempty"`
	CompletedAt     time.Time              `json:"completed_at" yaml:"completed_at"`
}

// Clone copies the result so callers cannot mutate stored state.
func (r *CalculationResult) Clone() *CalculationResult {
	if r == nil {
		return nil
	}
	clone := *r
	clone.Recommendations = append([]string(nil), r.Recommendations...)
	if r.Details != nil {
		clone.Details = make(map[string]interface{}, len(r.Details))
		for key, value := range r.Details {
			clone.Details[key] = value
		}
	}
	return &clone
}
