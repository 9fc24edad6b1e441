package riskengine

type RiskGroup string

const (
	RiskGroupLow      RiskGroup = "low"
	RiskGroupHigh     RiskGroup = "high"
	RiskGroupVeryHigh RiskGroup = "very_high"
)

// AgeTierThresholds are the percentage cut points of one age tier. Risk below
// High is low, risk from High up to VeryHigh is high, and anything at or above
// VeryHigh is very high.
type AgeTierThresholds struct {
	MinAge   int     `json:"min_age"`
	MaxAge   int     `json:"max_age"`
	High     float64 `json:"high"`
	VeryHigh float64 `json:"very_high"`
}

var ageTiers = []AgeTierThresholds{
	{MinAge: 0, MaxAge: 49, High: 2.5, VeryHigh: 7.5},
	{MinAge: 50, MaxAge: 69, High: 5, VeryHigh: 10},
	{MinAge: 70, MaxAge: 200, High: 7.5, VeryHigh: 15},
}

// ThresholdsForAge returns the cut points of the tier containing age.
func ThresholdsForAge(age int) AgeTierThresholds {
	for _, tier := range ageTiers {
		if age <= tier.MaxAge {
			return tier
		}
	}
	return ageTiers[len(ageTiers)-1]
}

// Classify puts a percentage risk into a risk group using the cut points of
// the tier that contains the current age.
func Classify(age int, risk float64) (RiskGroup, AgeTierThresholds) {
	tier := ThresholdsForAge(age)
	switch {
	case risk >= tier.VeryHigh:
		return RiskGroupVeryHigh, tier
	case risk >= tier.High:
		return RiskGroupHigh, tier
	default:
		return RiskGroupLow, tier
	}
}
