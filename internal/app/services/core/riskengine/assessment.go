package riskengine

// Assessment bundles everything the cardiovascular calculator shows for one
// pair of current and target inputs. Risks and ARRPercentagePoints are in
// percent; Reduction keeps the fractions NNT is derived from.
type Assessment struct {
	CurrentRisk         float64           `json:"current_risk"`
	TargetRisk          float64           `json:"target_risk"`
	RiskGroup           RiskGroup         `json:"risk_group"`
	Thresholds          AgeTierThresholds `json:"thresholds"`
	Bands               Bands             `json:"bands"`
	ARRPercentagePoints float64           `json:"arr_percentage_points"`
	RRRPercent          float64           `json:"rrr_percent"`
	Reduction           Reduction         `json:"reduction"`
	Attribution         Attribution       `json:"attribution"`
}

// Evaluate recomputes the whole assessment from scratch. The target profile
// shares sex and age with current; only blood pressure, LDL and smoking are
// taken from target.
func Evaluate(current, target Profile) (*Assessment, error) {
	target.Sex = current.Sex
	target.Age = current.Age

	currentRisk, err := Estimate(current)
	if err != nil {
		return nil, err
	}
	targetRisk, err := Estimate(target)
	if err != nil {
		return nil, err
	}
	attribution, err := Attribute(current, target)
	if err != nil {
		return nil, err
	}

	group, thresholds := Classify(current.Age, currentRisk)
	reduction := ComputeReduction(currentRisk/100, targetRisk/100)
	return &Assessment{
		CurrentRisk:         currentRisk,
		TargetRisk:          targetRisk,
		RiskGroup:           group,
		Thresholds:          thresholds,
		Bands:               current.Resolve(),
		ARRPercentagePoints: reduction.ARRPercentagePoints(),
		RRRPercent:          reduction.RRRPercent(),
		Reduction:           reduction,
		Attribution:         attribution,
	}, nil
}
