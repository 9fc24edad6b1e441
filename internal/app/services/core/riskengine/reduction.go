package riskengine

// Reduction holds the risk communication metrics between a current and a
// target scenario. Risks are fractions in [0, 1].
type Reduction struct {
	ARR float64 `json:"arr_fraction"`
	RRR float64 `json:"rrr_fraction"`
	NNT float64 `json:"nnt"`
}

// ARRPercentagePoints is ARR on the same scale as the table risks.
func (r Reduction) ARRPercentagePoints() float64 {
	return r.ARR * 100
}

// RRRPercent is RRR as a percentage of the current risk.
func (r Reduction) RRRPercent() float64 {
	return r.RRR * 100
}

// ComputeReduction derives ARR, RRR and NNT. RRR is 0 when the current risk
// is 0 and NNT is 0 when there is no absolute reduction; downstream display
// code relies on the numeric zero.
func ComputeReduction(current, target float64) Reduction {
	arr := current - target

	var rrr float64
	if current != 0 {
		rrr = arr / current
	}

	var nnt float64
	if arr != 0 {
		nnt = 1 / arr
	}

	return Reduction{ARR: arr, RRR: rrr, NNT: nnt}
}
