package riskengine

import (
	"math"
	"sort"
)

// Attribution splits the achievable risk reduction between the modifiable
// factors, in whole percent summing to 100. All zero means nothing can be
// gained by moving any single factor to its target.
type Attribution struct {
	BloodPressure int `json:"blood_pressure"`
	LDL           int `json:"ldl"`
	Smoking       int `json:"smoking"`
}

func (a Attribution) IsZero() bool {
	return a.BloodPressure == 0 && a.LDL == 0 && a.Smoking == 0
}

// Attribute moves one factor at a time from current to target and weighs it by
// the log risk it removes.
func Attribute(current, target Profile) (Attribution, error) {
	currentRisk, err := Estimate(current)
	if err != nil {
		return Attribution{}, err
	}

	onlyBP := current
	onlyBP.SystolicBP = target.SystolicBP

	onlyLDL := current
	onlyLDL.LDL = target.LDL

	onlySmoking := current
	onlySmoking.Smoker = target.Smoker

	var weights [3]float64
	for i, counterfactual := range []Profile{onlyBP, onlyLDL, onlySmoking} {
		risk, err := Estimate(counterfactual)
		if err != nil {
			return Attribution{}, err
		}
		weights[i] = logGain(currentRisk, risk)
	}

	shares, ok := normalize(weights)
	if !ok {
		return Attribution{}, nil
	}
	return Attribution{BloodPressure: shares[0], LDL: shares[1], Smoking: shares[2]}, nil
}

func logGain(current, counterfactual float64) float64 {
	if current <= 0 || counterfactual <= 0 {
		return 0
	}
	return math.Max(math.Log(current)-math.Log(counterfactual), 0)
}

// normalize scales weights to integers summing to 100 using largest
// remainders. It reports false when every weight is zero.
func normalize(weights [3]float64) ([3]int, bool) {
	var total float64
	for _, weight := range weights {
		total += weight
	}
	if total <= 0 {
		return [3]int{}, false
	}

	var shares [3]int
	remainders := make([]struct {
		index     int
		remainder float64
	}, len(weights))
	assigned := 0
	for i, weight := range weights {
		exact := weight / total * 100
		shares[i] = int(math.Floor(exact))
		assigned += shares[i]
		remainders[i].index = i
		remainders[i].remainder = exact - math.Floor(exact)
	}

	sort.SliceStable(remainders, func(a, b int) bool {
		return remainders[a].remainder > remainders[b].remainder
	})
	for i := 0; assigned < 100; i++ {
		shares[remainders[i%len(remainders)].index]++
		assigned++
	}
	return shares, true
}
