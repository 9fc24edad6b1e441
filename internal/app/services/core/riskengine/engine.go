// Package riskengine estimates 10-year fatal cardiovascular risk from a fixed
// lookup table and derives risk groups, risk reduction and factor attribution.
package riskengine

import (
	"errors"
	"fmt"
)

type Sex int

const (
	SexFemale Sex = iota
	SexMale
)

const (
	sexCount     = 2
	ageBandCount = 10
	bpBandCount  = 4
	ldlBandCount = 4
)

const (
	firstAgeBandStart = 40
	ageBandWidth      = 5
)

var (
	bpBandLowerBounds  = [bpBandCount]float64{100, 120, 140, 160}
	ldlBandLowerBounds = [ldlBandCount]float64{2.2, 3.2, 4.2, 5.2}
)

var ErrUnknownSex = errors.New("riskengine: unknown sex")

// Profile is the complete input of one table lookup.
type Profile struct {
	Sex        Sex
	Age        int
	Smoker     bool
	SystolicBP float64
	LDL        float64
}

// Bands is the table cell a profile resolves to.
type Bands struct {
	Age int
	BP  int
	LDL int
}

// AgeBand returns the index of the 5-year band containing age. Ages outside
// the table are clamped to the first or last band.
func AgeBand(age int) int {
	if age < firstAgeBandStart {
		return 0
	}
	band := (age - firstAgeBandStart) / ageBandWidth
	if band >= ageBandCount {
		return ageBandCount - 1
	}
	return band
}

// BPBand returns the systolic blood pressure band, clamped to the table.
func BPBand(systolic float64) int {
	return clampedBand(systolic, bpBandLowerBounds[:])
}

// LDLBand returns the LDL cholesterol band, clamped to the table.
func LDLBand(ldl float64) int {
	return clampedBand(ldl, ldlBandLowerBounds[:])
}

func clampedBand(value float64, lowerBounds []float64) int {
	band := 0
	for i, lower := range lowerBounds {
		if value >= lower {
			band = i
		}
	}
	return band
}

// Resolve maps a profile to its table cell.
func (p Profile) Resolve() Bands {
	return Bands{
		Age: AgeBand(p.Age),
		BP:  BPBand(p.SystolicBP),
		LDL: LDLBand(p.LDL),
	}
}

// Estimate returns the 10-year fatal cardiovascular risk in percent.
func Estimate(p Profile) (float64, error) {
	if p.Sex != SexFemale && p.Sex != SexMale {
		return 0, fmt.Errorf("%w: %d", ErrUnknownSex, p.Sex)
	}

	smoking := 0
	if p.Smoker {
		smoking = 1
	}
	bands := p.Resolve()
	return riskTable[p.Sex][smoking][bands.Age][bands.BP][bands.LDL], nil
}
