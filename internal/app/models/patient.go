package models

// Gender is nullable on PatientData until the user picks one.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

func GenderPtr(g Gender) *Gender {
	return &g
}

type PatientData struct {
	Name   string  `json:"name" yaml:"name"`
	Age    int     `json:"age" yaml:"age" validate:"gte=0"`
	Gender *Gender `json:"gender" yaml:"gender"`
}

// Clone returns a copy that does not share the gender pointer.
func (p PatientData) Clone() PatientData {
	clone := p
	if p.Gender != nil {
		gender := *p.Gender
		clone.Gender = &gender
	}
	return clone
}
