package requests

type CardiovascularRisk struct {
	Gender  string       `json:"gender" validate:"required,oneof=male female"`
	Age     int          `json:"age" validate:"required,gte=18,lte=120"`
	Current RiskFactors  `json:"current"`
	Target  *RiskFactors `json:"target,omitempty"`
}

type RiskFactors struct {
	Smoker     bool    `json:"smoker"`
	SystolicBP float64 `json:"systolic_bp" validate:"required,gte=60,lte=260"`
	LDL        float64 `json:"ldl" validate:"required,gt=0,lte=15"`
}
