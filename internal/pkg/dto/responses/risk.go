package responses

import "calculator-service/internal/app/services/core/riskengine"

type CardiovascularRisk struct {
	riskengine.Assessment
	RiskLevel string `json:"risk_level"`
}
