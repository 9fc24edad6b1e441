package constvars

const (
	URLParamCalculatorType = "calculator_type"
	URLParamSessionID      = "session_id"
)
