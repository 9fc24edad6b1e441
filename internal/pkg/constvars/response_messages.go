package constvars

const (
	ResponseUnknown = "unknown"

	GetCalculatorsSuccessMessage      = "get calculators successfully"
	GetCalculatorSuccessMessage       = "get calculator successfully"
	CreateSessionSuccessMessage       = "calculator session created successfully"
	GetSessionSuccessMessage          = "get calculator session successfully"
	SetFieldValueSuccessMessage       = "field value updated successfully"
	SubmitCalculationSuccessMessage   = "calculation completed successfully"
	SubmitCalculationDegradedMessage  = "calculation completed, but the result could not be logged"
	SubmitCalculationPendingMessage   = "calculation completed, logging of the same result is still in progress"
	ResetCalculatorSuccessMessage     = "calculator reset successfully"
	DeleteSessionSuccessMessage       = "calculator session deleted successfully"
	EvaluateCardiovascularRiskMessage = "cardiovascular risk evaluated successfully"
)
