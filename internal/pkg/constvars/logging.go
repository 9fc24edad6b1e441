package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingOperationKey      = "operation"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingCalculatorTypeKey = "calculator_type"
	LoggingSessionIDKey      = "session_id"
	LoggingSubmissionIDKey   = "submission_id"
	LoggingGenerationKey     = "generation"
	LoggingScoreKey          = "score"
	LoggingRiskLevelKey      = "risk_level"
	LoggingFieldsKey         = "fields"
	LoggingSinkKey           = "sink"
	LoggingAttemptKey        = "attempt"
	LoggingRedisKey          = "redis_key"
)

const (
	BusinessEventCalculationCompleted = "calculation_completed"
	BusinessEventSubmissionDegraded   = "submission_degraded"
	BusinessEventSubmissionDiscarded  = "submission_discarded"
)
