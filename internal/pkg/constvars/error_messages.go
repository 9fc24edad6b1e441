package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"numeric":  "must be a number",
	"min":      "must be at least %s",
	"max":      "must be at most %s",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lt":       "must be less than %s",
	"lte":      "must be less than or equal to %s",
	"oneof":    "must be one of [%s]",
	"choice":   "must be one of [%s]",
	"uuid":     "must be a valid UUID",
	"answered": "must be answered",
	"gender":   "is not allowed for this calculator",
	"age":      "is outside the allowed range for this calculator",
}

var TagsWithParams = map[string]bool{
	"min":    true,
	"max":    true,
	"gt":     true,
	"gte":    true,
	"lt":     true,
	"lte":    true,
	"oneof":  true,
	"choice": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientCalculatorNotFound            = "calculator not found"
	ErrClientSessionNotFound               = "calculator session not found or expired"
	ErrClientSubmissionInProgress          = "a calculation is already being submitted"
	ErrClientCalculationIncomplete         = "please answer all required questions"
	ErrClientTooManyRequests               = "Too many requests, you are blocked temporarily."
)

// Error messages for developers
const (
	ErrDevInvalidInput                 = "invalid input"
	ErrDevCannotParseJSON              = "cannot parse JSON"
	ErrDevCannotMarshalJSON            = "cannot marshal JSON"
	ErrDevValidationFailed             = "validation failed"
	ErrDevServerProcess                = "server failed to process the request"
	ErrDevServerDeadlineExceeded       = "deadline exceeded"
	ErrDevTooManyRequests              = "client exceeded the submit rate limit"
	ErrDevCalculatorNotFound           = "no calculator registered for type %s"
	ErrDevSessionNotFound              = "no calculator session with id %s"
	ErrDevSubmissionInProgress         = "submitCalculation called while a submission is in flight"
	ErrDevCalculationValidation        = "calculator payload failed validation"
	ErrDevCalculatorConfiguration      = "calculator configuration defect"
	ErrDevScoringFailed                = "scoring strategy failed"
	ErrDevRedisDeleteData              = "failed to delete data from redis"
	ErrDevRedisGetData                 = "failed to get data from redis"
	ErrDevRedisSetData                 = "failed to set data into redis"
	ErrDevRabbitMQPublishMessage       = "failed to publish message to queue %s"
	ErrDevMinioFailedToCreateObject    = "failed to create object in bucket %s"
	ErrDevMongoDBInsertDocument        = "failed to insert document into collection %s"
	ErrDevSubmissionSeal               = "failed to seal submission payload"
)
