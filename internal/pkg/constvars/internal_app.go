package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "CALC_SVC_"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	ResourceCalculators = "calculators"
	ResourceSessions    = "sessions"
	ResourceRisk        = "risk"
)

// Submission sink names accepted in SUBMISSION_SINKS.
const (
	SubmissionSinkRabbitMQ = "rabbitmq"
	SubmissionSinkMinio    = "minio"
	SubmissionSinkMongo    = "mongo"
)

const (
	SubmissionStatusSkipped   = "skipped"
	SubmissionStatusDelivered = "delivered"
	SubmissionStatusFailed    = "failed"
	SubmissionStatusPending   = "pending"
)

const (
	RedisKeySubmissionDedupeFormat = "calculator:submission:%s:%d"
	MinioObjectSubmissionFormat    = "submissions/%s/%s.json"
	OperationDeliverSubmission     = "deliver_submission_%s"
)
