package config

import (
	"calculator-service/internal/pkg/utils"
	"time"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "calculator"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                      utils.GetEnvString("APP_ENV", "development"),
			Port:                     utils.GetEnvString("APP_PORT", ":8080"),
			Version:                  utils.GetEnvString("APP_VERSION", "v1"),
			Address:                  utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                 utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:           utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:              utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeout:          utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			SessionTTL:               time.Duration(utils.GetEnvInt("APP_SESSION_TTL_IN_MINUTES", 30)) * time.Minute,
			SessionSweepInterval:     utils.GetEnvDuration("APP_SESSION_SWEEP_INTERVAL", time.Minute),
			SubmitRateLimit:          utils.GetEnvInt("APP_SUBMIT_RATE_LIMIT", 5),
			SubmitRateLimitPer:       utils.GetEnvDuration("APP_SUBMIT_RATE_LIMIT_PER", time.Second),
			SubmitRateLimitBlockTime: utils.GetEnvDuration("APP_SUBMIT_RATE_LIMIT_BLOCK_TIME", 30*time.Second),
			CORSAllowedOrigins:       utils.GetEnvStringSlice("APP_CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Submission: Submission{
			Sinks:              utils.GetEnvStringSlice("SUBMISSION_SINKS", nil),
			RecipientPublicKey: utils.GetEnvString("SUBMISSION_RECIPIENT_PUBLIC_KEY", ""),
			QueueName:          utils.GetEnvString("SUBMISSION_QUEUE_NAME", "calculator.submissions"),
			BucketName:         utils.GetEnvString("SUBMISSION_BUCKET_NAME", "calculator-submissions"),
			CollectionName:     utils.GetEnvString("SUBMISSION_COLLECTION_NAME", "calculator_submissions"),
			Timeout:            utils.GetEnvDuration("SUBMISSION_TIMEOUT", 5*time.Second),
			MaxAttempts:        utils.GetEnvInt("SUBMISSION_MAX_ATTEMPTS", 3),
			Backoff:            utils.GetEnvDuration("SUBMISSION_BACKOFF", 200*time.Millisecond),
			DedupeWindow:       utils.GetEnvDuration("SUBMISSION_DEDUPE_WINDOW", 10*time.Minute),
		},
	}
}
