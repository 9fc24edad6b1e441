package config

import "time"

type (
	InternalConfig struct {
		App        App
		Submission Submission
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		Logger   Logger
	}

	App struct {
		Env                      string
		Port                     string
		Version                  string
		Address                  string
		Timezone                 string
		EndpointPrefix           string
		MaxRequests              int
		ShutdownTimeout          int
		SessionTTL               time.Duration
		SessionSweepInterval     time.Duration
		SubmitRateLimit          int
		SubmitRateLimitPer       time.Duration
		SubmitRateLimitBlockTime time.Duration
		CORSAllowedOrigins       []string
	}

	// Submission configures the remote log collaborator. An empty Sinks list
	// turns remote logging off.
	Submission struct {
		Sinks              []string
		RecipientPublicKey string
		QueueName          string
		BucketName         string
		CollectionName     string
		Timeout            time.Duration
		MaxAttempts        int
		Backoff            time.Duration
		DedupeWindow       time.Duration
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

// HasSink reports whether name is listed in the enabled submission sinks.
func (s Submission) HasSink(name string) bool {
	for _, sink := range s.Sinks {
		if sink == name {
			return true
		}
	}
	return false
}
