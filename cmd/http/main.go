package main

import (
	"calculator-service/internal/app/config"
	"calculator-service/internal/app/contracts"
	"calculator-service/internal/app/delivery/http/controllers"
	"calculator-service/internal/app/delivery/http/middlewares"
	"calculator-service/internal/app/delivery/http/routers"
	"calculator-service/internal/app/drivers/database"
	"calculator-service/internal/app/drivers/logger"
	"calculator-service/internal/app/drivers/messaging"
	"calculator-service/internal/app/drivers/storage"
	"calculator-service/internal/app/services/core/calculators"
	"calculator-service/internal/app/services/core/catalog"
	"calculator-service/internal/app/services/core/framework"
	"calculator-service/internal/app/services/core/scoring"
	"calculator-service/internal/app/services/core/sessions"
	"calculator-service/internal/app/services/shared/redis"
	"calculator-service/internal/app/services/shared/submission"
	"calculator-service/internal/app/services/shared/validation"
	"calculator-service/internal/pkg/constvars"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         log,
		AccessLogger:   logger.NewLogrusLogger(internalConfig),
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	connectDrivers(bootstrap)

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	bootstrap.WorkerStop = stopWorkers

	if err := bootstrapingTheApp(workerCtx, bootstrap); err != nil {
		log.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		log.Info("Server started", zap.String("port", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to release drivers", zap.Error(err))
	}

	log.Info("Server exiting")
}

// connectDrivers opens only the connections the enabled submission sinks use.
func connectDrivers(bootstrap *config.Bootstrap) {
	log := bootstrap.Logger
	submissionConfig := bootstrap.InternalConfig.Submission
	if len(submissionConfig.Sinks) == 0 {
		log.Info("Remote submission disabled, no sinks configured")
		return
	}

	var err error
	bootstrap.Redis, err = database.NewRedisClient(bootstrap.DriverConfig, log)
	if err != nil {
		log.Warn("Submission dedupe disabled", zap.Error(err))
	}

	if submissionConfig.HasSink(constvars.SubmissionSinkRabbitMQ) {
		bootstrap.RabbitMQ, err = messaging.NewRabbitMQ(bootstrap.DriverConfig, log)
		if err != nil {
			log.Fatal("Failed to connect to rabbitMQ", zap.Error(err))
		}
	}

	if submissionConfig.HasSink(constvars.SubmissionSinkMinio) {
		bootstrap.Minio, err = storage.NewMinio(bootstrap.DriverConfig, submissionConfig.BucketName, log)
		if err != nil {
			log.Fatal("Failed to connect to minio", zap.Error(err))
		}
	}

	if submissionConfig.HasSink(constvars.SubmissionSinkMongo) {
		bootstrap.MongoDB, err = database.NewMongoDB(bootstrap.DriverConfig, log)
		if err != nil {
			log.Fatal("Failed to connect to mongo database", zap.Error(err))
		}
	}
}

func bootstrapingTheApp(ctx context.Context, bootstrap *config.Bootstrap) error {
	log := bootstrap.Logger
	submissionConfig := bootstrap.InternalConfig.Submission

	// Submission
	var sinks []contracts.SubmissionSink
	if bootstrap.RabbitMQ != nil {
		sink, err := submission.NewRabbitMQSink(bootstrap.RabbitMQ, submissionConfig.QueueName)
		if err != nil {
			return err
		}
		sinks = append(sinks, sink)
	}
	if bootstrap.Minio != nil {
		sinks = append(sinks, submission.NewMinioSink(bootstrap.Minio, submissionConfig.BucketName))
	}
	if bootstrap.MongoDB != nil {
		mongoDatabase := bootstrap.MongoDB.Database(bootstrap.DriverConfig.MongoDB.DbName)
		sinks = append(sinks, submission.NewMongoSink(mongoDatabase, submissionConfig.CollectionName))
	}

	var submitter contracts.Submitter
	if len(sinks) > 0 {
		sealer, err := submission.NewSealer(submissionConfig.RecipientPublicKey)
		if err != nil {
			return err
		}
		var redisRepository contracts.RedisRepository
		if bootstrap.Redis != nil {
			redisRepository = redis.NewRedisRepository(bootstrap.Redis)
		}
		submitter = submission.NewSubmitter(sinks, sealer, redisRepository, submission.Config{
			Timeout:     submissionConfig.Timeout,
			MaxAttempts: submissionConfig.MaxAttempts,
			Backoff:     submissionConfig.Backoff,
			DedupeTTL:   submissionConfig.DedupeWindow,
		}, log)
	}

	// Calculators
	calculatorCatalog := catalog.New()
	scoringRegistry := scoring.NewRegistry()
	if err := framework.VerifyConfigs(calculatorCatalog.List(), scoringRegistry, log); err != nil {
		return err
	}
	calculatorUsecase := calculators.NewCalculatorUsecase(calculatorCatalog, log)
	calculatorController := controllers.NewCalculatorController(log, calculatorUsecase)

	// Sessions
	sessionStore := sessions.NewStore(bootstrap.InternalConfig.App.SessionTTL)
	go sessionStore.Run(ctx, bootstrap.InternalConfig.App.SessionSweepInterval)
	sessionUsecase := sessions.NewSessionUsecase(
		sessionStore,
		calculatorCatalog,
		scoringRegistry,
		submitter,
		validation.NewSchemaValidator(),
		log,
	)
	sessionController := controllers.NewSessionController(log, sessionUsecase)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(log, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		bootstrap.AccessLogger,
		middlewares,
		calculatorController,
		sessionController,
	)
	return nil
}
