package config

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Bootstrap holds the process-wide dependencies. Drivers that no enabled
// submission sink needs stay nil.
type Bootstrap struct {
	Router         *chi.Mux
	Redis          *redis.Client
	MongoDB        *mongo.Client
	RabbitMQ       *amqp091.Connection
	Minio          *minio.Client
	Logger         *zap.Logger
	AccessLogger   *logrus.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// WorkerStop if set will be called during Shutdown to stop background workers
	WorkerStop func()
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.WorkerStop != nil {
		b.WorkerStop()
		b.Logger.Info("Successfully stopped background workers")
	}

	var errs error
	if b.RabbitMQ != nil {
		if err := b.RabbitMQ.Close(); err != nil {
			errs = multierr.Append(errs, err)
		} else {
			b.Logger.Info("Successfully closing RabbitMQ")
		}
	}

	if b.MongoDB != nil {
		if err := b.MongoDB.Disconnect(ctx); err != nil {
			errs = multierr.Append(errs, err)
		} else {
			b.Logger.Info("Successfully closing MongoDB")
		}
	}

	if b.Redis != nil {
		if err := b.Redis.Close(); err != nil {
			errs = multierr.Append(errs, err)
		} else {
			b.Logger.Info("Successfully closing Redis")
		}
	}

	// Sync on stdout returns EINVAL on linux.
	_ = b.Logger.Sync()
	return errs
}
