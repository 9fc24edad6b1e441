package submission

import (
	"calculator-service/internal/app/contracts"
	"calculator-service/internal/app/models"
	"calculator-service/internal/pkg/constvars"
	"calculator-service/internal/pkg/exceptions"
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// documentInserter is the part of *mongo.Collection the sink uses.
type documentInserter interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

type mongoSink struct {
	collection documentInserter
	name       string
}

func NewMongoSink(database *mongo.Database, collection string) contracts.SubmissionSink {
	return &mongoSink{collection: database.Collection(collection), name: collection}
}

func (s *mongoSink) Name() string {
	return constvars.SubmissionSinkMongo
}

// Deliver inserts the envelope keyed by its submission id. A duplicate key
// means an earlier attempt already landed and counts as delivered.
func (s *mongoSink) Deliver(ctx context.Context, envelope *models.SubmissionEnvelope) error {
	_, err := s.collection.InsertOne(ctx, envelope)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return exceptions.ErrMongoDBInsertDocument(err, s.name)
	}
	return nil
}
