package submission

import (
	"calculator-service/internal/app/models"
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type fakeSink struct {
	name     string
	started  chan struct{}
	release  chan struct{}
	mu       sync.Mutex
	failures int
	err      error
	calls    int
	received []*models.SubmissionEnvelope
}

func (s *fakeSink) Name() string { return s.name }

func (s *fakeSink) Deliver(_ context.Context, envelope *models.SubmissionEnvelope) error {
	if s.release != nil {
		close(s.started)
		<-s.release
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return s.err
	}
	if s.failures > 0 {
		s.failures--
		return errors.New("temporarily unavailable")
	}
	s.received = append(s.received, envelope)
	return nil
}

type fakeRedisRepo struct {
	mu      sync.Mutex
	values  map[string]string
	err     error
	deleted []string
	sets    int
}

func newFakeRedisRepo() *fakeRedisRepo {
	return &fakeRedisRepo{values: map[string]string{}}
}

func (r *fakeRedisRepo) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.values, key)
	r.deleted = append(r.deleted, key)
	return nil
}

func (r *fakeRedisRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	raw, _ := json.Marshal(value)
	r.values[key] = string(raw)
	r.sets++
	return nil
}

func (r *fakeRedisRepo) Get(_ context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.values[key], nil
}

func (r *fakeRedisRepo) TrySetNX(_ context.Context, key string, value interface{}, _ time.Duration) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	if _, ok := r.values[key]; ok {
		return false, nil
	}
	raw, _ := json.Marshal(value)
	r.values[key] = string(raw)
	return true, nil
}

type fakePublisher struct {
	err      error
	queue    string
	messages []amqp091.Publishing
}

func (p *fakePublisher) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp091.Publishing) error {
	if p.err != nil {
		return p.err
	}
	p.queue = key
	p.messages = append(p.messages, msg)
	return nil
}

type fakeObjectPutter struct {
	err    error
	bucket string
	object string
	body   []byte
	opts   minio.PutObjectOptions
}

func (p *fakeObjectPutter) PutObject(_ context.Context, bucketName, objectName string, reader io.Reader, _ int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	if p.err != nil {
		return minio.UploadInfo{}, p.err
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	p.bucket, p.object, p.body, p.opts = bucketName, objectName, body, opts
	return minio.UploadInfo{Bucket: bucketName, Key: objectName}, nil
}

type fakeInserter struct {
	err       error
	documents []interface{}
}

func (i *fakeInserter) InsertOne(_ context.Context, document interface{}, _ ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	if i.err != nil {
		return nil, i.err
	}
	i.documents = append(i.documents, document)
	return &mongo.InsertOneResult{}, nil
}
