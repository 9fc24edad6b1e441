package submission

import (
	"calculator-service/internal/app/contracts"
	"calculator-service/internal/app/models"
	"calculator-service/internal/pkg/constvars"
	"calculator-service/internal/pkg/exceptions"
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/crypto/nacl/box"
)

func testPayload() *models.SubmissionPayload {
	return &models.SubmissionPayload{
		SessionID:      "session-1",
		Generation:     1,
		CalculatorType: models.CalculatorTypeAUDIT,
		Name:           "Anna",
		Age:            34,
		Gender:         models.GenderPtr(models.GenderFemale),
		Answers: []models.SubmissionAnswer{
			{ID: "q1", Value: models.Float(2)},
		},
		Scores: map[string]interface{}{"score": 2.0},
	}
}

func TestSealer(t *testing.T) {
	t.Run("Without key payloads stay plain", func(t *testing.T) {
		sealer, err := NewSealer("")
		require.NoError(t, err)
		assert.False(t, sealer.Enabled())

		body, sealed, err := sealer.Seal([]byte(`{"a":1}`))
		require.NoError(t, err)
		assert.False(t, sealed)
		assert.Equal(t, `{"a":1}`, body)
	})

	t.Run("Sealed payloads open with the private key", func(t *testing.T) {
		publicKey, privateKey, err := box.GenerateKey(rand.Reader)
		require.NoError(t, err)

		sealer, err := NewSealer(base64.StdEncoding.EncodeToString(publicKey[:]))
		require.NoError(t, err)

		body, sealed, err := sealer.Seal([]byte("secret"))
		require.NoError(t, err)
		assert.True(t, sealed)

		raw, err := base64.StdEncoding.DecodeString(body)
		require.NoError(t, err)
		opened, ok := box.OpenAnonymous(nil, raw, publicKey, privateKey)
		require.True(t, ok)
		assert.Equal(t, "secret", string(opened))
	})

	t.Run("Malformed keys are rejected", func(t *testing.T) {
		_, err := NewSealer("not base64!")
		assert.Error(t, err)

		_, err = NewSealer(base64.StdEncoding.EncodeToString([]byte("short")))
		assert.Error(t, err)
	})

	t.Run("Fingerprint is stable", func(t *testing.T) {
		assert.Equal(t, Fingerprint([]byte("a")), Fingerprint([]byte("a")))
		assert.NotEqual(t, Fingerprint([]byte("a")), Fingerprint([]byte("b")))
		assert.Len(t, Fingerprint([]byte("a")), 64)
	})
}

func TestSubmitter(t *testing.T) {
	ctx := context.Background()

	t.Run("Delivers to every sink", func(t *testing.T) {
		first, second := &fakeSink{name: "first"}, &fakeSink{name: "second"}
		s := NewSubmitter([]contracts.SubmissionSink{first, second}, nil, nil, Config{MaxAttempts: 1}, zap.NewNop())

		require.NoError(t, s.Submit(ctx, testPayload()))
		require.Len(t, first.received, 1)
		require.Len(t, second.received, 1)
		assert.Equal(t, first.received[0].SubmissionID, second.received[0].SubmissionID)
		assert.False(t, first.received[0].Sealed)

		var payload models.SubmissionPayload
		require.NoError(t, json.Unmarshal([]byte(first.received[0].Payload), &payload))
		assert.Equal(t, "Anna", payload.Name)
	})

	t.Run("No sinks is a no-op", func(t *testing.T) {
		s := NewSubmitter(nil, nil, nil, Config{}, nil)
		assert.NoError(t, s.Submit(ctx, testPayload()))
	})

	t.Run("Transient failures are retried", func(t *testing.T) {
		sink := &fakeSink{name: "flaky", failures: 2}
		s := NewSubmitter([]contracts.SubmissionSink{sink}, nil, nil, Config{MaxAttempts: 3, Backoff: time.Millisecond}, zap.NewNop())

		require.NoError(t, s.Submit(ctx, testPayload()))
		assert.Equal(t, 3, sink.calls)
		assert.Len(t, sink.received, 1)
	})

	t.Run("Attempts are bounded and errors combined", func(t *testing.T) {
		down := &fakeSink{name: "down", err: errors.New("refused")}
		gone := &fakeSink{name: "gone", err: errors.New("timeout")}
		ok := &fakeSink{name: "ok"}
		s := NewSubmitter([]contracts.SubmissionSink{down, gone, ok}, nil, nil, Config{MaxAttempts: 2, Backoff: time.Millisecond}, zap.NewNop())

		err := s.Submit(ctx, testPayload())
		require.Error(t, err)
		assert.Len(t, multierr.Errors(err), 2)
		assert.Equal(t, 2, down.calls)
		assert.Equal(t, 2, gone.calls)
		assert.Len(t, ok.received, 1)
	})

	t.Run("Same calculation inside the window is delivered once", func(t *testing.T) {
		sink := &fakeSink{name: "sink"}
		repo := newFakeRedisRepo()
		s := NewSubmitter([]contracts.SubmissionSink{sink}, nil, repo, Config{MaxAttempts: 1, DedupeTTL: time.Minute}, zap.NewNop())

		require.NoError(t, s.Submit(ctx, testPayload()))
		require.NoError(t, s.Submit(ctx, testPayload()))
		assert.Len(t, sink.received, 1)

		next := testPayload()
		next.Generation = 3
		require.NoError(t, s.Submit(ctx, next))
		assert.Len(t, sink.received, 2)
		assert.Equal(t, 2, repo.sets)
	})

	t.Run("Identical answers from different sessions are both delivered", func(t *testing.T) {
		sink := &fakeSink{name: "sink"}
		repo := newFakeRedisRepo()
		s := NewSubmitter([]contracts.SubmissionSink{sink}, nil, repo, Config{MaxAttempts: 1, DedupeTTL: time.Minute}, zap.NewNop())

		other := testPayload()
		other.SessionID = "session-2"
		require.NoError(t, s.Submit(ctx, testPayload()))
		require.NoError(t, s.Submit(ctx, other))
		assert.Len(t, sink.received, 2)
		assert.NotEqual(t, sink.received[0].SubmissionID, sink.received[1].SubmissionID)
		assert.NotEqual(t, sink.received[0].Digest, sink.received[1].Digest)
	})

	t.Run("Duplicate claim reports the original submission", func(t *testing.T) {
		d := &deduplicator{redisRepo: newFakeRedisRepo(), window: time.Minute, log: zap.NewNop()}

		fresh, original := d.claim(ctx, testPayload(), "first")
		assert.True(t, fresh)
		assert.Empty(t, original.SubmissionID)

		fresh, original = d.claim(ctx, testPayload(), "second")
		assert.False(t, fresh)
		assert.Equal(t, "first", original.SubmissionID)
		assert.Equal(t, constvars.SubmissionStatusPending, original.Status)

		d.confirm(ctx, testPayload(), "first")
		_, original = d.claim(ctx, testPayload(), "third")
		assert.Equal(t, constvars.SubmissionStatusDelivered, original.Status)
	})

	t.Run("Claim held by a failing delivery is pending, then retried", func(t *testing.T) {
		sink := &fakeSink{
			name:    "sink",
			err:     errors.New("refused"),
			started: make(chan struct{}),
			release: make(chan struct{}),
		}
		repo := newFakeRedisRepo()
		s := NewSubmitter([]contracts.SubmissionSink{sink}, nil, repo, Config{MaxAttempts: 1, DedupeTTL: time.Minute}, zap.NewNop())

		first := make(chan error, 1)
		go func() {
			first <- s.Submit(ctx, testPayload())
		}()
		<-sink.started

		err := s.Submit(ctx, testPayload())
		assert.ErrorIs(t, err, exceptions.ErrSubmissionPending)

		close(sink.release)
		firstErr := <-first
		require.Error(t, firstErr)
		assert.NotErrorIs(t, firstErr, exceptions.ErrSubmissionPending)
		assert.Len(t, repo.deleted, 1)

		sink.release = nil
		err = s.Submit(ctx, testPayload())
		require.Error(t, err)
		assert.NotErrorIs(t, err, exceptions.ErrSubmissionPending)
		assert.Equal(t, 2, sink.calls)
	})

	t.Run("Payloads without a session are not deduplicated", func(t *testing.T) {
		sink := &fakeSink{name: "sink"}
		repo := newFakeRedisRepo()
		s := NewSubmitter([]contracts.SubmissionSink{sink}, nil, repo, Config{MaxAttempts: 1, DedupeTTL: time.Minute}, zap.NewNop())

		anonymous := testPayload()
		anonymous.SessionID = ""
		require.NoError(t, s.Submit(ctx, anonymous))
		require.NoError(t, s.Submit(ctx, anonymous))
		assert.Len(t, sink.received, 2)
		assert.Empty(t, repo.values)
	})

	t.Run("Failed delivery releases the dedupe key", func(t *testing.T) {
		sink := &fakeSink{name: "sink", err: errors.New("refused")}
		repo := newFakeRedisRepo()
		s := NewSubmitter([]contracts.SubmissionSink{sink}, nil, repo, Config{MaxAttempts: 1, DedupeTTL: time.Minute}, zap.NewNop())

		require.Error(t, s.Submit(ctx, testPayload()))
		require.Error(t, s.Submit(ctx, testPayload()))
		assert.Equal(t, 2, sink.calls)
		assert.Len(t, repo.deleted, 2)
	})

	t.Run("Redis outage does not block delivery", func(t *testing.T) {
		sink := &fakeSink{name: "sink"}
		repo := newFakeRedisRepo()
		repo.err = errors.New("redis down")
		s := NewSubmitter([]contracts.SubmissionSink{sink}, nil, repo, Config{MaxAttempts: 1, DedupeTTL: time.Minute}, zap.NewNop())

		require.NoError(t, s.Submit(ctx, testPayload()))
		assert.Len(t, sink.received, 1)
	})

	t.Run("Sealed envelopes", func(t *testing.T) {
		publicKey, _, err := box.GenerateKey(rand.Reader)
		require.NoError(t, err)
		sealer, err := NewSealer(base64.StdEncoding.EncodeToString(publicKey[:]))
		require.NoError(t, err)

		sink := &fakeSink{name: "sink"}
		s := NewSubmitter([]contracts.SubmissionSink{sink}, sealer, nil, Config{MaxAttempts: 1}, zap.NewNop())

		require.NoError(t, s.Submit(ctx, testPayload()))
		require.Len(t, sink.received, 1)
		assert.True(t, sink.received[0].Sealed)
		assert.NotContains(t, sink.received[0].Payload, "Anna")
	})

	t.Run("Cancelled context stops retrying", func(t *testing.T) {
		sink := &fakeSink{name: "sink", err: errors.New("refused")}
		s := NewSubmitter([]contracts.SubmissionSink{sink}, nil, nil, Config{MaxAttempts: 5, Backoff: time.Hour}, zap.NewNop())

		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		err := s.Submit(cancelled, testPayload())
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, sink.calls)
	})
}

func TestSinks(t *testing.T) {
	ctx := context.Background()
	envelope := &models.SubmissionEnvelope{
		SubmissionID:   "sub-1",
		CalculatorType: models.CalculatorTypeEPDS,
		Payload:        "{}",
		CreatedAt:      1700000000,
	}

	t.Run("RabbitMQ publishes persistent JSON", func(t *testing.T) {
		publisher := &fakePublisher{}
		sink := newRabbitMQSink(publisher, "calculator-log")

		require.NoError(t, sink.Deliver(ctx, envelope))
		require.Len(t, publisher.messages, 1)
		assert.Equal(t, "calculator-log", publisher.queue)
		assert.Equal(t, constvars.MIMEApplicationJSON, publisher.messages[0].ContentType)
		assert.Equal(t, "sub-1", publisher.messages[0].MessageId)
		assert.Equal(t, constvars.SubmissionSinkRabbitMQ, sink.Name())
	})

	t.Run("RabbitMQ errors are wrapped", func(t *testing.T) {
		sink := newRabbitMQSink(&fakePublisher{err: errors.New("channel closed")}, "calculator-log")
		var customErr *exceptions.CustomError
		require.ErrorAs(t, sink.Deliver(ctx, envelope), &customErr)
	})

	t.Run("MinIO archives by type and id", func(t *testing.T) {
		putter := &fakeObjectPutter{}
		sink := &minioSink{client: putter, bucket: "submissions"}

		require.NoError(t, sink.Deliver(ctx, envelope))
		assert.Equal(t, "submissions", putter.bucket)
		assert.Equal(t, "submissions/epds/sub-1.json", putter.object)
		assert.Contains(t, string(putter.body), `"submission_id":"sub-1"`)
	})

	t.Run("Mongo inserts and tolerates duplicates", func(t *testing.T) {
		inserter := &fakeInserter{}
		sink := &mongoSink{collection: inserter, name: "submissions"}
		require.NoError(t, sink.Deliver(ctx, envelope))
		assert.Len(t, inserter.documents, 1)

		duplicate := &mongoSink{
			collection: &fakeInserter{err: mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}},
			name:       "submissions",
		}
		assert.NoError(t, duplicate.Deliver(ctx, envelope))

		failing := &mongoSink{collection: &fakeInserter{err: errors.New("no primary")}, name: "submissions"}
		var customErr *exceptions.CustomError
		require.ErrorAs(t, failing.Deliver(ctx, envelope), &customErr)
	})
}
