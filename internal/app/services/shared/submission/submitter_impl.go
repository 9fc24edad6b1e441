// Package submission delivers completed calculations to the remote log:
// payloads are sealed, deduplicated and fanned out to every configured sink.
package submission

import (
	"calculator-service/internal/app/contracts"
	"calculator-service/internal/app/models"
	"calculator-service/internal/pkg/constvars"
	"calculator-service/internal/pkg/exceptions"
	"calculator-service/internal/pkg/utils"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type Config struct {
	Timeout     time.Duration
	MaxAttempts int
	Backoff     time.Duration
	DedupeTTL   time.Duration
}

type submitter struct {
	sinks  []contracts.SubmissionSink
	sealer *Sealer
	dedupe *deduplicator
	config Config
	log    *zap.Logger
	now    func() time.Time
}

// NewSubmitter builds the submission collaborator. redisRepo may be nil to
// disable deduplication.
func NewSubmitter(
	sinks []contracts.SubmissionSink,
	sealer *Sealer,
	redisRepo contracts.RedisRepository,
	config Config,
	logger *zap.Logger,
) contracts.Submitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	if sealer == nil {
		sealer = &Sealer{}
	}
	if config.MaxAttempts < 1 {
		config.MaxAttempts = 1
	}

	return &submitter{
		sinks:  sinks,
		sealer: sealer,
		dedupe: &deduplicator{redisRepo: redisRepo, window: config.DedupeTTL, log: logger},
		config: config,
		log:    logger,
		now:    time.Now,
	}
}

func (s *submitter) Submit(ctx context.Context, payload *models.SubmissionPayload) error {
	requestID := utils.GetRequestID(ctx)
	if len(s.sinks) == 0 {
		s.log.Debug("submission skipped, no sinks configured",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil
	}

	plaintext, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	submissionID := utils.GenerateSubmissionID()
	if fresh, original := s.dedupe.claim(ctx, payload, submissionID); !fresh {
		if original.Status != constvars.SubmissionStatusDelivered {
			s.log.Info("submission deferred, same calculation is still being delivered",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSessionIDKey, payload.SessionID),
				zap.String(constvars.LoggingSubmissionIDKey, original.SubmissionID),
			)
			return exceptions.ErrSubmissionPending
		}
		s.log.Info("submission skipped, same calculation already delivered",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, payload.SessionID),
			zap.String(constvars.LoggingSubmissionIDKey, original.SubmissionID),
		)
		return nil
	}

	body, sealed, err := s.sealer.Seal(plaintext)
	if err != nil {
		s.dedupe.release(ctx, payload)
		return exceptions.ErrSealSubmission(err)
	}

	envelope := &models.SubmissionEnvelope{
		SubmissionID:   submissionID,
		CalculatorType: payload.CalculatorType,
		Sealed:         sealed,
		Digest:         Fingerprint(plaintext),
		Payload:        body,
		CreatedAt:      s.now().Unix(),
	}

	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	err = s.fanOut(ctx, envelope)
	if err != nil {
		s.dedupe.release(context.WithoutCancel(ctx), payload)
		return err
	}
	s.dedupe.confirm(context.WithoutCancel(ctx), payload, submissionID)

	s.log.Info("submission delivered",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSubmissionIDKey, submissionID),
		zap.String(constvars.LoggingCalculatorTypeKey, string(payload.CalculatorType)),
		zap.Int("sinks", len(s.sinks)),
	)
	return nil
}

// fanOut delivers to every sink concurrently. The result combines the error of
// each sink that failed all attempts.
func (s *submitter) fanOut(ctx context.Context, envelope *models.SubmissionEnvelope) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs error
	)

	for _, sink := range s.sinks {
		wg.Add(1)
		go func(sink contracts.SubmissionSink) {
			defer wg.Done()
			operation := fmt.Sprintf(constvars.OperationDeliverSubmission, sink.Name())
			err := utils.LogOperation(s.log, operation, utils.GetRequestID(ctx), func() error {
				return s.deliver(ctx, sink, envelope)
			})
			if err != nil {
				mu.Lock()
				errs = multierr.Append(errs, fmt.Errorf("%s: %w", sink.Name(), err))
				mu.Unlock()
			}
		}(sink)
	}

	wg.Wait()
	return errs
}

func (s *submitter) deliver(ctx context.Context, sink contracts.SubmissionSink, envelope *models.SubmissionEnvelope) error {
	var err error
	for attempt := 1; attempt <= s.config.MaxAttempts; attempt++ {
		err = sink.Deliver(ctx, envelope)
		if err == nil {
			return nil
		}

		s.log.Warn("submission delivery attempt failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingSinkKey, sink.Name()),
			zap.String(constvars.LoggingSubmissionIDKey, envelope.SubmissionID),
			zap.Int(constvars.LoggingAttemptKey, attempt),
			zap.Error(err),
		)

		if attempt == s.config.MaxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return multierr.Append(err, ctx.Err())
		case <-time.After(s.config.Backoff * time.Duration(attempt)):
		}
	}
	return err
}
