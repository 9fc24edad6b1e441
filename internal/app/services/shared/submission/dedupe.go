package submission

import (
	"calculator-service/internal/app/contracts"
	"calculator-service/internal/app/models"
	"calculator-service/internal/pkg/constvars"
	"calculator-service/internal/pkg/utils"
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// dedupeRecord is the value kept under a dedupe key.
type dedupeRecord struct {
	SubmissionID string `json:"submission_id"`
	Status       string `json:"status"`
}

// deduplicator remembers calculations in Redis for a window so the same
// calculation is not logged twice. A calculation is identified by its
// session id and generation, never by its content.
type deduplicator struct {
	redisRepo contracts.RedisRepository
	window    time.Duration
	log       *zap.Logger
}

func (d *deduplicator) enabled(payload *models.SubmissionPayload) bool {
	return d != nil && d.redisRepo != nil && d.window > 0 && payload.SessionID != ""
}

// claim reports whether the calculation was not seen within the window. When
// it was, the record of the earlier claim is returned as well. Redis failures
// are logged and treated as unseen.
func (d *deduplicator) claim(ctx context.Context, payload *models.SubmissionPayload, submissionID string) (bool, dedupeRecord) {
	if !d.enabled(payload) {
		return true, dedupeRecord{}
	}

	key := dedupeKey(payload)
	record := dedupeRecord{SubmissionID: submissionID, Status: constvars.SubmissionStatusPending}
	acquired, err := d.redisRepo.TrySetNX(ctx, key, record, d.window)
	if err != nil {
		d.log.Warn("submission dedupe unavailable, delivering anyway",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return true, dedupeRecord{}
	}
	if acquired {
		return true, dedupeRecord{}
	}
	return false, d.owner(ctx, key)
}

// owner reads the record stored under key. An unreadable record is reported
// as pending.
func (d *deduplicator) owner(ctx context.Context, key string) dedupeRecord {
	pending := dedupeRecord{Status: constvars.SubmissionStatusPending}
	raw, err := d.redisRepo.Get(ctx, key)
	if err != nil || raw == "" {
		return pending
	}
	var record dedupeRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return pending
	}
	return record
}

// confirm marks the claim delivered and restarts the window from the
// delivery time.
func (d *deduplicator) confirm(ctx context.Context, payload *models.SubmissionPayload, submissionID string) {
	if !d.enabled(payload) {
		return
	}

	key := dedupeKey(payload)
	record := dedupeRecord{SubmissionID: submissionID, Status: constvars.SubmissionStatusDelivered}
	if err := d.redisRepo.Set(ctx, key, record, d.window); err != nil {
		d.log.Warn("failed to confirm submission dedupe key",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
	}
}

// release forgets the claim so a failed submission can be retried.
func (d *deduplicator) release(ctx context.Context, payload *models.SubmissionPayload) {
	if !d.enabled(payload) {
		return
	}

	key := dedupeKey(payload)
	if err := d.redisRepo.Delete(ctx, key); err != nil {
		d.log.Warn("failed to release submission dedupe key",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
	}
}

func dedupeKey(payload *models.SubmissionPayload) string {
	return fmt.Sprintf(constvars.RedisKeySubmissionDedupeFormat, payload.SessionID, payload.Generation)
}
