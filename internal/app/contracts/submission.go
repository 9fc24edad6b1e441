package contracts

import (
	"calculator-service/internal/app/models"
	"context"
)

// Submitter is the best-effort remote log collaborator. It owns transport,
// encryption and retries; callers only see success or failure.
type Submitter interface {
	Submit(ctx context.Context, payload *models.SubmissionPayload) error
}

// SubmissionSink delivers one sealed envelope to a single destination.
type SubmissionSink interface {
	Name() string
	Deliver(ctx context.Context, envelope *models.SubmissionEnvelope) error
}
