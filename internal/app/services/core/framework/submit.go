package framework

import (
	"calculator-service/internal/app/models"
	"calculator-service/internal/pkg/constvars"
	"calculator-service/internal/pkg/exceptions"
	"calculator-service/internal/pkg/utils"
	"context"
	"fmt"

	"go.uber.org/zap"
)

// SubmitCalculation validates the answers, scores them and then hands the
// outcome to the submitter.
//
// It returns ErrSubmissionInProgress when another call is running,
// a *ValidationError when answers or the patient are not acceptable, and
// ErrCalculationDiscarded when the calculator was reset meanwhile, including
// while the submitter was running. In all those cases no result is returned. When the result is stored but the submitter
// fails, the result is returned together with a *SubmissionFailure and the
// calculator stays complete.
func (c *Calculator) SubmitCalculation(ctx context.Context) (*models.CalculationResult, error) {
	requestID := utils.GetRequestID(ctx)

	c.mu.Lock()
	if c.state.IsSubmitting {
		c.mu.Unlock()
		return nil, exceptions.ErrSubmissionInProgress
	}
	c.state.IsSubmitting = true
	generation := c.generation
	patient := c.patient.Clone()
	answers := c.answers.Clone()
	c.mu.Unlock()
	c.notify()

	if violations := c.validator.Validate(c.config, patient, answers); len(violations) > 0 {
		validationErr := &exceptions.ValidationError{CalculatorType: string(c.config.Type), Fields: violations}
		c.log.Debug("Calculation rejected by validation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Strings(constvars.LoggingFieldsKey, validationErr.FieldNames()),
		)
		if err := c.abortSubmission(generation); err != nil {
			return nil, err
		}
		return nil, validationErr
	}

	result, err := c.score(answers, patient)
	if err != nil {
		c.log.Error("Scoring strategy failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if abortErr := c.abortSubmission(generation); abortErr != nil {
			return nil, abortErr
		}
		return nil, err
	}
	result.CompletedAt = c.now()

	c.mu.Lock()
	if c.generation != generation {
		c.mu.Unlock()
		return nil, exceptions.ErrCalculationDiscarded
	}
	c.generation++
	generation = c.generation
	c.result = result.Clone()
	c.state = models.FrameworkState{IsComplete: true}
	submitCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	c.cancelSubmission = cancel
	c.mu.Unlock()
	c.notify()

	utils.LogBusinessEvent(c.log, constvars.BusinessEventCalculationCompleted, requestID,
		zap.Float64(constvars.LoggingScoreKey, result.Score),
		zap.String(constvars.LoggingRiskLevelKey, string(result.RiskLevel)),
		zap.Uint64(constvars.LoggingGenerationKey, generation),
	)

	if c.submitter == nil {
		if !c.finishSubmission(generation, cancel) {
			return nil, exceptions.ErrCalculationDiscarded
		}
		return result, nil
	}

	if deadline, ok := ctx.Deadline(); ok {
		var cancelDeadline context.CancelFunc
		submitCtx, cancelDeadline = context.WithDeadline(submitCtx, deadline)
		defer cancelDeadline()
	}

	submitErr := c.submitter.Submit(submitCtx, c.buildPayload(generation, patient, answers, result))
	if submitErr == nil {
		if !c.finishSubmission(generation, cancel) {
			c.logDiscarded(requestID, generation, nil)
			return nil, exceptions.ErrCalculationDiscarded
		}
		return result, nil
	}

	if !c.markDegraded(generation, cancel) {
		c.logDiscarded(requestID, generation, submitErr)
		return nil, fmt.Errorf("%w: %w", exceptions.ErrCalculationDiscarded, submitErr)
	}
	failure := &exceptions.SubmissionFailure{CalculatorType: string(c.config.Type), Err: submitErr}

	c.log.Warn("Calculation completed but submission failed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Uint64(constvars.LoggingGenerationKey, generation),
		zap.Error(submitErr),
	)
	utils.LogBusinessEvent(c.log, constvars.BusinessEventSubmissionDegraded, requestID,
		zap.Uint64(constvars.LoggingGenerationKey, generation),
	)
	return result, failure
}

// score runs the strategy on copies so it cannot alter session state.
func (c *Calculator) score(answers models.CalculatorData, patient models.PatientData) (result *models.CalculationResult, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			result = nil
			err = fmt.Errorf("scoring %s panicked: %v", c.config.Type, rec)
		}
	}()

	result, err = c.strategy.Score(answers.Clone(), patient.Clone())
	if err != nil {
		return nil, fmt.Errorf("scoring %s: %w", c.config.Type, err)
	}
	if result == nil {
		return nil, fmt.Errorf("scoring %s: strategy returned no result", c.config.Type)
	}
	return result, nil
}

// abortSubmission returns to the pre-submit state unless a reset already did.
func (c *Calculator) abortSubmission(generation uint64) error {
	c.mu.Lock()
	if c.generation != generation {
		c.mu.Unlock()
		return exceptions.ErrCalculationDiscarded
	}
	c.state.IsSubmitting = false
	c.mu.Unlock()
	c.notify()
	return nil
}

// finishSubmission releases the submission context. It reports false when
// the calculator moved on since the submission started.
func (c *Calculator) finishSubmission(generation uint64, cancel context.CancelFunc) bool {
	cancel()
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation != generation {
		return false
	}
	c.cancelSubmission = nil
	return true
}

func (c *Calculator) logDiscarded(requestID string, generation uint64, submitErr error) {
	fields := []zap.Field{zap.Uint64(constvars.LoggingGenerationKey, generation)}
	if submitErr != nil {
		fields = append(fields, zap.Error(submitErr))
	}
	utils.LogBusinessEvent(c.log, constvars.BusinessEventSubmissionDiscarded, requestID, fields...)
}

// markDegraded flags the stored result as not submitted. It reports false
// when the calculator moved on since the submission started.
func (c *Calculator) markDegraded(generation uint64, cancel context.CancelFunc) bool {
	cancel()
	c.mu.Lock()
	if c.generation != generation {
		c.mu.Unlock()
		return false
	}
	c.cancelSubmission = nil
	c.state.SubmissionFailed = true
	c.mu.Unlock()
	c.notify()
	return true
}

func (c *Calculator) buildPayload(generation uint64, patient models.PatientData, answers models.CalculatorData, result *models.CalculationResult) *models.SubmissionPayload {
	submissionAnswers := make([]models.SubmissionAnswer, 0, len(answers))
	for _, key := range answers.Keys() {
		submissionAnswers = append(submissionAnswers, models.SubmissionAnswer{ID: key, Value: answers[key]})
	}

	scores := map[string]interface{}{
		"score":          result.Score,
		"risk_level":     string(result.RiskLevel),
		"interpretation": result.Interpretation,
	}
	for key, value := range result.Details {
		if _, taken := scores[key]; !taken {
			scores[key] = value
		}
	}

	return &models.SubmissionPayload{
		SessionID:      c.id,
		Generation:     generation,
		CalculatorType: c.config.Type,
		Name:           patient.Name,
		Age:            patient.Age,
		Gender:         patient.Gender,
		Answers:        submissionAnswers,
		Scores:         scores,
	}
}
