// Package framework implements the questionnaire state machine shared by
// every calculator: patient and answer data, steps, validation, scoring,
// submission and reset.
package framework

import (
	"calculator-service/internal/app/contracts"
	"calculator-service/internal/app/models"
	"calculator-service/internal/app/services/shared/validation"
	"calculator-service/internal/pkg/constvars"
	"calculator-service/internal/pkg/exceptions"
	"calculator-service/internal/pkg/utils"
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Calculator is one questionnaire session. The mutex only guards state
// transitions; scoring and submission run without holding it.
type Calculator struct {
	id        string
	config    *models.CalculatorConfig
	strategy  contracts.ScoringStrategy
	submitter contracts.Submitter
	validator contracts.PayloadValidator
	log       *zap.Logger
	now       func() time.Time

	mu         sync.Mutex
	steps      []models.CalculatorStep
	patient    models.PatientData
	answers    models.CalculatorData
	result     *models.CalculationResult
	state      models.FrameworkState
	generation uint64

	cancelSubmission context.CancelFunc
	observers        map[int]func(models.Snapshot)
	nextObserverID   int
}

// NewCalculator resolves the scoring strategy of config and initializes its
// steps. A nil submitter skips remote submission, a nil validator falls back to
// the required-field check and a nil logger logs nothing.
func NewCalculator(
	config *models.CalculatorConfig,
	registry contracts.ScoringRegistry,
	submitter contracts.Submitter,
	validator contracts.PayloadValidator,
	logger *zap.Logger,
) (*Calculator, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config == nil {
		return nil, &exceptions.ConfigurationError{Reason: "calculator config is required"}
	}
	if validator == nil {
		validator = validation.NewRequiredOnlyValidator()
	}

	strategy, err := registry.Resolve(config.Type)
	if err != nil {
		logger.Error("Calculator has no scoring strategy",
			zap.String(constvars.LoggingCalculatorTypeKey, string(config.Type)),
			zap.Error(err),
		)
		return nil, err
	}

	c := &Calculator{
		id:        utils.GenerateSessionID(),
		config:    config,
		strategy:  strategy,
		submitter: submitter,
		validator: validator,
		log:       logger.With(zap.String(constvars.LoggingCalculatorTypeKey, string(config.Type))),
		now:       time.Now,
		patient:   config.DefaultPatientData(),
		answers:   config.DefaultCalculatorData(),
		observers: make(map[int]func(models.Snapshot)),
	}

	if err := c.InitializeSteps(config.Steps); err != nil {
		c.log.Error("Calculator steps are invalid", zap.Error(err))
		return nil, err
	}
	return c, nil
}

// InitializeSteps replaces the step list, ordered by Order. Duplicate ids or
// orders are rejected and leave the previous steps in place.
func (c *Calculator) InitializeSteps(steps []models.CalculatorStep) error {
	ids := make(map[string]bool, len(steps))
	orders := make(map[int]bool, len(steps))
	for _, step := range steps {
		if ids[step.ID] {
			return c.configurationError(fmt.Sprintf("duplicate step id %q", step.ID))
		}
		if orders[step.Order] {
			return c.configurationError(fmt.Sprintf("duplicate step order %d", step.Order))
		}
		ids[step.ID] = true
		orders[step.Order] = true
	}

	ordered := append([]models.CalculatorStep(nil), steps...)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Order < ordered[j].Order })

	c.mu.Lock()
	c.steps = ordered
	c.mu.Unlock()
	return nil
}

func (c *Calculator) configurationError(reason string) error {
	return &exceptions.ConfigurationError{CalculatorType: string(c.config.Type), Reason: reason}
}

// ID identifies the calculator for its whole life. Sessions are keyed by it
// and every submission carries it.
func (c *Calculator) ID() string {
	return c.id
}

func (c *Calculator) Config() *models.CalculatorConfig {
	return c.config
}

func (c *Calculator) Steps() []models.CalculatorStep {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.CalculatorStep(nil), c.steps...)
}

func (c *Calculator) PatientData() models.PatientData {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.patient.Clone()
}

func (c *Calculator) CalculatorData() models.CalculatorData {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.answers.Clone()
}

func (c *Calculator) Result() *models.CalculationResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result.Clone()
}

func (c *Calculator) State() models.FrameworkState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// CanProceed is true when every field of a validated step is answered and the
// patient gender is allowed.
func (c *Calculator) CanProceed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.canProceedLocked()
}

func (c *Calculator) canProceedLocked() bool {
	validated := make(map[string]bool, len(c.steps))
	for _, step := range c.steps {
		if step.Validation {
			validated[step.ID] = true
		}
	}
	for _, field := range c.config.Fields {
		if validated[field.StepID] && !c.answers.IsAnswered(field.ID) {
			return false
		}
	}
	return c.config.IsGenderAllowed(c.patient.Gender)
}

// Snapshot returns a copy of the whole presentation state.
func (c *Calculator) Snapshot() models.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Calculator) snapshotLocked() models.Snapshot {
	return models.Snapshot{
		Config:         c.config,
		CalculatorType: c.config.Type,
		Patient:        c.patient.Clone(),
		Answers:        c.answers.Clone(),
		State:          c.state,
		Phase:          c.state.Phase(),
		Result:         c.result.Clone(),
		CanProceed:     c.canProceedLocked(),
		Generation:     c.generation,
	}
}

// ResetCalculator restores the configured default answers, drops the result
// and returns to idle. Patient data is only reset when the config asks for it.
// A submission still in flight is cancelled and its outcome ignored.
func (c *Calculator) ResetCalculator() {
	c.mu.Lock()
	c.generation++
	if c.cancelSubmission != nil {
		c.cancelSubmission()
		c.cancelSubmission = nil
	}
	c.answers = c.config.DefaultCalculatorData()
	if c.config.ResetPatient {
		c.patient = c.config.DefaultPatientData()
	}
	c.result = nil
	c.state = models.FrameworkState{}
	generation := c.generation
	c.mu.Unlock()

	c.log.Debug("Calculator reset", zap.Uint64(constvars.LoggingGenerationKey, generation))
	c.notify()
}
