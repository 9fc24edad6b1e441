package exceptions

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSubmissionInProgress is returned when submitCalculation is called while
// another submission on the same calculator is still running.
var ErrSubmissionInProgress = errors.New("calculator: submission already in progress")

// ErrCalculationDiscarded is returned when the calculator was reset while a
// calculation was being validated or scored.
var ErrCalculationDiscarded = errors.New("calculator: reset during calculation")

// ErrSubmissionPending is returned by the submitter when the same calculation
// was claimed by another delivery that has not finished yet.
var ErrSubmissionPending = errors.New("submission: identical calculation is still being delivered")

// FieldViolation describes one field that blocks a calculation.
type FieldViolation struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

// ValidationError is user-correctable: missing answers or an ineligible patient.
type ValidationError struct {
	CalculatorType string
	Fields         []FieldViolation
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, field := range e.Fields {
		names = append(names, field.Field)
	}
	return fmt.Sprintf("calculator %s: invalid fields [%s]", e.CalculatorType, strings.Join(names, ", "))
}

// FieldNames returns the offending field ids in report order.
func (e *ValidationError) FieldNames() []string {
	names := make([]string, 0, len(e.Fields))
	for _, field := range e.Fields {
		names = append(names, field.Field)
	}
	return names
}

// ConfigurationError marks a programming defect such as an unregistered
// calculator type or a duplicated step.
type ConfigurationError struct {
	CalculatorType string
	Reason         string
}

func (e *ConfigurationError) Error() string {
	if e.CalculatorType == "" {
		return "calculator configuration: " + e.Reason
	}
	return fmt.Sprintf("calculator %s configuration: %s", e.CalculatorType, e.Reason)
}

// SubmissionFailure reports that the remote log write failed after the local
// calculation completed. The calculation result stays valid.
type SubmissionFailure struct {
	CalculatorType string
	Err            error
}

func (e *SubmissionFailure) Error() string {
	return fmt.Sprintf("calculator %s: submission failed: %v", e.CalculatorType, e.Err)
}

func (e *SubmissionFailure) Unwrap() error {
	return e.Err
}

// IsDegraded reports whether err signals a completed calculation whose
// submission failed.
func IsDegraded(err error) bool {
	var failure *SubmissionFailure
	return errors.As(err, &failure)
}
