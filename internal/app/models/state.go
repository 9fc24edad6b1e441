package models

// Phase is the derived sub-state of a calculator framework.
type Phase string

const (
	PhaseIdle             Phase = "idle"
	PhaseSubmitting       Phase = "submitting"
	PhaseCompleteSuccess  Phase = "complete_success"
	PhaseCompleteDegraded Phase = "complete_degraded"
)

type FrameworkState struct {
	IsSubmitting     bool `json:"is_submitting"`
	IsComplete       bool `json:"is_complete"`
	SubmissionFailed bool `json:"submission_failed"`
}

func (s FrameworkState) Phase() Phase {
	switch {
	case s.IsSubmitting:
		return PhaseSubmitting
	case s.IsComplete && s.SubmissionFailed:
		return PhaseCompleteDegraded
	case s.IsComplete:
		return PhaseCompleteSuccess
	default:
		return PhaseIdle
	}
}

// Snapshot is a read-only copy of everything a presentation layer renders.
type Snapshot struct {
	Config         *CalculatorConfig  `json:"-"`
	CalculatorType CalculatorType     `json:"calculator_type"`
	Patient        PatientData        `json:"patient"`
	Answers        CalculatorData     `json:"answers"`
	State          FrameworkState     `json:"state"`
	Phase          Phase              `json:"phase"`
	Result         *CalculationResult `json:"result,omitempty"`
	CanProceed     bool               `json:"can_proceed"`
	Generation     uint64             `json:"generation"`
}
