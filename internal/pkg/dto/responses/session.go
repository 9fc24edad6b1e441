package responses

import (
	"calculator-service/internal/app/models"
	"time"
)

type Submission struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type Session struct {
	SessionID      string                    `json:"session_id"`
	CalculatorType models.CalculatorType     `json:"calculator_type"`
	Patient        models.PatientData        `json:"patient"`
	Answers        models.CalculatorData     `json:"answers"`
	Steps          []models.CalculatorStep   `json:"steps"`
	State          models.FrameworkState     `json:"state"`
	Phase          models.Phase              `json:"phase"`
	CanProceed     bool                      `json:"can_proceed"`
	Generation     uint64                    `json:"generation"`
	Result         *models.CalculationResult `json:"result,omitempty"`
	Submission     *Submission               `json:"submission,omitempty"`
	ExpiresAt      time.Time                 `json:"expires_at"`
}
