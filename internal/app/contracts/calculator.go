package contracts

import (
	"calculator-service/internal/app/models"
	"calculator-service/internal/pkg/dto/requests"
	"calculator-service/internal/pkg/dto/responses"
	"context"
)

type CalculatorUsecase interface {
	ListCalculators(ctx context.Context) ([]responses.CalculatorSummary, error)
	GetCalculator(ctx context.Context, calculatorType models.CalculatorType) (*responses.Calculator, error)
	EvaluateCardiovascularRisk(ctx context.Context, request *requests.CardiovascularRisk) (*responses.CardiovascularRisk, error)
}

type SessionUsecase interface {
	CreateSession(ctx context.Context, request *requests.CreateSession) (*responses.Session, error)
	GetSession(ctx context.Context, sessionID string) (*responses.Session, error)
	SetFieldValues(ctx context.Context, sessionID string, request *requests.SetFieldValues) (*responses.Session, error)
	SubmitCalculation(ctx context.Context, sessionID string) (*responses.Session, error)
	ResetCalculator(ctx context.Context, sessionID string) (*responses.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
