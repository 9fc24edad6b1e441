package sessions

import (
	"calculator-service/internal/app/contracts"
	"calculator-service/internal/app/models"
	"calculator-service/internal/app/services/core/catalog"
	"calculator-service/internal/app/services/core/framework"
	"calculator-service/internal/pkg/constvars"
	"calculator-service/internal/pkg/dto/requests"
	"calculator-service/internal/pkg/dto/responses"
	"calculator-service/internal/pkg/exceptions"
	"calculator-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

type sessionUsecase struct {
	Store     *Store
	Catalog   *catalog.Catalog
	Registry  contracts.ScoringRegistry
	Submitter contracts.Submitter
	Validator contracts.PayloadValidator
	Log       *zap.Logger
}

func NewSessionUsecase(
	store *Store,
	calculatorCatalog *catalog.Catalog,
	registry contracts.ScoringRegistry,
	submitter contracts.Submitter,
	validator contracts.PayloadValidator,
	logger *zap.Logger,
) contracts.SessionUsecase {
	return &sessionUsecase{
		Store:     store,
		Catalog:   calculatorCatalog,
		Registry:  registry,
		Submitter: submitter,
		Validator: validator,
		Log:       logger,
	}
}

func (uc *sessionUsecase) CreateSession(ctx context.Context, request *requests.CreateSession) (*responses.Session, error) {
	config, err := uc.Catalog.Get(request.CalculatorType)
	if err != nil {
		return nil, err
	}

	calculator, err := framework.NewCalculator(config, uc.Registry, uc.Submitter, uc.Validator, uc.Log)
	if err != nil {
		return nil, exceptions.ErrCalculatorConfiguration(err)
	}

	if request.Patient != nil {
		patient := calculator.PatientData()
		patient.Name = request.Patient.Name
		if request.Patient.Age != nil {
			patient.Age = *request.Patient.Age
		}
		if request.Patient.Gender != nil {
			patient.Gender = models.GenderPtr(models.Gender(*request.Patient.Gender))
		}
		calculator.SetPatient(patient)
	}

	session := uc.Store.Put(calculator.ID(), calculator)
	uc.Log.Info("sessionUsecase.CreateSession created session",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingSessionIDKey, session.ID),
		zap.String(constvars.LoggingCalculatorTypeKey, string(config.Type)),
	)
	return buildSessionResponse(session, nil), nil
}

func (uc *sessionUsecase) GetSession(ctx context.Context, sessionID string) (*responses.Session, error) {
	session, err := uc.findSession(sessionID)
	if err != nil {
		return nil, err
	}
	return buildSessionResponse(session, nil), nil
}

func (uc *sessionUsecase) SetFieldValues(ctx context.Context, sessionID string, request *requests.SetFieldValues) (*responses.Session, error) {
	session, err := uc.findSession(sessionID)
	if err != nil {
		return nil, err
	}

	updates := make([]framework.FieldUpdate, 0, len(request.Fields))
	for _, field := range request.Fields {
		updates = append(updates, framework.FieldUpdate{Bucket: field.Bucket, Key: field.Key, Value: field.Value})
	}
	if err := session.Calculator.SetFieldValues(updates); err != nil {
		return nil, exceptions.BuildNewCustomError(err, constvars.StatusBadRequest, err.Error(), constvars.ErrDevInvalidInput)
	}
	return buildSessionResponse(session, nil), nil
}

// SubmitCalculation maps a degraded completion to a successful response with
// a failed submission status.
func (uc *sessionUsecase) SubmitCalculation(ctx context.Context, sessionID string) (*responses.Session, error) {
	session, err := uc.findSession(sessionID)
	if err != nil {
		return nil, err
	}

	_, err = session.Calculator.SubmitCalculation(ctx)
	if err == nil {
		return buildSessionResponse(session, &responses.Submission{Status: uc.deliveredStatus()}), nil
	}

	var (
		validationErr *exceptions.ValidationError
		configErr     *exceptions.ConfigurationError
		failure       *exceptions.SubmissionFailure
	)
	switch {
	case errors.Is(err, exceptions.ErrCalculationDiscarded):
		return nil, exceptions.ErrSubmissionConflict(err)
	case errors.Is(err, exceptions.ErrSubmissionPending):
		return buildSessionResponse(session, &responses.Submission{
			Status:  constvars.SubmissionStatusPending,
			Message: constvars.SubmitCalculationPendingMessage,
		}), nil
	case errors.As(err, &failure):
		return buildSessionResponse(session, &responses.Submission{
			Status:  constvars.SubmissionStatusFailed,
			Message: constvars.SubmitCalculationDegradedMessage,
		}), nil
	case errors.As(err, &validationErr):
		return nil, exceptions.ErrCalculationValidation(validationErr)
	case errors.Is(err, exceptions.ErrSubmissionInProgress):
		return nil, exceptions.ErrSubmissionConflict(err)
	case errors.As(err, &configErr):
		return nil, exceptions.ErrCalculatorConfiguration(err)
	case errors.Is(err, context.DeadlineExceeded):
		return nil, exceptions.ErrServerDeadlineExceeded(err)
	}
	return nil, exceptions.ErrScoring(err)
}

func (uc *sessionUsecase) deliveredStatus() string {
	if uc.Submitter == nil {
		return constvars.SubmissionStatusSkipped
	}
	return constvars.SubmissionStatusDelivered
}

func (uc *sessionUsecase) ResetCalculator(ctx context.Context, sessionID string) (*responses.Session, error) {
	session, err := uc.findSession(sessionID)
	if err != nil {
		return nil, err
	}
	session.Calculator.ResetCalculator()
	return buildSessionResponse(session, nil), nil
}

func (uc *sessionUsecase) DeleteSession(ctx context.Context, sessionID string) error {
	if !uc.Store.Delete(sessionID) {
		return exceptions.ErrSessionNotFound(fmt.Errorf("session %s does not exist", sessionID), sessionID)
	}
	uc.Log.Info("sessionUsecase.DeleteSession deleted session",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return nil
}

func (uc *sessionUsecase) findSession(sessionID string) (*Session, error) {
	session, ok := uc.Store.Get(sessionID)
	if !ok {
		return nil, exceptions.ErrSessionNotFound(fmt.Errorf("session %s does not exist or expired", sessionID), sessionID)
	}
	return session, nil
}

func buildSessionResponse(session *Session, submission *responses.Submission) *responses.Session {
	snapshot := session.Calculator.Snapshot()
	return &responses.Session{
		SessionID:      session.ID,
		CalculatorType: snapshot.CalculatorType,
		Patient:        snapshot.Patient,
		Answers:        snapshot.Answers,
		Steps:          session.Calculator.Steps(),
		State:          snapshot.State,
		Phase:          snapshot.Phase,
		CanProceed:     snapshot.CanProceed,
		Generation:     snapshot.Generation,
		Result:         snapshot.Result,
		Submission:     submission,
		ExpiresAt:      session.ExpiresAt,
	}
}
