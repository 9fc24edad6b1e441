package controllers

import (
	"calculator-service/internal/app/contracts"
	"calculator-service/internal/pkg/constvars"
	"calculator-service/internal/pkg/dto/requests"
	"calculator-service/internal/pkg/utils"
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SessionController struct {
	Log            *zap.Logger
	SessionUsecase contracts.SessionUsecase
}

func NewSessionController(logger *zap.Logger, sessionUsecase contracts.SessionUsecase) *SessionController {
	return &SessionController{
		Log:            logger,
		SessionUsecase: sessionUsecase,
	}
}

func (ctrl *SessionController) CreateSession(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("SessionController.CreateSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateSession)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		ctrl.Log.Debug("SessionController.CreateSession invalid request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.SessionUsecase.CreateSession(ctx, request)
	if err != nil {
		ctrl.Log.Debug("SessionController.CreateSession error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateSessionSuccessMessage, result)
}

func (ctrl *SessionController) GetSession(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.SessionUsecase.GetSession(ctx, sessionID)
	if err != nil {
		ctrl.Log.Debug("SessionController.GetSession error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSessionSuccessMessage, result)
}

func (ctrl *SessionController) SetFieldValues(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)

	request := new(requests.SetFieldValues)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		ctrl.Log.Debug("SessionController.SetFieldValues invalid request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.SessionUsecase.SetFieldValues(ctx, sessionID, request)
	if err != nil {
		ctrl.Log.Debug("SessionController.SetFieldValues error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SetFieldValueSuccessMessage, result)
}

// SubmitCalculation answers 200 for a degraded completion; the submission
// status in the body tells the caller the result was not logged.
func (ctrl *SessionController) SubmitCalculation(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)
	ctrl.Log.Info("SessionController.SubmitCalculation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.SessionUsecase.SubmitCalculation(ctx, sessionID)
	if err != nil {
		ctrl.Log.Debug("SessionController.SubmitCalculation error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	message := constvars.SubmitCalculationSuccessMessage
	if submission := result.Submission; submission != nil {
		switch {
		case submission.Message != "":
			message = submission.Message
		case submission.Status == constvars.SubmissionStatusFailed:
			message = constvars.SubmitCalculationDegradedMessage
		}
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, result)
}

func (ctrl *SessionController) ResetCalculator(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.SessionUsecase.ResetCalculator(ctx, sessionID)
	if err != nil {
		ctrl.Log.Debug("SessionController.ResetCalculator error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResetCalculatorSuccessMessage, result)
}

func (ctrl *SessionController) DeleteSession(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := ctrl.SessionUsecase.DeleteSession(ctx, sessionID); err != nil {
		ctrl.Log.Debug("SessionController.DeleteSession error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteSessionSuccessMessage, nil)
}
