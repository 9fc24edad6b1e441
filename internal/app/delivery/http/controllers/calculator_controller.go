package controllers

import (
	"calculator-service/internal/app/contracts"
	"calculator-service/internal/app/models"
	"calculator-service/internal/pkg/constvars"
	"calculator-service/internal/pkg/dto/requests"
	"calculator-service/internal/pkg/utils"
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CalculatorController struct {
	Log               *zap.Logger
	CalculatorUsecase contracts.CalculatorUsecase
}

func NewCalculatorController(logger *zap.Logger, calculatorUsecase contracts.CalculatorUsecase) *CalculatorController {
	return &CalculatorController{
		Log:               logger,
		CalculatorUsecase: calculatorUsecase,
	}
}

func (ctrl *CalculatorController) ListCalculators(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("CalculatorController.ListCalculators called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.CalculatorUsecase.ListCalculators(ctx)
	if err != nil {
		ctrl.Log.Error("CalculatorController.ListCalculators error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCalculatorsSuccessMessage, result)
}

func (ctrl *CalculatorController) GetCalculator(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	calculatorType := chi.URLParam(r, constvars.URLParamCalculatorType)
	ctrl.Log.Info("CalculatorController.GetCalculator called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCalculatorTypeKey, calculatorType),
	)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.CalculatorUsecase.GetCalculator(ctx, models.CalculatorType(calculatorType))
	if err != nil {
		ctrl.Log.Debug("CalculatorController.GetCalculator error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCalculatorSuccessMessage, result)
}

func (ctrl *CalculatorController) EvaluateCardiovascularRisk(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("CalculatorController.EvaluateCardiovascularRisk called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CardiovascularRisk)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		ctrl.Log.Debug("CalculatorController.EvaluateCardiovascularRisk invalid request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.CalculatorUsecase.EvaluateCardiovascularRisk(ctx, request)
	if err != nil {
		ctrl.Log.Error("CalculatorController.EvaluateCardiovascularRisk error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.EvaluateCardiovascularRiskMessage, result)
}
