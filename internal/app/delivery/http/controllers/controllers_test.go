package controllers

import (
	"bytes"
	"calculator-service/internal/app/models"
	"calculator-service/internal/app/services/core/calculators"
	"calculator-service/internal/app/services/core/catalog"
	"calculator-service/internal/app/services/core/scoring"
	"calculator-service/internal/app/services/core/sessions"
	"calculator-service/internal/app/services/shared/validation"
	"calculator-service/internal/pkg/constvars"
	"calculator-service/internal/pkg/dto/requests"
	"calculator-service/internal/pkg/dto/responses"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter() *chi.Mux {
	logger := zap.NewNop()
	calculatorCatalog := catalog.New()
	calculatorController := NewCalculatorController(logger, calculators.NewCalculatorUsecase(calculatorCatalog, logger))
	sessionController := NewSessionController(logger, sessions.NewSessionUsecase(
		sessions.NewStore(time.Hour),
		calculatorCatalog,
		scoring.NewRegistry(),
		nil,
		validation.NewSchemaValidator(),
		logger,
	))

	router := chi.NewRouter()
	router.Get("/calculators", calculatorController.ListCalculators)
	router.Get("/calculators/{calculator_type}", calculatorController.GetCalculator)
	router.Post("/risk/cardiovascular", calculatorController.EvaluateCardiovascularRisk)
	router.Post("/sessions", sessionController.CreateSession)
	router.Get("/sessions/{session_id}", sessionController.GetSession)
	router.Put("/sessions/{session_id}/fields", sessionController.SetFieldValues)
	router.Post("/sessions/{session_id}/submit", sessionController.SubmitCalculation)
	router.Post("/sessions/{session_id}/reset", sessionController.ResetCalculator)
	router.Delete("/sessions/{session_id}", sessionController.DeleteSession)
	return router
}

func do(t *testing.T, router http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func intPtr(v int) *int {
	return &v
}

func TestCalculatorController(t *testing.T) {
	router := newTestRouter()

	t.Run("List", func(t *testing.T) {
		rec, env := do(t, router, http.MethodGet, "/calculators", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		var summaries []responses.CalculatorSummary
		require.NoError(t, json.Unmarshal(env.Data, &summaries))
		assert.Len(t, summaries, len(catalog.New().List()))
	})

	t.Run("Get known", func(t *testing.T) {
		rec, env := do(t, router, http.MethodGet, "/calculators/who5", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		var calculator responses.Calculator
		require.NoError(t, json.Unmarshal(env.Data, &calculator))
		assert.Equal(t, models.CalculatorTypeWHO5, calculator.Type)
	})

	t.Run("Get unknown", func(t *testing.T) {
		rec, env := do(t, router, http.MethodGet, "/calculators/nope", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.False(t, env.Success)
	})

	t.Run("Cardiovascular risk", func(t *testing.T) {
		rec, env := do(t, router, http.MethodPost, "/risk/cardiovascular", requests.CardiovascularRisk{
			Gender:  "male",
			Age:     62,
			Current: requests.RiskFactors{Smoker: true, SystolicBP: 165, LDL: 5.5},
			Target:  &requests.RiskFactors{Smoker: false, SystolicBP: 125, LDL: 2.5},
		})
		assert.Equal(t, http.StatusOK, rec.Code)
		var result responses.CardiovascularRisk
		require.NoError(t, json.Unmarshal(env.Data, &result))
		assert.InDelta(t, 12.2, result.CurrentRisk, 1e-9)
		assert.Less(t, result.TargetRisk, result.CurrentRisk)
	})

	t.Run("Cardiovascular risk rejects bad input", func(t *testing.T) {
		rec, _ := do(t, router, http.MethodPost, "/risk/cardiovascular", map[string]interface{}{"gender": "other", "age": 10})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSessionController(t *testing.T) {
	router := newTestRouter()

	rec, env := do(t, router, http.MethodPost, "/sessions", requests.CreateSession{
		CalculatorType: models.CalculatorTypeWHO5,
		Patient:        &requests.PatientInput{Age: intPtr(30)},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var session responses.Session
	require.NoError(t, json.Unmarshal(env.Data, &session))
	require.NotEmpty(t, session.SessionID)
	base := "/sessions/" + session.SessionID

	t.Run("Submit before answering is 422", func(t *testing.T) {
		rec, env := do(t, router, http.MethodPost, base+"/submit", nil)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.False(t, env.Success)
	})

	t.Run("Set fields rejects an empty list", func(t *testing.T) {
		rec, _ := do(t, router, http.MethodPut, base+"/fields", requests.SetFieldValues{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Answer and submit", func(t *testing.T) {
		fields := requests.SetFieldValues{}
		for _, id := range scoring.WHO5Fields {
			fields.Fields = append(fields.Fields, requests.FieldValue{Bucket: models.BucketCalculator, Key: id, Value: 5})
		}
		rec, _ := do(t, router, http.MethodPut, base+"/fields", fields)
		require.Equal(t, http.StatusOK, rec.Code)

		rec, env := do(t, router, http.MethodPost, base+"/submit", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, constvars.SubmitCalculationSuccessMessage, env.Message)
		var submitted responses.Session
		require.NoError(t, json.Unmarshal(env.Data, &submitted))
		require.NotNil(t, submitted.Result)
		assert.Equal(t, float64(100), submitted.Result.Score)
		assert.Equal(t, models.PhaseCompleteSuccess, submitted.Phase)
	})

	t.Run("Reset", func(t *testing.T) {
		rec, env := do(t, router, http.MethodPost, base+"/reset", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var reset responses.Session
		require.NoError(t, json.Unmarshal(env.Data, &reset))
		assert.Nil(t, reset.Result)
		assert.Equal(t, models.PhaseIdle, reset.Phase)
	})

	t.Run("Delete then get is 404", func(t *testing.T) {
		rec, _ := do(t, router, http.MethodDelete, base, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec, _ = do(t, router, http.MethodGet, base, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeadlineMapping(t *testing.T) {
	rec := httptest.NewRecorder()
	writeUsecaseError(zap.NewNop(), rec, context.DeadlineExceeded)
	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
}
