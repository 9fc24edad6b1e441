package routers

import (
	"bytes"
	"calculator-service/internal/app/config"
	"calculator-service/internal/app/delivery/http/controllers"
	"calculator-service/internal/app/delivery/http/middlewares"
	"calculator-service/internal/app/models"
	"calculator-service/internal/pkg/constvars"
	"calculator-service/internal/pkg/dto/requests"
	"calculator-service/internal/pkg/dto/responses"
	"calculator-service/internal/pkg/exceptions"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockCalculatorUsecase struct {
	mock.Mock
}

func (m *MockCalculatorUsecase) ListCalculators(ctx context.Context) ([]responses.CalculatorSummary, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).([]responses.CalculatorSummary)
	return result, args.Error(1)
}

func (m *MockCalculatorUsecase) GetCalculator(ctx context.Context, calculatorType models.CalculatorType) (*responses.Calculator, error) {
	args := m.Called(ctx, calculatorType)
	result, _ := args.Get(0).(*responses.Calculator)
	return result, args.Error(1)
}

func (m *MockCalculatorUsecase) EvaluateCardiovascularRisk(ctx context.Context, request *requests.CardiovascularRisk) (*responses.CardiovascularRisk, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.CardiovascularRisk)
	return result, args.Error(1)
}

type MockSessionUsecase struct {
	mock.Mock
}

func (m *MockSessionUsecase) CreateSession(ctx context.Context, request *requests.CreateSession) (*responses.Session, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.Session)
	return result, args.Error(1)
}

func (m *MockSessionUsecase) GetSession(ctx context.Context, sessionID string) (*responses.Session, error) {
	args := m.Called(ctx, sessionID)
	result, _ := args.Get(0).(*responses.Session)
	return result, args.Error(1)
}

func (m *MockSessionUsecase) SetFieldValues(ctx context.Context, sessionID string, request *requests.SetFieldValues) (*responses.Session, error) {
	args := m.Called(ctx, sessionID, request)
	result, _ := args.Get(0).(*responses.Session)
	return result, args.Error(1)
}

func (m *MockSessionUsecase) SubmitCalculation(ctx context.Context, sessionID string) (*responses.Session, error) {
	args := m.Called(ctx, sessionID)
	result, _ := args.Get(0).(*responses.Session)
	return result, args.Error(1)
}

func (m *MockSessionUsecase) ResetCalculator(ctx context.Context, sessionID string) (*responses.Session, error) {
	args := m.Called(ctx, sessionID)
	result, _ := args.Get(0).(*responses.Session)
	return result, args.Error(1)
}

func (m *MockSessionUsecase) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func newRouter(calculatorUsecase *MockCalculatorUsecase, sessionUsecase *MockSessionUsecase) *chi.Mux {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			Version:                  "v1",
			EndpointPrefix:           "api",
			Timezone:                 "UTC",
			MaxRequests:              1000,
			SubmitRateLimit:          2,
			SubmitRateLimitPer:       time.Minute,
			SubmitRateLimitBlockTime: time.Minute,
			CORSAllowedOrigins:       []string{"*"},
		},
	}

	router := chi.NewRouter()
	SetupRoutes(
		router,
		internalConfig,
		nil,
		middlewares.NewMiddlewares(logger, internalConfig),
		controllers.NewCalculatorController(logger, calculatorUsecase),
		controllers.NewSessionController(logger, sessionUsecase),
	)
	return router
}

func TestRoutes(t *testing.T) {
	t.Run("Health check", func(t *testing.T) {
		router := newRouter(new(MockCalculatorUsecase), new(MockSessionUsecase))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Calculator type reaches usecase", func(t *testing.T) {
		calculatorUsecase := new(MockCalculatorUsecase)
		calculatorUsecase.On("GetCalculator", mock.Anything, models.CalculatorTypeGCS).
			Return(&responses.Calculator{}, nil)
		router := newRouter(calculatorUsecase, new(MockSessionUsecase))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/calculators/gcs", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-id")
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "client-id", rec.Header().Get(constvars.HeaderXRequestID))
		calculatorUsecase.AssertExpectations(t)
	})

	t.Run("Generates a request id", func(t *testing.T) {
		calculatorUsecase := new(MockCalculatorUsecase)
		calculatorUsecase.On("ListCalculators", mock.Anything).Return([]responses.CalculatorSummary{}, nil)
		router := newRouter(calculatorUsecase, new(MockSessionUsecase))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/calculators", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get(constvars.HeaderXRequestID), constvars.REQUEST_ID_PREFIX)
	})

	t.Run("Session not found maps to 404", func(t *testing.T) {
		sessionUsecase := new(MockSessionUsecase)
		sessionUsecase.On("GetSession", mock.Anything, "missing").
			Return(nil, exceptions.ErrSessionNotFound(errors.New("missing"), "missing"))
		router := newRouter(new(MockCalculatorUsecase), sessionUsecase)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/sessions/missing", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		sessionUsecase.AssertExpectations(t)
	})

	t.Run("Create session validates body", func(t *testing.T) {
		router := newRouter(new(MockCalculatorUsecase), new(MockSessionUsecase))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/sessions", bytes.NewBufferString(`{}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Degraded submit answers 200 with degraded message", func(t *testing.T) {
		sessionUsecase := new(MockSessionUsecase)
		sessionUsecase.On("SubmitCalculation", mock.Anything, "s1").Return(&responses.Session{
			SessionID:  "s1",
			Submission: &responses.Submission{Status: constvars.SubmissionStatusFailed},
		}, nil)
		router := newRouter(new(MockCalculatorUsecase), sessionUsecase)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/sessions/s1/submit", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var body responses.ResponseDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, constvars.SubmitCalculationDegradedMessage, body.Message)
	})

	t.Run("Submit is throttled per client", func(t *testing.T) {
		sessionUsecase := new(MockSessionUsecase)
		sessionUsecase.On("SubmitCalculation", mock.Anything, "s1").Return(&responses.Session{SessionID: "s1"}, nil)
		router := newRouter(new(MockCalculatorUsecase), sessionUsecase)

		codes := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/sessions/s1/submit", nil))
			codes = append(codes, rec.Code)
		}

		assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
		sessionUsecase.AssertNumberOfCalls(t, "SubmitCalculation", 2)
	})

	t.Run("Handler panic is recovered", func(t *testing.T) {
		sessionUsecase := new(MockSessionUsecase)
		sessionUsecase.On("ResetCalculator", mock.Anything, "s1").Run(func(mock.Arguments) {
			panic("boom")
		})
		router := newRouter(new(MockCalculatorUsecase), sessionUsecase)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/sessions/s1/reset", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
