package routers

import (
	"calculator-service/internal/app/config"
	"calculator-service/internal/app/delivery/http/controllers"
	"calculator-service/internal/app/delivery/http/middlewares"
	"calculator-service/internal/pkg/constvars"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	accessLogger *logrus.Logger,
	middlewares *middlewares.Middlewares,
	calculatorController *controllers.CalculatorController,
	sessionController *controllers.SessionController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.CORSAllowedOrigins,
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodPut, constvars.MethodDelete, constvars.MethodOptions},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderContentType, constvars.HeaderXRequestID, constvars.HeaderXCSRFToken},
		ExposedHeaders:   []string{constvars.HeaderLink, constvars.HeaderXRequestID},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.GlobalRateLimit())
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	if accessLogger != nil {
		router.Use(middlewares.RequestLogger(internalConfig.App, accessLogger))
	}
	router.Use(middlewares.ErrorHandler)

	submitLimiter := middlewares.SubmitRateLimiter()

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route(fmt.Sprintf("/%s", constvars.ResourceCalculators), func(r chi.Router) {
				attachCalculatorRoutes(r, calculatorController)
			})

			r.Route(fmt.Sprintf("/%s", constvars.ResourceSessions), func(r chi.Router) {
				attachSessionRoutes(r, submitLimiter, sessionController)
			})

			r.Route(fmt.Sprintf("/%s", constvars.ResourceRisk), func(r chi.Router) {
				attachRiskRoutes(r, calculatorController)
			})
		})
	})
}
