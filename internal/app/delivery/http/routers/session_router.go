package routers

import (
	"calculator-service/internal/app/delivery/http/controllers"
	"calculator-service/internal/app/delivery/http/middlewares"
	"calculator-service/internal/pkg/constvars"
	"fmt"

	"github.com/go-chi/chi/v5"
)

func attachSessionRoutes(router chi.Router, submitLimiter *middlewares.RateLimiter, sessionController *controllers.SessionController) {
	router.Post("/", sessionController.CreateSession)

	router.Route(fmt.Sprintf("/{%s}", constvars.URLParamSessionID), func(r chi.Router) {
		r.Get("/", sessionController.GetSession)
		r.Delete("/", sessionController.DeleteSession)
		r.Put("/fields", sessionController.SetFieldValues)
		r.Post("/reset", sessionController.ResetCalculator)
		r.With(submitLimiter.Limit).Post("/submit", sessionController.SubmitCalculation)
	})
}
