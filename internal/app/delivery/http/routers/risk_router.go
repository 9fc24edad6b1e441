package routers

import (
	"calculator-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachRiskRoutes(router chi.Router, calculatorController *controllers.CalculatorController) {
	router.Post("/cardiovascular", calculatorController.EvaluateCardiovascularRisk)
}
