package routers

import (
	"calculator-service/internal/app/delivery/http/controllers"
	"calculator-service/internal/pkg/constvars"
	"fmt"

	"github.com/go-chi/chi/v5"
)

func attachCalculatorRoutes(router chi.Router, calculatorController *controllers.CalculatorController) {
	router.Get("/", calculatorController.ListCalculators)
	router.Get(fmt.Sprintf("/{%s}", constvars.URLParamCalculatorType), calculatorController.GetCalculator)
}
