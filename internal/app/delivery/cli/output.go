package cli

import (
	"calculator-service/internal/app/models"
	"calculator-service/internal/pkg/exceptions"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
)

func riskColor(level string) *color.Color {
	switch models.RiskLevel(level) {
	case models.RiskLevelMinimal, models.RiskLevelLow, models.RiskLevelMild:
		return color.New(color.FgGreen)
	case models.RiskLevelModerate, models.RiskLevelMedium:
		return color.New(color.FgYellow)
	case models.RiskLevelSevere, models.RiskLevelHigh:
		return color.New(color.FgRed)
	case models.RiskLevelVeryHigh:
		return color.New(color.FgRed, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}

func printResult(w io.Writer, config *models.CalculatorConfig, result *models.CalculationResult) {
	bold := color.New(color.Bold)

	bold.Fprintf(w, "%s\n", config.Name)
	fmt.Fprintf(w, "Score:          %s\n", formatNumber(result.Score))
	fmt.Fprintf(w, "Risk level:     %s\n", riskColor(string(result.RiskLevel)).Sprint(result.RiskLevel))
	fmt.Fprintf(w, "Interpretation: %s\n", result.Interpretation)

	if len(result.Recommendations) > 0 {
		fmt.Fprintln(w, "Recommendations:")
		for _, recommendation := range result.Recommendations {
			fmt.Fprintf(w, "  - %s\n", recommendation)
		}
	}

	if len(result.Details) > 0 {
		keys := make([]string, 0, len(result.Details))
		for key := range result.Details {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		fmt.Fprintln(w, "Details:")
		for _, key := range keys {
			fmt.Fprintf(w, "  %s: %v\n", key, formatDetail(result.Details[key]))
		}
	}
}

func printViolations(w io.Writer, violations []exceptions.FieldViolation) {
	red := color.New(color.FgRed)
	red.Fprintln(w, "Validation failed:")
	for _, violation := range violations {
		fmt.Fprintf(w, "  %s: %s\n", violation.Field, violation.Message)
	}
}

func formatNumber(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func formatDetail(v interface{}) interface{} {
	if f, ok := v.(float64); ok {
		return formatNumber(f)
	}
	return v
}
