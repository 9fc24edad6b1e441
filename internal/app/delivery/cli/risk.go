package cli

import (
	"calculator-service/internal/app/services/core/calculators"
	"calculator-service/internal/pkg/dto/requests"
	"calculator-service/internal/pkg/exceptions"
	"calculator-service/internal/pkg/utils"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func (a *app) newRiskCommand() *cobra.Command {
	request := &requests.CardiovascularRisk{}
	target := requests.RiskFactors{}

	cmd := &cobra.Command{
		Use:   "risk",
		Short: "Evaluate the 10-year cardiovascular risk",
		Long: `Risk estimates the 10-year cardiovascular risk from sex, age, smoking,
systolic blood pressure and LDL cholesterol. Target flags describe a treatment
scenario; unset target flags keep the current value.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("target-smoker") || flags.Changed("target-sbp") || flags.Changed("target-ldl") {
				if !flags.Changed("target-smoker") {
					target.Smoker = request.Current.Smoker
				}
				if !flags.Changed("target-sbp") {
					target.SystolicBP = request.Current.SystolicBP
				}
				if !flags.Changed("target-ldl") {
					target.LDL = request.Current.LDL
				}
				request.Target = &target
			}

			if err := utils.ValidateStruct(request); err != nil {
				return fmt.Errorf("invalid input: %s", exceptions.FormatAllValidationErrors(err))
			}

			usecase := calculators.NewCalculatorUsecase(a.catalog, a.log)
			result, err := usecase.EvaluateCardiovascularRisk(cmd.Context(), request)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			color.New(color.Bold).Fprintln(w, "Cardiovascular risk (10 years)")
			fmt.Fprintf(w, "Current risk:  %s%%\n", formatNumber(result.CurrentRisk))
			fmt.Fprintf(w, "Target risk:   %s%%\n", formatNumber(result.TargetRisk))
			fmt.Fprintf(w, "Risk group:    %s\n", riskColor(result.RiskLevel).Sprint(result.RiskGroup))
			fmt.Fprintf(w, "ARR:           %s percentage points\n", formatNumber(result.ARRPercentagePoints))
			fmt.Fprintf(w, "RRR:           %s%%\n", formatNumber(result.RRRPercent))
			fmt.Fprintf(w, "NNT:           %s\n", formatNumber(result.Reduction.NNT))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&request.Gender, "gender", "", "male or female")
	flags.IntVar(&request.Age, "age", 0, "age in years")
	flags.BoolVar(&request.Current.Smoker, "smoker", false, "current smoker")
	flags.Float64Var(&request.Current.SystolicBP, "sbp", 0, "systolic blood pressure (mmHg)")
	flags.Float64Var(&request.Current.LDL, "ldl", 0, "LDL cholesterol (mmol/L)")
	flags.BoolVar(&target.Smoker, "target-smoker", false, "smoker in the target scenario")
	flags.Float64Var(&target.SystolicBP, "target-sbp", 0, "target systolic blood pressure")
	flags.Float64Var(&target.LDL, "target-ldl", 0, "target LDL cholesterol")
	cmd.MarkFlagRequired("gender")
	cmd.MarkFlagRequired("age")
	cmd.MarkFlagRequired("sbp")
	cmd.MarkFlagRequired("ldl")
	return cmd
}
