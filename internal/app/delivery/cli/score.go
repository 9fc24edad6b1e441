package cli

import (
	"calculator-service/internal/app/contracts"
	"calculator-service/internal/app/models"
	"calculator-service/internal/app/services/core/framework"
	"calculator-service/internal/app/services/shared/validation"
	"calculator-service/internal/pkg/exceptions"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// AnswersFile is the YAML document read by `calcctl score`:
//
//	type: audit
//	patient:
//	  age: 42
//	  gender: male
//	answers:
//	  q1: 2
//	  q2: null
type AnswersFile struct {
	Type    models.CalculatorType `yaml:"type"`
	Patient *models.PatientData   `yaml:"patient"`
	Answers map[string]*float64   `yaml:"answers"`
}

func (a *app) newScoreCommand(registry contracts.ScoringRegistry) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score an answers file",
		Long: `Score reads a YAML answers file, validates it against the calculator
configuration and prints the result. Answers missing from the file keep the
calculator defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				raw []byte
				err error
			)
			if file == "-" {
				raw, err = io.ReadAll(cmd.InOrStdin())
			} else {
				raw, err = os.ReadFile(file)
			}
			if err != nil {
				return fmt.Errorf("read answers file: %w", err)
			}
			return a.score(cmd, registry, raw)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "answers YAML file, - for stdin")
	cmd.MarkFlagRequired("file")
	return cmd
}

func (a *app) score(cmd *cobra.Command, registry contracts.ScoringRegistry, raw []byte) error {
	var answersFile AnswersFile
	if err := yaml.Unmarshal(raw, &answersFile); err != nil {
		return fmt.Errorf("parse answers file: %w", err)
	}
	if answersFile.Type == "" {
		return errors.New("answers file has no calculator type")
	}

	config, err := a.catalog.Get(answersFile.Type)
	if err != nil {
		return fmt.Errorf("unknown calculator type %q", answersFile.Type)
	}

	calculator, err := framework.NewCalculator(config, registry, nil, validation.NewSchemaValidator(), a.log)
	if err != nil {
		return err
	}
	if answersFile.Patient != nil {
		calculator.SetPatient(*answersFile.Patient)
	}
	for key, value := range answersFile.Answers {
		calculator.SetAnswer(key, value)
	}

	result, err := calculator.SubmitCalculation(cmd.Context())
	if err != nil {
		var validationErr *exceptions.ValidationError
		if errors.As(err, &validationErr) {
			printViolations(cmd.ErrOrStderr(), validationErr.Fields)
		}
		return err
	}

	printResult(cmd.OutOrStdout(), config, result)
	return nil
}
