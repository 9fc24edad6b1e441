// Package catalog declares the configuration of every bundled calculator.
package catalog

import (
	"calculator-service/internal/app/models"
	"calculator-service/internal/pkg/exceptions"
	"fmt"
	"sort"
)

// Catalog is a read-only set of calculator configs keyed by type.
type Catalog struct {
	configs map[models.CalculatorType]*models.CalculatorConfig
}

// New returns the catalog of all bundled calculators.
func New() *Catalog {
	return NewWith(
		auditConfig(),
		epdsConfig(),
		gcsConfig(),
		ipssConfig(),
		puqeConfig(),
		who5Config(),
		westleyCroupConfig(),
		danpssConfig(),
		cardiovascularConfig(),
		pediatricDosingConfig(),
	)
}

// NewWith builds a catalog from explicit configs. Later duplicates win.
func NewWith(configs ...*models.CalculatorConfig) *Catalog {
	c := &Catalog{configs: make(map[models.CalculatorType]*models.CalculatorConfig, len(configs))}
	for _, config := range configs {
		c.configs[config.Type] = config
	}
	return c
}

// List returns every config ordered by type.
func (c *Catalog) List() []*models.CalculatorConfig {
	configs := make([]*models.CalculatorConfig, 0, len(c.configs))
	for _, config := range c.configs {
		configs = append(configs, config)
	}
	sort.Slice(configs, func(i, j int) bool { return configs[i].Type < configs[j].Type })
	return configs
}

// Get returns the config of calculatorType.
func (c *Catalog) Get(calculatorType models.CalculatorType) (*models.CalculatorConfig, error) {
	config, ok := c.configs[calculatorType]
	if !ok {
		return nil, exceptions.ErrCalculatorNotFound(
			fmt.Errorf("calculator %q is not in the catalog", calculatorType),
			string(calculatorType),
		)
	}
	return config, nil
}

func intPtr(v int) *int {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}

// questionFields declares one field per id, all on stepID with the same constraint.
func questionFields(stepID, constraint string, ids []string, labels []string) []models.FieldDefinition {
	fields := make([]models.FieldDefinition, 0, len(ids))
	for i, id := range ids {
		label := id
		if i < len(labels) {
			label = labels[i]
		}
		fields = append(fields, models.FieldDefinition{
			ID:         id,
			StepID:     stepID,
			Label:      label,
			Constraint: constraint,
		})
	}
	return fields
}
