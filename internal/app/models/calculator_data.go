package models

import "sort"

// CalculatorData maps a field id to its answer. A nil value means unanswered.
type CalculatorData map[string]*float64

// Float returns a pointer to v, for building answers.
func Float(v float64) *float64 {
	return &v
}

// IsAnswered reports whether key holds a non-null answer.
func (d CalculatorData) IsAnswered(key string) bool {
	value, ok := d[key]
	return ok && value != nil
}

// Value returns the answer for key, treating an unanswered field as zero.
func (d CalculatorData) Value(key string) float64 {
	if value := d[key]; value != nil {
		return *value
	}
	return 0
}

// Sum adds the answers of keys, unanswered ones counting as zero.
func (d CalculatorData) Sum(keys ...string) float64 {
	var total float64
	for _, key := range keys {
		total += d.Value(key)
	}
	return total
}

// Clone returns a deep copy of d.
func (d CalculatorData) Clone() CalculatorData {
	clone := make(CalculatorData, len(d))
	for key, value := range d {
		if value == nil {
			clone[key] = nil
			continue
		}
		clone[key] = Float(*value)
	}
	return clone
}

// Keys returns the field ids in lexical order.
func (d CalculatorData) Keys() []string {
	keys := make([]string, 0, len(d))
	for key := range d {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
