package framework

import (
	"calculator-service/internal/app/models"
	"fmt"
	"strconv"
)

const (
	PatientKeyName   = "name"
	PatientKeyAge    = "age"
	PatientKeyGender = "gender"
)

// SetFieldValue writes value into the patient or calculator bucket. Values are
// only converted, not validated: validation happens on submit.
func (c *Calculator) SetFieldValue(bucket models.Bucket, key string, value interface{}) error {
	switch bucket {
	case models.BucketCalculator:
		answer, err := toAnswer(value)
		if err != nil {
			return fmt.Errorf("field %s: %w", key, err)
		}
		c.SetAnswer(key, answer)
		return nil
	case models.BucketPatient:
		return c.setPatientField(key, value)
	}
	return fmt.Errorf("unknown bucket %q", bucket)
}

// SetAnswer stores one answer. A nil answer marks the field unanswered.
func (c *Calculator) SetAnswer(key string, answer *float64) {
	c.mu.Lock()
	if answer == nil {
		c.answers[key] = nil
	} else {
		c.answers[key] = models.Float(*answer)
	}
	c.mu.Unlock()
	c.notify()
}

// SetPatient replaces the whole patient bag.
func (c *Calculator) SetPatient(patient models.PatientData) {
	c.mu.Lock()
	c.patient = patient.Clone()
	c.mu.Unlock()
	c.notify()
}

// FieldUpdate is one write of a SetFieldValues batch.
type FieldUpdate struct {
	Bucket models.Bucket
	Key    string
	Value  interface{}
}

// SetFieldValues applies a batch of writes in order. Every value is converted
// first; when one fails nothing is written.
func (c *Calculator) SetFieldValues(updates []FieldUpdate) error {
	c.mu.Lock()
	patient := c.patient.Clone()
	c.mu.Unlock()

	answers := make(map[string]*float64)
	patientChanged := false
	for _, update := range updates {
		switch update.Bucket {
		case models.BucketCalculator:
			answer, err := toAnswer(update.Value)
			if err != nil {
				return fmt.Errorf("field %s: %w", update.Key, err)
			}
			answers[update.Key] = answer
		case models.BucketPatient:
			if err := applyPatientField(&patient, update.Key, update.Value); err != nil {
				return err
			}
			patientChanged = true
		default:
			return fmt.Errorf("unknown bucket %q", update.Bucket)
		}
	}

	c.mu.Lock()
	if patientChanged {
		c.patient = patient
	}
	for key, answer := range answers {
		if answer == nil {
			c.answers[key] = nil
		} else {
			c.answers[key] = models.Float(*answer)
		}
	}
	c.mu.Unlock()
	c.notify()
	return nil
}

func (c *Calculator) setPatientField(key string, value interface{}) error {
	c.mu.Lock()
	patient := c.patient.Clone()
	c.mu.Unlock()

	if err := applyPatientField(&patient, key, value); err != nil {
		return err
	}
	c.SetPatient(patient)
	return nil
}

func applyPatientField(patient *models.PatientData, key string, value interface{}) error {
	switch key {
	case PatientKeyName:
		name, ok := value.(string)
		if !ok && value != nil {
			return fmt.Errorf("patient name: unsupported type %T", value)
		}
		patient.Name = name
	case PatientKeyAge:
		age, err := toAnswer(value)
		if err != nil {
			return fmt.Errorf("patient age: %w", err)
		}
		patient.Age = 0
		if age != nil {
			patient.Age = int(*age)
		}
	case PatientKeyGender:
		gender, err := toGender(value)
		if err != nil {
			return fmt.Errorf("patient gender: %w", err)
		}
		patient.Gender = gender
	default:
		return fmt.Errorf("unknown patient field %q", key)
	}
	return nil
}

func toAnswer(value interface{}) (*float64, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case *float64:
		return v, nil
	case float64:
		return models.Float(v), nil
	case float32:
		return models.Float(float64(v)), nil
	case int:
		return models.Float(float64(v)), nil
	case int64:
		return models.Float(float64(v)), nil
	case int32:
		return models.Float(float64(v)), nil
	case bool:
		if v {
			return models.Float(1), nil
		}
		return models.Float(0), nil
	case string:
		if v == "" {
			return nil, nil
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, err
		}
		return models.Float(parsed), nil
	}
	return nil, fmt.Errorf("unsupported type %T", value)
}

func toGender(value interface{}) (*models.Gender, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case *models.Gender:
		return v, nil
	case models.Gender:
		return models.GenderPtr(v), nil
	case string:
		if v == "" {
			return nil, nil
		}
		return models.GenderPtr(models.Gender(v)), nil
	}
	return nil, fmt.Errorf("unsupported type %T", value)
}
