package exceptions

import (
	"calculator-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldMessage renders the client message for a single failed tag.
func FieldMessage(tag, param string) string {
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		customMessage = "is invalid"
	}
	if constvars.TagsWithParams[tag] {
		if tag == "oneof" || tag == "choice" {
			customMessage = strings.Replace(customMessage, "%s", strings.Join(strings.Fields(param), ", "), 1)
		} else {
			customMessage = strings.Replace(customMessage, "%s", param, 1)
		}
	}
	return customMessage
}

func FormatAllValidationErrors(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return constvars.ErrDevInvalidInput
	}

	var errors []string
	for _, err := range validationErrors {
		fieldName := strings.ToLower(err.Field())
		errors = append(errors, fieldName+" "+FieldMessage(err.Tag(), err.Param()))
	}
	return strings.Join(errors, ", ")
}

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		firstErr := validationErrors[0]
		fieldName := strings.ToLower(firstErr.Field())
		return fieldName + " " + FieldMessage(firstErr.Tag(), firstErr.Param())
	}
	return constvars.ErrDevInvalidInput
}
