package utils

import (
	"calculator-service/internal/app/models"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("gender", validateGender)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateGender(fl validator.FieldLevel) bool {
	return models.Gender(fl.Field().String()).IsValid()
}
