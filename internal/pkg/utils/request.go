package utils

import (
	"calculator-service/internal/pkg/exceptions"
	"net/http"

	"github.com/goccy/go-json"
)

// DecodeAndValidate reads a JSON body into request and runs its validate tags.
func DecodeAndValidate(r *http.Request, request interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	if err := ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
