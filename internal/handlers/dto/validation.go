package dto

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldErrors extrai os erros de campo de um erro de binding do Gin.
// Retorna nil quando o erro não veio do validator (JSON malformado etc.)
func FieldErrors(err error) []ValidationError {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	fields := make([]ValidationError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields = append(fields, ValidationError{
			Field:   fieldErr.Field(),
			Message: fieldErr.Error(),
			Tag:     fieldErr.Tag(),
			Value:   fmt.Sprintf("%v", fieldErr.Value()),
		})
	}
	return fields
}
