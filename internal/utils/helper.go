package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

func DecodeJSONBody(r *http.Request, dest any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}

	defer r.Body.Close()

	if len(body) == 0 {
		return errors.New("request body cannot be empty")
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("invalid JSON format: %w", err)
	}

	return nil
}

func ValidateStruct(validate *validator.Validate, data any) error {
	if err := validate.Struct(data); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return fmt.Errorf("validation error: %s", formatValidationErrors(validationErrs))
		}

		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

func formatValidationErrors(errs validator.ValidationErrors) string {
	var msgs []string

	for _, err := range errs {
		var message string

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("field %s is required", err.Field())
		case "email":
			message = fmt.Sprintf("field %s must be a valid email address", err.Field())
		case "url":
			message = fmt.Sprintf("field %s must be a valid URL", err.Field())
		case "min":
			message = fmt.Sprintf("field %s must be at least %s", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("field %s must be at most %s", err.Field(), err.Param())
		case "gte":
			message = fmt.Sprintf("field %s must be %s or more", err.Field(), err.Param())
		default:
			message = fmt.Sprintf("field %s is invalid: %s=%s", err.Field(), err.Tag(), err.Param())
		}

		msgs = append(msgs, message)
	}

	return strings.Join(msgs, "; ")
}
