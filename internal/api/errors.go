package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/studysmart/internal/api/shared"
	"github.com/phrazzld/studysmart/internal/domain"
	"github.com/phrazzld/studysmart/internal/history"
	"github.com/phrazzld/studysmart/internal/quiz"
	"github.com/phrazzld/studysmart/internal/redact"
	"github.com/phrazzld/studysmart/internal/service"
	"github.com/phrazzld/studysmart/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var genErr *service.GenerationError
	var validationErrs validator.ValidationErrors

	switch {
	// Generator failures may wrap contract validation errors; match them first.
	case errors.As(err, &genErr):
		return http.StatusBadGateway

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidContentType),
		errors.Is(err, quiz.ErrNoQuestions),
		errors.Is(err, shared.ErrEmptyBody),
		errors.As(err, &validationErrs):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, history.ErrItemNotFound),
		errors.Is(err, store.ErrRecordNotFound):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var genErr *service.GenerationError
	var validationErr *domain.ValidationError
	var validationErrs validator.ValidationErrors

	switch {
	// Generator messages can echo request details back, so they are redacted.
	case errors.As(err, &genErr):
		return redact.String(genErr.Message)

	case errors.As(err, &validationErrs):
		return SanitizeValidationError(err)

	// Domain validation messages name only the offending field.
	case errors.As(err, &validationErr):
		return validationErr.Error()

	case errors.Is(err, domain.ErrInvalidContentType):
		return "Invalid content type"

	case errors.Is(err, quiz.ErrNoQuestions):
		return "Quiz has no questions"

	case errors.Is(err, shared.ErrEmptyBody):
		return "Request body is required"

	case errors.Is(err, history.ErrItemNotFound),
		errors.Is(err, store.ErrRecordNotFound):
		return "History item not found"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from request validation
// errors and returns a user-friendly message naming the first failed field.
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return "Validation error"
	}

	fe := validationErrs[0]
	if fe.Tag() == "" {
		return fmt.Sprintf("Invalid %s", fe.Field())
	}
	return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe.Tag()))
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "len":
		return "wrong number of items"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
