package generation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateInput checks a contract input (LearningContentInput or QuizInput).
// Failures wrap ErrInvalidRequest.
func ValidateInput(in any) error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidRequest, describe(err))
	}
	return nil
}

// ValidateOutput checks a contract output (LearningContentOutput or
// QuizOutput). Failures wrap ErrInvalidResponse.
func ValidateOutput(out any) error {
	if out == nil {
		return fmt.Errorf("%w: nil output", ErrInvalidResponse)
	}
	if err := validate.Struct(out); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidResponse, describe(err))
	}
	return nil
}

// describe flattens validator errors into "field failed tag" fragments.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
