// Package validation provides custom validation rules for the application.
package validation

import (
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/authgate/internal/errors"
)

var (
	// paramNameRegex matches lower snake_case identifiers such as auth_token
	paramNameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// ParamName validates a request parameter name (lower snake_case, starting with a letter)
var ParamName = validation.NewStringRuleWithError(
	func(s string) bool {
		return paramNameRegex.MatchString(s)
	},
	validation.NewError("validation_param_name", "must be a lower snake_case identifier"),
)
