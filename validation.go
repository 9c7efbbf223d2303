package investlab

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidationError collects the field-level failures of a submitted form.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// RegisterForm carries the fields of the registration form. Only name,
// email and the password pair are mandatory; the profile fields are free
// text, as in the registration screen.
type RegisterForm struct {
	Name          string `validate:"required"`
	Email         string `validate:"required,email"`
	Password      string `validate:"required,min=6"`
	Confirm       string `validate:"required,eqfield=Password"`
	DOB           string `validate:"omitempty,datetime=2006-01-02"`
	Mobile        string
	Gender        string
	WorkingStatus string
}

// Validate checks the form and returns a ValidationError listing every
// failure, or nil.
func (f RegisterForm) Validate() error {
	return toValidationError(validate.Struct(f))
}

// ResetForm carries the new password pair of the reset form.
type ResetForm struct {
	Password string `validate:"required,min=6"`
	Confirm  string `validate:"required,eqfield=Password"`
}

// Validate checks the form and returns a ValidationError listing every
// failure, or nil.
func (f ResetForm) Validate() error {
	return toValidationError(validate.Struct(f))
}

// toValidationError converts validator failures into user-facing messages.
func toValidationError(err error) error {
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}
	ve := &ValidationError{}
	for _, fe := range errs {
		ve.Messages = append(ve.Messages, message(fe))
	}
	return ve
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", strings.ToLower(fe.Field()))
	case "email":
		return "invalid email address"
	case "min":
		return fmt.Sprintf("password must be at least %s characters", fe.Param())
	case "eqfield":
		return "passwords do not match"
	case "datetime":
		return fmt.Sprintf("invalid date of birth, want %s", fe.Param())
	default:
		return fmt.Sprintf("invalid %s", strings.ToLower(fe.Field()))
	}
}
