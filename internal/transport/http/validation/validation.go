// Package validation checks request payloads against declarative struct tags.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"staff-api/internal/entities"

	"github.com/go-playground/validator/v10"
)

// Error is a BadRequest condition carrying field-level messages.
type Error struct {
	Messages []string
}

// NewError builds an Error from messages.
func NewError(messages ...string) *Error {
	return &Error{Messages: messages}
}

func (e *Error) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// Unwrap lets errors.Is match entities.ErrInvalidArgument.
func (e *Error) Unwrap() error {
	return entities.ErrInvalidArgument
}

// Validator wraps a configured go-playground validator.
type Validator struct {
	v *validator.Validate
}

// New returns a Validator reporting fields by their json names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return &Validator{v: v}
}

// Struct validates s and returns *Error listing every violated constraint.
func (v *Validator) Struct(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate: %w", err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, message(fe))
	}
	return NewError(msgs...)
}

// RoleValues renders the accepted roles for error messages.
func RoleValues() string {
	vals := make([]string, 0, len(entities.Roles))
	for _, r := range entities.Roles {
		vals = append(vals, string(r))
	}
	return strings.Join(vals, ", ")
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s should not be empty", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be an email", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of the following values: %s",
			fe.Field(), strings.Join(strings.Fields(fe.Param()), ", "))
	default:
		return fmt.Sprintf("%s failed on the %s rule", fe.Field(), fe.Tag())
	}
}
