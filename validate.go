package omniagentpay

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate checks operation parameters before any request is built.
// Field names in messages are the snake_case names used on the wire.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("amount", validateAmount); err != nil {
		panic(err)
	}
	return v
}

// validateAmount accepts positive decimal strings.
func validateAmount(fl validator.FieldLevel) bool {
	return Amount(fl.Field().String()).IsPositive()
}

// validateParams validates params and reports the first failing field as a
// validation error.
func validateParams(params any) error {
	err := validate.Struct(params)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return NewValidationError(err.Error(), nil).WithCause(err)
	}

	fe := fieldErrs[0]
	return NewValidationError(fieldMessage(fe), map[string]any{
		"field": fe.Field(),
		"rule":  fe.Tag(),
	}).WithCause(err)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "amount":
		return fmt.Sprintf("%s must be a positive number", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// requireID rejects an empty identifier passed as a positional argument.
func requireID(field, value string) error {
	if err := validate.Var(value, "required"); err != nil {
		return NewValidationError(field+" is required", map[string]any{
			"field": field,
			"rule":  "required",
		}).WithCause(err)
	}
	return nil
}
