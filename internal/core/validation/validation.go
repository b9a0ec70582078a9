// Package validation runs struct-tag validation on drafts and turns failures
// into apperror validation errors.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"recyclehub/internal/core/apperror"
	"recyclehub/internal/core/types"
)

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// Report json names instead of Go field names.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		// Amounts are validated as plain numbers (gte=0 etc).
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if a, ok := field.Interface().(types.Amount); ok {
				return a.InexactFloat64()
			}
			return nil
		}, types.Amount{})

		instance = v
	})
	return instance
}

// Struct validates v and returns the first failure as *apperror.AppError.
func Struct(v any) error {
	err := get().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperror.NewValidation("invalid input").WithCause(err)
	}

	first := verrs[0]
	return apperror.NewValidation(message(first)).
		WithDetail("field", first.Field()).
		WithDetail("rule", first.Tag())
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	case "gte":
		if fe.Param() == "0" {
			return fe.Field() + " must not be negative"
		}
		return fe.Field() + " must be at least " + fe.Param()
	case "number", "numeric":
		return fe.Field() + " must be a number"
	case "datetime":
		return fe.Field() + " must match " + fe.Param()
	}
	return fe.Field() + " is invalid"
}
