// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// CustomValidator validates bound request structs against their `validate` tags.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns a validator that compares decimal.Decimal fields as numbers, so
// `gte=0` works on prices.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}

		return nil
	}, decimal.Decimal{})

	return &CustomValidator{validate: v}
}

// Validate implements echo.Validator. The error message lists every failing
// field as `field:tag`.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		parts = append(parts, fe.Field()+":"+fe.Tag())
	}

	return errors.New("invalid fields " + strings.Join(parts, ", "))
}
