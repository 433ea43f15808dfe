// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"livesales/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// RequestValidator implements echo.Validator.
type RequestValidator struct {
	validate *validator.Validate
}

// New returns a validator that reports fields by their json names and knows the
// domain enums (color_tag, order_source, payment_status, discount_type).
func New() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	mustRegister(v, "color_tag", func(fl validator.FieldLevel) bool {
		return entity.ColorTag(fl.Field().String()).IsValid()
	})
	mustRegister(v, "order_source", func(fl validator.FieldLevel) bool {
		return entity.OrderSource(fl.Field().String()).IsValid()
	})
	mustRegister(v, "payment_status", func(fl validator.FieldLevel) bool {
		return entity.PaymentStatus(fl.Field().String()).IsValid()
	})
	mustRegister(v, "discount_type", func(fl validator.FieldLevel) bool {
		return entity.DiscountType(fl.Field().String()).IsValid()
	})

	return &RequestValidator{validate: v}
}

// Validate runs struct validation and flattens the failures into one message.
func (rv *RequestValidator) Validate(i any) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			msgs = append(msgs, fe.Field()+" failed "+fe.Tag()+"="+fe.Param())

			continue
		}
		msgs = append(msgs, fe.Field()+" failed "+fe.Tag())
	}

	return errors.New(strings.Join(msgs, "; "))
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}
