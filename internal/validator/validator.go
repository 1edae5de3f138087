package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/dafibh/tabi/tabi-backend/internal/domain"
	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New()

	// Field names come from json tags so violations match the request body
	Validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Not empty and not only whitespace
	_ = Validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	// Non-negative base-10 integer written as text
	_ = Validate.RegisterValidation("amount", func(fl validator.FieldLevel) bool {
		_, ok := domain.ParseAmount(fl.Field().String())
		return ok
	})

	_ = Validate.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		_, ok := domain.ParseCategory(fl.Field().String())
		return ok
	})

	_ = Validate.RegisterValidation("payment", func(fl validator.FieldLevel) bool {
		_, ok := domain.ParsePaymentMethod(fl.Field().String())
		return ok
	})
}

var messages = map[string]string{
	"notblank": "must not be empty",
	"amount":   "must be a whole number from 0 to 1000000000000",
	"category": "must be one of food, transport, purchase, other",
	"payment":  "must be cash or card",
}

// Struct validates s and converts failures into a *domain.InputError
func Struct(s any) error {
	err := Validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	violations := make([]domain.FieldViolation, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := messages[fe.Tag()]
		if !ok {
			msg = "failed " + fe.Tag() + " check"
		}
		violations = append(violations, domain.FieldViolation{Field: fe.Field(), Message: msg})
	}
	return &domain.InputError{Violations: violations}
}
