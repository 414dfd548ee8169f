package apierror

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	reasoncodes "sos-api/pkg/reason_codes"

	"github.com/go-playground/validator/v10"
)

// FromBindError converts gin binding failures into field errors keyed by the JSON name.
func FromBindError(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		fe := validationErrors[0]
		return FieldError(reasoncodes.ErrValidation, jsonFieldName(fe), validationMessage(fe))
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return FieldError(reasoncodes.ErrValidation, typeErr.Field, "Некорректный тип.")
	}

	return Detail(reasoncodes.ErrValidation, "Некорректный JSON.")
}

func jsonFieldName(fe validator.FieldError) string {
	return toSnakeCase(fe.Field())
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return MsgRequired
	case "email":
		return "Введите правильный адрес электронной почты."
	case "max":
		return fmt.Sprintf("Убедитесь, что это значение содержит не более %s символов.", fe.Param())
	case "oneof":
		return fmt.Sprintf("Значения %q нет среди допустимых вариантов.", fe.Value())
	default:
		return "Некорректное значение."
	}
}

func toSnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
