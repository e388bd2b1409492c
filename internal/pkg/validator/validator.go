package validator

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/admin/jyotish/vedic-client/internal/domain"
	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// в сообщениях используем имена полей из json
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("ddmmyyyy", layoutValidator(domain.DateOfBirthLayout))
	_ = v.RegisterValidation("hhmm", layoutValidator(domain.TimeOfBirthLayout))

	return &CustomValidator{validator: v}
}

func layoutValidator(layout string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if len(value) != len(layout) {
			return false
		}
		_, err := time.Parse(layout, value)
		return err == nil
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// IsValidationError сообщает, что ошибка получена от валидатора полей
func IsValidationError(err error) bool {
	var validationErrors validator.ValidationErrors
	return errors.As(err, &validationErrors)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	result := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return result
	}

	for _, e := range validationErrors {
		field := fieldPath(e.Namespace())
		switch e.Tag() {
		case "required", "notblank":
			result[field] = field + " is required"
		case "oneof":
			result[field] = field + " must be one of: " + e.Param()
		case "ddmmyyyy":
			result[field] = field + " must be a date in DD-MM-YYYY format"
		case "hhmm":
			result[field] = field + " must be a time in HH:MM format"
		case "min":
			result[field] = field + " must be at least " + e.Param() + " characters"
		case "max":
			result[field] = field + " must be at most " + e.Param() + " characters"
		default:
			result[field] = field + " is invalid"
		}
	}

	return result
}

// fieldPath отрезает имя корневой структуры: "MatchingRequest.person1.name" -> "person1.name"
func fieldPath(namespace string) string {
	if idx := strings.IndexByte(namespace, '.'); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}
