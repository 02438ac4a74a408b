// Package validation runs struct-tag validation and reports failures as a
// field→message map keyed by JSON field names.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	apperrors "hoaxify/internal/errors"
	"hoaxify/internal/storage"
)

// Messages returned for failed rules.
const (
	MsgRequired        = "must not be null"
	MsgPasswordPattern = "Password must have at least one uppercase, one lowercase letter and one number"
	MsgImage           = "Only PNG and JPG files are allowed"
	MsgInvalid         = "is invalid"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator with the custom "password" and "image" rules.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("password", validPassword)
	_ = v.RegisterValidation("image", validImage)
	return &Validator{validate: v}
}

// Validate checks i and returns *errors.ValidationError on failure. Each field
// reports only its first failing rule; all failing fields are collected.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	t := reflect.TypeOf(i)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		if _, seen := fields[fe.Field()]; seen {
			continue
		}
		fields[fe.Field()] = message(t, fe)
	}
	return apperrors.NewValidationError(fields)
}

func message(t reflect.Type, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return MsgRequired
	case "min", "max":
		lo, hi := sizeBounds(t, fe.StructField())
		return "It must have minimum " + lo + " and maximum " + hi + " characters"
	case "password":
		return MsgPasswordPattern
	case "image":
		return MsgImage
	default:
		return MsgInvalid
	}
}

// sizeBounds reads the min and max parameters declared on a field's validate tag.
func sizeBounds(t reflect.Type, fieldName string) (string, string) {
	lo, hi := "0", "unlimited"
	if t.Kind() != reflect.Struct {
		return lo, hi
	}
	f, ok := t.FieldByName(fieldName)
	if !ok {
		return lo, hi
	}
	for _, rule := range strings.Split(f.Tag.Get("validate"), ",") {
		switch {
		case strings.HasPrefix(rule, "min="):
			lo = strings.TrimPrefix(rule, "min=")
		case strings.HasPrefix(rule, "max="):
			hi = strings.TrimPrefix(rule, "max=")
		}
	}
	return lo, hi
}

func validPassword(fl validator.FieldLevel) bool {
	var lower, upper, digit bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return lower && upper && digit
}

func validImage(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, _, err := storage.DecodeImage(value)
	return err == nil
}
