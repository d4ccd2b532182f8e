// Package validation checks usecase inputs with go-playground/validator and
// reports failures as field-level domain validation errors.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "board/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator validates structs annotated with `validate` tags.
// It also satisfies echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator that names fields after their json tags.
func New() (*Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(fieldName)
	if err := validate.RegisterValidation("notblank", notBlank); err != nil {
		return nil, errors.Wrap(err, "failed to register notblank validation")
	}

	return &Validator{validate: validate}, nil
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	return v.Struct(i)
}

// Struct validates s and converts failures into ErrValidationFailed carrying one message per field.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.Wrap(err, "validate input")
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		name := fieldErr.Field()
		if _, exists := fields[name]; exists {
			continue
		}
		fields[name] = message(fieldErr)
	}

	return domainerrors.ErrValidationFailed.WithFields(fields)
}

func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}

	return field.Name
}

func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return true
	}

	return strings.TrimSpace(field.String()) != ""
}

func message(fieldErr validator.FieldError) string {
	name := strings.ReplaceAll(fieldErr.Field(), "_", " ")

	switch fieldErr.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("The %s field is required.", name)
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", name)
	case "min":
		return fmt.Sprintf("The %s must be at least %s characters.", name, fieldErr.Param())
	case "max":
		return fmt.Sprintf("The %s may not be greater than %s characters.", name, fieldErr.Param())
	case "gt":
		return fmt.Sprintf("The %s must be greater than %s.", name, fieldErr.Param())
	default:
		return fmt.Sprintf("The %s is invalid.", name)
	}
}
