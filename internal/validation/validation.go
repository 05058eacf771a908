package validation

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/talentdock/search-core/internal/core/domain"
)

// Validator checks inbound request structs against their validate tags
// and turns validator errors into messages safe to return to clients.
type Validator struct {
	validate *validator.Validate
	logger   *slog.Logger
}

// New creates a Validator reporting JSON field names in error messages
func New(logger *slog.Logger) *Validator {
	if logger == nil {
		logger = slog.Default()
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(useJSONFieldNames)

	return &Validator{validate: v, logger: logger}
}

// Validate checks i and returns an error wrapping domain.ErrInvalidInput
// with a client-facing message describing the first failing field
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	v.logger.Warn("request validation failed", "error", err)

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, fieldMessage(validationErrs[0]))
	}

	return fmt.Errorf("%w: malformed request", domain.ErrInvalidInput)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("missing required field '%s'", fe.Field())
	case "min":
		return fmt.Sprintf("field '%s' must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("field '%s' must be at most %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("field '%s' must be greater than %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("field '%s' is invalid", fe.Field())
	}
}

func useJSONFieldNames(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}
