package portal

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	mu       sync.Mutex
	Errors   map[string]any
	instance *validator.Validate
}

func GetDefaultValidator() *Validator {
	return MakeValidatorFrom(
		validator.New(validator.WithRequiredStructEnabled()),
	)
}

func MakeValidatorFrom(abstract *validator.Validate) *Validator {
	abstract.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]

		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})

	registerCustomValidations(abstract)

	return &Validator{
		Errors:   make(map[string]any),
		instance: abstract,
	}
}

func (v *Validator) GetInstance() *validator.Validate {
	return v.instance
}

// Check validates the given struct without touching the shared error bag, so
// it is safe to call from concurrent request handlers. It returns nil when the
// struct is valid.
func (v *Validator) Check(abstract any) map[string]any {
	err := v.instance.Struct(abstract)

	if err == nil {
		return nil
	}

	return parseErrors(err)
}

// CheckValue validates a single value against rules and returns the message
// of the first failing rule, or "" when the value passes.
func (v *Validator) CheckValue(value any, rules string) string {
	err := v.instance.Var(value, rules)

	if err == nil {
		return ""
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		return fieldMessage(validationErrors[0])
	}

	return err.Error()
}

func (v *Validator) Passes(abstract any) (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.Errors = make(map[string]any)

	if err := v.instance.Struct(abstract); err != nil {
		v.Errors = parseErrors(err)

		return false, err
	}

	return true, nil
}

func (v *Validator) Rejects(abstract any) (bool, error) {
	passes, err := v.Passes(abstract)

	return !passes, err
}

func (v *Validator) GetErrors() map[string]any {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.Errors
}

func (v *Validator) GetErrorsAsJson() string {
	errs := v.GetErrors()

	if len(errs) == 0 {
		return ""
	}

	data, err := json.Marshal(errs)
	if err != nil {
		return fmt.Sprintf("%v", errs)
	}

	return string(data)
}

func parseErrors(err error) map[string]any {
	out := make(map[string]any)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		out["_"] = err.Error()

		return out
	}

	for _, field := range validationErrors {
		out[field.Field()] = fieldMessage(field)
	}

	return out
}

func fieldMessage(field validator.FieldError) string {
	switch field.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "max":
		if isNumeric(field.Kind()) {
			return fmt.Sprintf("Ensure this value is less than or equal to %s.", field.Param())
		}

		return fmt.Sprintf("Ensure this field has no more than %s characters.", field.Param())
	case "min":
		if isNumeric(field.Kind()) {
			return fmt.Sprintf("Ensure this value is greater than or equal to %s.", field.Param())
		}

		return fmt.Sprintf("Ensure this field has at least %s characters.", field.Param())
	case "oneof":
		return fmt.Sprintf("Value must be one of: %s.", field.Param())
	case "slug":
		return "Enter a valid slug consisting of letters, numbers, underscores or hyphens."
	}

	if field.Param() != "" {
		return fmt.Sprintf("Failed on the '%s=%s' rule.", field.Tag(), field.Param())
	}

	return fmt.Sprintf("Failed on the '%s' rule.", field.Tag())
}

func isNumeric(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}

	return false
}
