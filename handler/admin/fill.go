package admin

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/Matias-sh/mi-portafolio/pkg/endpoint"
	"github.com/Matias-sh/mi-portafolio/pkg/portal"
)

const invalidRecord = "the record is invalid"

// fill copies the writable keys of body onto model and validates the merged
// record. Read-only, immutable (on update) and unknown keys are dropped.
func (h Handler) fill(resource Resource, model any, body map[string]json.RawMessage, creating bool) *endpoint.ApiError {
	writable := make(map[string]json.RawMessage, len(body))
	errs := make(map[string]any)

	for name, raw := range body {
		field, ok := resource.Field(name)
		if !ok || !field.Writable(creating) {
			continue
		}

		if field.Kind == KindDate {
			normalised, ok := normaliseDate(raw)
			if !ok {
				errs[name] = "Enter a valid date (YYYY-MM-DD)."

				continue
			}

			raw = normalised
		}

		writable[name] = raw
	}

	if len(errs) > 0 {
		return endpoint.UnprocessableEntity(invalidRecord, errs)
	}

	if len(writable) > 0 {
		merged, err := json.Marshal(writable)
		if err != nil {
			return endpoint.LogBadRequestError("invalid request body", err)
		}

		if err := json.Unmarshal(merged, model); err != nil {
			return endpoint.UnprocessableEntity(invalidRecord, map[string]any{"_": err.Error()})
		}
	}

	return h.validate(resource, model, creating)
}

func (h Handler) validate(resource Resource, model any, creating bool) *endpoint.ApiError {
	values, err := toMap(model)
	if err != nil {
		return endpoint.LogInternalError("could not inspect the record", err)
	}

	errs := make(map[string]any)

	for _, field := range resource.Fields {
		if field.ReadOnly || (field.Immutable && !creating) {
			continue
		}

		rules := field.Rules
		if field.Derived && !creating {
			rules = strings.Trim("required,"+rules, ",")
		}

		if rules == "" {
			continue
		}

		value := values[field.Name]
		if isZeroTime(field, value) {
			value = nil
		}

		if value == nil {
			if strings.Contains(rules, "required") {
				errs[field.Name] = "This field is required."
			}

			continue
		}

		if msg := h.Validator.CheckValue(value, rules); msg != "" {
			errs[field.Name] = msg
		}
	}

	if len(errs) > 0 {
		return endpoint.UnprocessableEntity(invalidRecord, errs)
	}

	return nil
}

// normaliseDate accepts "2024-01-31", an RFC 3339 timestamp or null.
func normaliseDate(raw json.RawMessage) (json.RawMessage, bool) {
	if string(raw) == "null" {
		return raw, true
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, false
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return json.RawMessage("null"), true
	}

	parsed, err := time.Parse(portal.DateOnlyLayout, value)
	if err != nil {
		if parsed, err = time.Parse(time.RFC3339, value); err != nil {
			return nil, false
		}
	}

	out, err := json.Marshal(parsed.UTC())
	if err != nil {
		return nil, false
	}

	return out, true
}

func isZeroTime(field Field, value any) bool {
	if field.Kind != KindDate && field.Kind != KindDateTime {
		return false
	}

	text, ok := value.(string)

	return ok && strings.HasPrefix(text, "0001-01-01")
}
