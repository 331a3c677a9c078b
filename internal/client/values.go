package client

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormValues holds raw form input keyed by field name, exactly as typed.
type FormValues map[string]string

// FieldError reports a form field that is missing or does not parse.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (v FormValues) Get(name string) string {
	return strings.TrimSpace(v[name])
}

func (v FormValues) Int(name string) (int, error) {
	raw := v.Get(name)
	if raw == "" {
		return 0, &FieldError{Field: name, Reason: "is required"}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &FieldError{Field: name, Reason: "must be a whole number"}
	}
	return n, nil
}

func (v FormValues) Float(name string) (float64, error) {
	raw := v.Get(name)
	if raw == "" {
		return 0, &FieldError{Field: name, Reason: "is required"}
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &FieldError{Field: name, Reason: "must be a number"}
	}
	return f, nil
}

// Clone returns an independent copy; a nil receiver yields an empty map.
func (v FormValues) Clone() FormValues {
	out := make(FormValues, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// FormValuesFromJSON turns a decoded JSON object into raw form values so JSON
// callers go through the same parsing as the HTML forms. Values that are not
// numbers or strings are dropped and later reported as missing.
func FormValuesFromJSON(body map[string]any) FormValues {
	out := make(FormValues, len(body))
	for k, raw := range body {
		switch val := raw.(type) {
		case float64:
			out[k] = strconv.FormatFloat(val, 'f', -1, 64)
		case string:
			out[k] = val
		}
	}
	return out
}
