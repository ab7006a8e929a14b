package validate

import (
	"fmt"
	"reflect"
	"strings"
)

var (
	// Message templates for string lengths
	stringTemplates = map[string]string{
		"len": "must be exactly",
		"gt":  "must be more than",
		"gte": "must be at least",
		"lt":  "must be less than",
		"lte": "must be at most",
		"max": "must be at most",
		"min": "must be at least",
	}
	// Message templates for most validator
	// fields
	templates = map[string]string{
		// Comparison
		//
		"eq":  "must be equal to",
		"gt":  "must be greater than",
		"gte": "must be greater than or equal to",
		"lt":  "must be less than",
		"lte": "must be less than or equal to",
		"ne":  "must not be equal to",
		"min": "must not be less than",
		"max": "must not be greater than",
		"len": "must have the length of",
		// Format
		//
		"email":     "must be a valid Email address",
		"latitude":  "must be a valid Latitude value",
		"longitude": "must be a valid Longitude value",
		"alphanum":  "must contain alphanumeric characters only",
		// Other
		//
		"oneof":    "must be one of",
		"required": "is required",
	}
	// Layouts accepted by the datetime tag, by their human readable name
	datetimeNames = map[string]string{
		"2006-01-02":                "a date formatted as YYYY-MM-DD",
		"15:04:05":                  "a time formatted as HH:MM:SS",
		"2006-01-02T15:04:05Z07:00": "an RFC3339 datetime",
	}
)

// FormError describes a single field that failed validation
type FormError struct {
	TagName  string       `json:"-"`
	TagParam string       `json:"-"`
	Kind     reflect.Kind `json:"-"`
	Field    string       `json:"field"`
}

// Errors collects every FormError produced while checking a struct
type Errors []*FormError

func NewFormError(kind reflect.Kind, field string, tag string, param string) *FormError {
	return &FormError{
		Kind:     kind,
		Field:    field,
		TagName:  tag,
		TagParam: param,
	}
}

func (e *FormError) Error() string {
	switch e.TagName {
	case "datetime":
		if name, ok := datetimeNames[e.TagParam]; ok {
			return fmt.Sprintf("%s must be %s", e.Field, name)
		}
		return fmt.Sprintf("%s must be a valid Datetime value", e.Field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", e.Field, strings.Join(strings.Fields(e.TagParam), ", "))
	}
	if e.Kind == reflect.String {
		if template, ok := stringTemplates[e.TagName]; ok {
			char := "characters"
			if e.TagParam == "1" {
				char = "character"
			}
			return fmt.Sprintf("%s %s %s %s long", e.Field, template, e.TagParam, char)
		}
	}
	template, ok := templates[e.TagName]
	if !ok {
		return fmt.Sprintf("Invalid %s value provided", e.Field)
	}
	if e.TagParam != "" {
		return fmt.Sprintf("%s %s %s", e.Field, template, e.TagParam)
	}
	return fmt.Sprintf("%s %s", e.Field, template)
}

// Message is the rendered message for the client
func (e *FormError) Message() string {
	return e.Error()
}

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return strings.Join(msgs, "; ")
}
