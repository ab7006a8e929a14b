package validate

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/npesaras/clens/internal"
)

// Validator singleton object
var validate *validator.Validate

func init() {
	New()
}

// New initializes singleton object. Field names in errors are taken from the json tag so
// that messages refer to the names clients send.
func New() *validator.Validate {
	if validate != nil {
		return validate
	}
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return f.Name
		}
		return name
	})
	return validate
}

// Check validates a structs exposed fields, and automatically validates nested structs, unless otherwise specified.
//
// Failures are returned as an internal.Error with code InvalidArgument wrapping Errors, one
// FormError per offending field.
func Check(o interface{}) error {
	err := validate.Struct(o)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to validate %T", o)
	}
	errs := make(Errors, 0, len(ves))
	for _, ev := range ves {
		errs = append(errs, NewFormError(ev.Kind(), ev.Field(), ev.Tag(), ev.Param()))
	}
	return internal.WrapErrorf(errs, internal.ErrorCodeInvalidArgument, "Validation failed: %s", errs[0].Error())
}

// Var validates a single variable using tag style validation. eg. var i int validate.Var(i, "gt=1,lt=10")
func Var(o interface{}, tag string) error {
	return validate.Var(o, tag)
}

// Issues extracts the per field errors carried by err, if any
func Issues(err error) Errors {
	var errs Errors
	if errors.As(err, &errs) {
		return errs
	}
	return nil
}
