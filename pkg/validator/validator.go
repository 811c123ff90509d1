package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct runs the struct's `validate` tags and flattens failures into one error
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		var errMsgs []string
		for _, err := range verrs {
			errMsgs = append(errMsgs, fmt.Sprintf(
				"Field: %s, Tag: %s, Param: %s", err.Field(), err.Tag(), err.Param(),
			))
		}
		return fmt.Errorf("validation failed: %s", strings.Join(errMsgs, "; "))
	}
	return nil
}

// ValidateEmail reports whether s is a syntactically valid email address
func ValidateEmail(s string) bool {
	return validate.Var(s, "required,email") == nil
}

// ValidateMessage validates s like ValidateStruct but reports the `message` tag of
// the first failing field when one is set, so callers can show it to end users.
func ValidateMessage(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	t := reflect.Indirect(reflect.ValueOf(s)).Type()
	if f, ok := t.FieldByName(verrs[0].StructField()); ok {
		if msg := f.Tag.Get("message"); msg != "" {
			return errors.New(msg)
		}
	}
	return ValidateStruct(s)
}
