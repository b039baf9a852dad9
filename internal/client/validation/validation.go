// Package validation checks member forms before they are sent to the
// backend. Each form is a struct whose `validate` tags hold the rules and
// whose `msg` tags hold the message shown for each failing rule.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/memberdesk/internal/common"
	"github.com/go-playground/validator/v10"
)

var (
	namePattern   = regexp.MustCompile(`^[A-Za-z\s'-]{2,}$`)
	digitsPattern = regexp.MustCompile(`^[0-9]+$`)
)

var defaultValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("person_name", func(fl validator.FieldLevel) bool {
		return namePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
		return digitsPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("strong_password", func(fl validator.FieldLevel) bool {
		return StrongPassword(fl.Field().String())
	})
	return v
}

// StrongPassword reports whether p has at least 8 characters, a lower and
// an upper case letter, a digit and no whitespace.
func StrongPassword(p string) bool {
	if len([]rune(p)) < 8 {
		return false
	}
	var lower, upper, digit bool
	for _, r := range p {
		switch {
		case unicode.IsSpace(r):
			return false
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

// FieldError is one failed field with its display message.
type FieldError struct {
	Field   string
	Message string
}

// Errors lists failed fields in declaration order.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return strings.Join(msgs, "; ")
}

func (e Errors) Is(target error) bool {
	return target == common.ErrorValidation
}

// Get returns the message for field, or "".
func (e Errors) Get(field string) string {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

// Validate checks form and returns Errors when any rule fails.
func Validate(form any) error {
	err := defaultValidator.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	t := reflect.Indirect(reflect.ValueOf(form)).Type()
	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: message(t, fe)})
	}
	return out
}

// message looks up the `msg` entry for the failed tag, e.g.
// `msg:"required=First Name is required|min=Minimum 2 letters required"`.
func message(t reflect.Type, fe validator.FieldError) string {
	if f, ok := t.FieldByName(fe.StructField()); ok {
		for _, entry := range strings.Split(f.Tag.Get("msg"), "|") {
			tag, text, found := strings.Cut(entry, "=")
			if found && tag == fe.Tag() {
				return text
			}
		}
	}
	return fe.Field() + " is invalid"
}
