package leadform

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^\(\d{3}\) \d{3}-\d{4}$`)
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = validate.RegisterValidation("leademail", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})
	_ = validate.RegisterValidation("maskedphone", func(fl validator.FieldLevel) bool {
		return IsValidPhone(fl.Field().String())
	})
}

// IsValidEmail checks the loose local@domain.tld shape used by the intake forms
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidPhone checks a fully masked "(DDD) DDD-DDDD" phone number
func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// Errors maps a field name to its invalid flag. Absent means untouched.
type Errors map[string]bool

// Any reports whether at least one field is invalid
func (e Errors) Any() bool {
	for _, invalid := range e {
		if invalid {
			return true
		}
	}
	return false
}

// Invalid reports whether the named field is flagged
func (e Errors) Invalid(name string) bool {
	return e[name]
}

// Validate checks every field of the set against its rules.
// Only invalid fields appear in the result.
func Validate(fs FieldSet, values map[string]string) Errors {
	errs := Errors{}
	for _, f := range fs.Fields {
		if !f.Required() {
			continue
		}
		if err := validate.Var(values[f.Name], f.Rules); err != nil {
			errs[f.Name] = true
		}
	}
	return errs
}
