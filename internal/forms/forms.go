// Package forms provides declarative, framework-independent form
// validation. Each form is a named set of fields, each field an ordered
// rule table of predicate + message pairs. Validation runs against
// submitted key/value data and yields either a normalized value bag or a
// per-field list of violated constraints.
package forms

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FieldType describes how a field is rendered; validation treats all types
// as strings except Select, whose value must match a supplied choice.
type FieldType int

const (
	Text FieldType = iota
	TextArea
	Password
	Select
)

// Rule is a single validation constraint: a predicate plus the message
// reported when the predicate fails.
type Rule struct {
	Message string
	Check   func(value string) bool
}

// Choice is an allowed value for a Select field, with its display label.
type Choice struct {
	Value string
	Label string
}

// Field is one named input with its ordered rule table.
type Field struct {
	Name     string
	Label    string
	Type     FieldType
	Optional bool // empty values skip the rule table entirely
	Rules    []Rule
	Choices  []Choice // Select fields only; populated at request time
}

// Form is a named set of fields.
type Form struct {
	Fields []*Field
}

// Field returns the field with the given name, or nil.
func (f *Form) Field(name string) *Field {
	for _, field := range f.Fields {
		if field.Name == name {
			return field
		}
	}
	return nil
}

// SetChoices populates the allowed choices of a Select field. Choices come
// from request-time data (e.g. the current city records), not from the
// form definition.
func (f *Form) SetChoices(name string, choices []Choice) {
	if field := f.Field(name); field != nil {
		field.Choices = choices
	}
}

// Validate checks the submitted data against every field's rule table. It
// returns the normalized (trimmed) values and a map of field name to
// violated-constraint messages; the data is valid iff the violation map is
// empty.
func (f *Form) Validate(data map[string]string) (map[string]string, map[string][]string) {
	values := make(map[string]string, len(f.Fields))
	violations := make(map[string][]string)

	for _, field := range f.Fields {
		value := strings.TrimSpace(data[field.Name])
		values[field.Name] = value

		if value == "" && field.Optional {
			continue
		}
		for _, rule := range field.Rules {
			if !rule.Check(value) {
				violations[field.Name] = append(violations[field.Name], rule.Message)
			}
		}
		if field.Type == Select && !hasChoice(field.Choices, value) {
			violations[field.Name] = append(violations[field.Name], "Not a valid choice")
		}
	}

	return values, violations
}

func hasChoice(choices []Choice, value string) bool {
	for _, c := range choices {
		if c.Value == value {
			return true
		}
	}
	return false
}

// Required fails on empty values.
func Required() Rule {
	return Rule{
		Message: "This field is required",
		Check: func(v string) bool {
			return v != ""
		},
	}
}

// MinLength fails on values shorter than n characters.
func MinLength(n int) Rule {
	return Rule{
		Message: fmt.Sprintf("Must be at least %d characters long", n),
		Check: func(v string) bool {
			return len(v) >= n
		},
	}
}

// MaxLength fails on values longer than n characters.
func MaxLength(n int) Rule {
	return Rule{
		Message: fmt.Sprintf("Must be at most %d characters long", n),
		Check: func(v string) bool {
			return len(v) <= n
		},
	}
}

// Email fails on values that are not shaped like an email address.
func Email() Rule {
	return Rule{
		Message: "Not a valid email address",
		Check: func(v string) bool {
			return validate.Var(v, "email") == nil
		},
	}
}

// ValidURL fails on values that are not shaped like a URL.
func ValidURL() Rule {
	return Rule{
		Message: "Not a valid URL",
		Check: func(v string) bool {
			return validate.Var(v, "url") == nil
		},
	}
}
