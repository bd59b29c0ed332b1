package forms_test

import (
	"testing"

	"gocafe/internal/forms"

	"github.com/stretchr/testify/assert"
)

func cityChoices() []forms.Choice {
	return []forms.Choice{
		{Value: "sf", Label: "San Francisco"},
		{Value: "oak", Label: "Oakland"},
	}
}

func TestCafeForm_Valid(t *testing.T) {
	form := forms.CafeForm()
	form.SetChoices("city_code", cityChoices())

	values, violations := form.Validate(map[string]string{
		"name":        "Bernie's Cafe",
		"description": "A great place to sit and write.",
		"url":         "https://bernies.example.com",
		"address":     "3966 24th St",
		"city_code":   "sf",
		"image_url":   "",
	})

	assert.Empty(t, violations)
	assert.Equal(t, "Bernie's Cafe", values["name"])
	assert.Equal(t, "sf", values["city_code"])
}

func TestCafeForm_Violations(t *testing.T) {
	form := forms.CafeForm()
	form.SetChoices("city_code", cityChoices())

	tests := []struct {
		name  string
		data  map[string]string
		field string
	}{
		{
			name:  "missing name",
			data:  map[string]string{"address": "1 Main St", "city_code": "sf"},
			field: "name",
		},
		{
			name:  "missing address",
			data:  map[string]string{"name": "Cafe", "city_code": "sf"},
			field: "address",
		},
		{
			name: "short description",
			data: map[string]string{
				"name": "Cafe", "address": "1 Main St", "city_code": "sf",
				"description": "too short",
			},
			field: "description",
		},
		{
			name: "bad url",
			data: map[string]string{
				"name": "Cafe", "address": "1 Main St", "city_code": "sf",
				"url": "not a url",
			},
			field: "url",
		},
		{
			name: "city not among choices",
			data: map[string]string{
				"name": "Cafe", "address": "1 Main St", "city_code": "nyc",
			},
			field: "city_code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, violations := form.Validate(tt.data)
			assert.NotEmpty(t, violations[tt.field])
		})
	}
}

func TestCafeForm_OptionalFieldsSkipRulesWhenEmpty(t *testing.T) {
	form := forms.CafeForm()
	form.SetChoices("city_code", cityChoices())

	_, violations := form.Validate(map[string]string{
		"name":      "Cafe",
		"address":   "1 Main St",
		"city_code": "oak",
		// description, url and image_url omitted entirely
	})
	assert.Empty(t, violations)
}

func TestSignupForm(t *testing.T) {
	form := forms.SignupForm()

	values, violations := form.Validate(map[string]string{
		"username":   "testuser",
		"first_name": "Testy",
		"last_name":  "MacTest",
		"email":      "test@example.com",
		"password":   "secret1",
	})
	assert.Empty(t, violations)
	assert.Equal(t, "testuser", values["username"])

	// Short password and malformed email both fail.
	_, violations = form.Validate(map[string]string{
		"username":   "testuser",
		"first_name": "Testy",
		"last_name":  "MacTest",
		"email":      "not-an-email",
		"password":   "abc",
	})
	assert.NotEmpty(t, violations["email"])
	assert.NotEmpty(t, violations["password"])
}

func TestLoginForm(t *testing.T) {
	form := forms.LoginForm()

	_, violations := form.Validate(map[string]string{})
	assert.NotEmpty(t, violations["username"])
	assert.NotEmpty(t, violations["password"])

	_, violations = form.Validate(map[string]string{
		"username": "testuser",
		"password": "secret",
	})
	assert.Empty(t, violations)
}

func TestValidate_TrimsValues(t *testing.T) {
	form := forms.LoginForm()

	values, violations := form.Validate(map[string]string{
		"username": "  testuser  ",
		"password": "secret",
	})
	assert.Empty(t, violations)
	assert.Equal(t, "testuser", values["username"])
}

func TestMaxLength(t *testing.T) {
	rule := forms.MaxLength(5)
	assert.True(t, rule.Check("12345"))
	assert.False(t, rule.Check("123456"))
}
