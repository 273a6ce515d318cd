package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() FormData {
	return FormData{
		Name:      "María García",
		Email:     "maria@example.com",
		Phone:     "+51 999 888 777",
		Document:  "12345678",
		BirthDate: "1990-05-15",
		PlanID:    "premium",
		Terms:     true,
		Privacy:   true,
	}
}

func fieldsOf(errs []FieldError) []string {
	fields := make([]string, len(errs))
	for i, e := range errs {
		fields[i] = e.Field
	}
	return fields
}

func TestValidateAcceptsValidForm(t *testing.T) {
	errs := Validate(validForm(), "es")
	assert.Empty(t, errs)
}

func TestValidateCollectsAllErrors(t *testing.T) {
	form := FormData{
		Name:      "",
		Email:     "a@b",
		Phone:     "123",
		Document:  "1234567",
		BirthDate: "1990-01-01",
		Terms:     false,
		Privacy:   false,
	}

	errs := Validate(form, "es")
	assert.Equal(t, []string{"name", "email", "phone", "document", "terms", "privacy"}, fieldsOf(errs))
}

func TestValidateName(t *testing.T) {
	cases := []struct {
		name  string
		valid bool
	}{
		{"Jo", true},
		{"J", false},
		{"", false},
		{"   ", false},
		{"Ana María de los Ángeles Fernández García", true},
	}

	for _, tc := range cases {
		form := validForm()
		form.Name = tc.name
		errs := Validate(form, "es")
		if tc.valid {
			assert.Empty(t, errs, "name %q", tc.name)
		} else {
			require.NotEmpty(t, errs, "name %q", tc.name)
			assert.Equal(t, "name", errs[0].Field)
		}
	}
}

func TestValidateNameTooLong(t *testing.T) {
	form := validForm()
	long := make([]rune, 51)
	for i := range long {
		long[i] = 'a'
	}
	form.Name = string(long)

	errs := Validate(form, "es")
	require.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)
}

func TestValidateEmail(t *testing.T) {
	cases := []struct {
		email string
		valid bool
	}{
		{"user@example.com", true},
		{"user@sub.example.com", true},
		{"user@example", false},
		{"user example@test.com", false},
		{"@example.com", false},
		{"user@", false},
	}

	for _, tc := range cases {
		form := validForm()
		form.Email = tc.email
		errs := Validate(form, "es")
		if tc.valid {
			assert.Empty(t, errs, "email %q", tc.email)
		} else {
			require.NotEmpty(t, errs, "email %q", tc.email)
			assert.Equal(t, "email", errs[0].Field)
		}
	}
}

func TestValidatePhone(t *testing.T) {
	cases := []struct {
		phone string
		valid bool
	}{
		{"+51 999 888 777", true},
		{"(01) 234-5678-9", true},
		{"999888777", true},
		{"12345678", false},    // only eight digits
		{"+51 999 ABC", false}, // letters
		{"", false},
	}

	for _, tc := range cases {
		form := validForm()
		form.Phone = tc.phone
		errs := Validate(form, "es")
		if tc.valid {
			assert.Empty(t, errs, "phone %q", tc.phone)
		} else {
			require.NotEmpty(t, errs, "phone %q", tc.phone)
			assert.Equal(t, "phone", errs[0].Field)
		}
	}
}

func TestValidateDocumentLength(t *testing.T) {
	cases := []struct {
		document string
		valid    bool
	}{
		{"12345678", true},
		{"123456789012", true},
		{"1234567", false},
		{"1234567890123", false},
	}

	for _, tc := range cases {
		form := validForm()
		form.Document = tc.document
		errs := Validate(form, "es")
		if tc.valid {
			assert.Empty(t, errs, "document %q", tc.document)
		} else {
			require.NotEmpty(t, errs, "document %q", tc.document)
			assert.Equal(t, "document", errs[0].Field)
		}
	}
}

func TestValidateAgeEdges(t *testing.T) {
	today := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		birthdate string
		valid     bool
	}{
		{"2008-08-29", true},  // turns 18 today
		{"2008-08-30", false}, // 18 tomorrow
		{"1946-08-29", true},  // turns 80 today
		{"1945-08-29", false}, // already 81
		{"1946-09-01", true},  // still 79
	}

	for _, tc := range cases {
		form := validForm()
		form.BirthDate = tc.birthdate
		errs := validateAt(form, "es", today)
		if tc.valid {
			assert.Empty(t, errs, "birthdate %q", tc.birthdate)
		} else {
			require.NotEmpty(t, errs, "birthdate %q", tc.birthdate)
			assert.Equal(t, "birthdate", errs[0].Field)
		}
	}
}

func TestValidateBirthDateMalformed(t *testing.T) {
	for _, raw := range []string{"", "not-a-date", "15-05-1990", "1990/05/15"} {
		form := validForm()
		form.BirthDate = raw
		errs := Validate(form, "es")
		require.NotEmpty(t, errs, "birthdate %q", raw)
		assert.Equal(t, "birthdate", errs[0].Field)
	}
}

func TestValidateConsents(t *testing.T) {
	form := validForm()
	form.Terms = false
	errs := Validate(form, "es")
	require.Len(t, errs, 1)
	assert.Equal(t, "terms", errs[0].Field)

	form = validForm()
	form.Privacy = false
	errs = Validate(form, "es")
	require.Len(t, errs, 1)
	assert.Equal(t, "privacy", errs[0].Field)

	// Marketing opt-in is never required
	form = validForm()
	form.Marketing = false
	assert.Empty(t, Validate(form, "es"))
}

func TestValidateLocaleChangesMessagesOnly(t *testing.T) {
	form := validForm()
	form.Email = "broken"

	es := Validate(form, "es")
	en := Validate(form, "en")

	require.Len(t, es, 1)
	require.Len(t, en, 1)
	assert.Equal(t, es[0].Field, en[0].Field)
	assert.NotEqual(t, es[0].Message, en[0].Message)
}
