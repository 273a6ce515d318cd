package simulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateItemValueBoundaries(t *testing.T) {
	cases := []struct {
		raw   string
		valid bool
	}{
		{"100", true},
		{"15000", true},
		{"100.00", true},
		{"7500.50", true},
		{"99.99", false},
		{"15000.01", false},
		{"0", false},
		{"-500", false},
	}

	for _, tc := range cases {
		result := ValidateItemValue(tc.raw, "es")
		assert.Equal(t, tc.valid, result.Valid, "itemValue %q", tc.raw)
		if !tc.valid {
			assert.NotEmpty(t, result.Message)
		}
	}
}

func TestValidateItemValueRejectsNonNumeric(t *testing.T) {
	for _, raw := range []string{"", "abc", "12abc", "  "} {
		result := ValidateItemValue(raw, "es")
		assert.False(t, result.Valid, "itemValue %q", raw)
	}
}

func TestValidateItemValueMessageLocalized(t *testing.T) {
	es := ValidateItemValue("50", "es")
	en := ValidateItemValue("50", "en")

	assert.Contains(t, es.Message, "S/100.00")
	assert.Contains(t, es.Message, "S/15000.00")
	assert.NotEqual(t, es.Message, en.Message)
}

func TestValidateDurationBoundaries(t *testing.T) {
	cases := []struct {
		raw   string
		valid bool
	}{
		{"1", true},
		{"12", true},
		{"6", true},
		{"0", false},
		{"13", false},
		{"-1", false},
		{"6.5", false},
		{"", false},
		{"abc", false},
	}

	for _, tc := range cases {
		result := ValidateDuration(tc.raw, "en")
		assert.Equal(t, tc.valid, result.Valid, "duration %q", tc.raw)
	}
}

func TestValidatePlan(t *testing.T) {
	cases := []struct {
		raw   string
		valid bool
	}{
		{"9.90", true},
		{"24.90", true},
		{"39.90", true},
		{"10.00", false},
		{"0", false},
		{"-9.90", false},
		{"", false},
		{"free", false},
	}

	for _, tc := range cases {
		result := ValidatePlan(tc.raw, "es")
		assert.Equal(t, tc.valid, result.Valid, "plan %q", tc.raw)
	}
}

func TestIsValidInput(t *testing.T) {
	assert.True(t, IsValidInput("1000", "24.90", "6", "es"))
	assert.False(t, IsValidInput("50", "24.90", "6", "es"))
	assert.False(t, IsValidInput("1000", "24.91", "6", "es"))
	assert.False(t, IsValidInput("1000", "24.90", "13", "es"))
}
