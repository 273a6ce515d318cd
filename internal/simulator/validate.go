package simulator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/resicare/resicare-api/internal/i18n"
	"github.com/resicare/resicare-api/internal/models"
)

// ValidationResult is the outcome of a single field check. Message is empty
// when the field is valid.
type ValidationResult struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

func valid() ValidationResult {
	return ValidationResult{Valid: true}
}

func invalid(message string) ValidationResult {
	return ValidationResult{Valid: false, Message: message}
}

// formatCurrency renders an amount with the configured currency symbol and
// two decimals, display only.
func formatCurrency(amount float64) string {
	return fmt.Sprintf("%s%.2f", Currency, amount)
}

// ValidateItemValue checks that raw parses to a number within the configured
// item value range, inclusive on both ends. Empty or non-numeric input is
// invalid, never coerced to zero.
func ValidateItemValue(raw, lang string) ValidationResult {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || value < MinItemValue || value > MaxItemValue {
		msg := fmt.Sprintf(i18n.Translate(lang, i18n.KeyItemValueRange),
			formatCurrency(MinItemValue), formatCurrency(MaxItemValue))
		return invalid(msg)
	}
	return valid()
}

// ValidateDuration checks that raw parses to an integer number of months
// within the configured range, inclusive.
func ValidateDuration(raw, lang string) ValidationResult {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value < MinDuration || value > MaxDuration {
		msg := fmt.Sprintf(i18n.Translate(lang, i18n.KeyDurationRange),
			MinDuration, MaxDuration)
		return invalid(msg)
	}
	return valid()
}

// ValidatePlan checks that raw parses to a positive price matching a known
// plan in the catalog.
func ValidatePlan(raw, lang string) ValidationResult {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || price <= 0 {
		return invalid(i18n.Translate(lang, i18n.KeyPlanInvalid))
	}
	if _, ok := models.GetPlanByPrice(price); !ok {
		return invalid(i18n.Translate(lang, i18n.KeyPlanInvalid))
	}
	return valid()
}

// IsValidInput reports whether all three simulator fields are valid.
func IsValidInput(itemValue, plan, duration, lang string) bool {
	return ValidateItemValue(itemValue, lang).Valid &&
		ValidateDuration(duration, lang).Valid &&
		ValidatePlan(plan, lang).Valid
}
