package subscription

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/resicare/resicare-api/internal/i18n"
)

// Form field length and age limits.
const (
	NameMinLength     = 2
	NameMaxLength     = 50
	DocumentMinLength = 8
	DocumentMaxLength = 12
	MinAge            = 18
	MaxAge            = 80
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[+]?[0-9\-()\s]+$`)
	nonDigits    = regexp.MustCompile(`\D`)
)

// FormData is the subscription form as submitted.
type FormData struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Document  string `json:"document"`
	BirthDate string `json:"birthdate"` // YYYY-MM-DD
	PlanID    string `json:"plan_id"`
	Terms     bool   `json:"terms"`
	Privacy   bool   `json:"privacy"`
	Marketing bool   `json:"marketing"`
}

// FieldError tags a failing rule with its form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate checks every rule independently and collects all failures; an
// empty slice means the form is valid. Locale changes message text only.
func Validate(form FormData, lang string) []FieldError {
	return validateAt(form, lang, time.Now())
}

// validateAt is Validate with an explicit "today", for the age edge cases.
func validateAt(form FormData, lang string, today time.Time) []FieldError {
	var errs []FieldError

	name := strings.TrimSpace(form.Name)
	if name == "" {
		errs = append(errs, FieldError{"name", i18n.Translate(lang, i18n.KeyRequired)})
	} else if len([]rune(name)) < NameMinLength || len([]rune(name)) > NameMaxLength {
		errs = append(errs, FieldError{"name",
			fmt.Sprintf(i18n.Translate(lang, i18n.KeyNameLength), NameMinLength, NameMaxLength)})
	}

	email := strings.TrimSpace(form.Email)
	if email == "" {
		errs = append(errs, FieldError{"email", i18n.Translate(lang, i18n.KeyRequired)})
	} else if !emailPattern.MatchString(email) {
		errs = append(errs, FieldError{"email", i18n.Translate(lang, i18n.KeyEmail)})
	}

	phone := strings.TrimSpace(form.Phone)
	if phone == "" {
		errs = append(errs, FieldError{"phone", i18n.Translate(lang, i18n.KeyRequired)})
	} else if !validPhone(phone) {
		errs = append(errs, FieldError{"phone", i18n.Translate(lang, i18n.KeyPhone)})
	}

	document := strings.TrimSpace(form.Document)
	if document == "" {
		errs = append(errs, FieldError{"document", i18n.Translate(lang, i18n.KeyRequired)})
	} else if len(document) < DocumentMinLength || len(document) > DocumentMaxLength {
		errs = append(errs, FieldError{"document",
			fmt.Sprintf(i18n.Translate(lang, i18n.KeyDocumentLength), DocumentMinLength, DocumentMaxLength)})
	}

	birthdate := strings.TrimSpace(form.BirthDate)
	if birthdate == "" {
		errs = append(errs, FieldError{"birthdate", i18n.Translate(lang, i18n.KeyRequired)})
	} else if born, err := time.Parse("2006-01-02", birthdate); err != nil {
		errs = append(errs, FieldError{"birthdate", i18n.Translate(lang, i18n.KeyRequired)})
	} else {
		age := ageAt(born, today)
		if age < MinAge {
			errs = append(errs, FieldError{"birthdate",
				fmt.Sprintf(i18n.Translate(lang, i18n.KeyAgeMinimum), MinAge)})
		} else if age > MaxAge {
			errs = append(errs, FieldError{"birthdate",
				fmt.Sprintf(i18n.Translate(lang, i18n.KeyAgeMaximum), MaxAge)})
		}
	}

	if !form.Terms {
		errs = append(errs, FieldError{"terms", i18n.Translate(lang, i18n.KeyTerms)})
	}
	if !form.Privacy {
		errs = append(errs, FieldError{"privacy", i18n.Translate(lang, i18n.KeyPrivacy)})
	}

	return errs
}

// validPhone accepts permissive phone punctuation but requires at least nine
// digits once everything else is stripped.
func validPhone(phone string) bool {
	if !phonePattern.MatchString(phone) {
		return false
	}
	digits := nonDigits.ReplaceAllString(phone, "")
	return len(digits) >= 9
}

// ageAt computes whole years between born and today, subtracting one year
// when today's month/day has not yet reached the birth month/day.
func ageAt(born, today time.Time) int {
	age := today.Year() - born.Year()
	if today.Month() < born.Month() ||
		(today.Month() == born.Month() && today.Day() < born.Day()) {
		age--
	}
	return age
}
