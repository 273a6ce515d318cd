package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"es", "es"},
		{"en", "en"},
		{"ES", "es"},
		{"en-US", "en"},
		{"es_PE", "es"},
		{"en-US,en;q=0.9", "en"},
		{"fr", "es"},
		{"", "es"},
		{"  en  ", "en"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Normalize(tc.in), "lang %q", tc.in)
	}
}

func TestTranslate(t *testing.T) {
	assert.Equal(t, "Este campo es obligatorio", Translate("es", KeyRequired))
	assert.Equal(t, "This field is required", Translate("en", KeyRequired))

	// Unsupported languages fall back to Spanish
	assert.Equal(t, "Este campo es obligatorio", Translate("de", KeyRequired))
}

func TestTranslateUnknownKeyEchoes(t *testing.T) {
	assert.Equal(t, "no-such-key", Translate("es", "no-such-key"))
}

func TestEveryKeyExistsInBothLanguages(t *testing.T) {
	keys := []string{
		KeyRequired, KeyEmail, KeyPhone, KeyNameLength, KeyDocumentLength,
		KeyAgeMinimum, KeyAgeMaximum, KeyTerms, KeyPrivacy,
		KeyItemValueRange, KeyDurationRange, KeyPlanInvalid,
		KeyLoginInvalid, KeyProcessingFailed, KeyPaymentFailed, KeyGeneric,
		KeySubscriptionOK, KeyClaimOK, KeyContactOK, KeyNewsletterOK,
		KeySubmitInFlight,
	}

	for _, lang := range []string{LangSpanish, LangEnglish} {
		for _, key := range keys {
			assert.NotEqual(t, key, Translate(lang, key), "missing %s/%s", lang, key)
		}
	}
}
