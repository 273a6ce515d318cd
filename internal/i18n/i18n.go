package i18n

import "strings"

// Supported languages
const (
	LangSpanish = "es"
	LangEnglish = "en"

	DefaultLanguage = LangSpanish
)

// Message keys used by the validation and processing layers. Only the keys
// and their conditions are part of the contract; wording may change.
const (
	KeyRequired         = "required"
	KeyEmail            = "email"
	KeyPhone            = "phone"
	KeyNameLength       = "name-length"
	KeyDocumentLength   = "document-length"
	KeyAgeMinimum       = "age-minimum"
	KeyAgeMaximum       = "age-maximum"
	KeyTerms            = "terms"
	KeyPrivacy          = "privacy"
	KeyItemValueRange   = "item-value-range"
	KeyDurationRange    = "duration-range"
	KeyPlanInvalid      = "plan-invalid"
	KeyLoginInvalid     = "login-invalid"
	KeyProcessingFailed = "processing-failed"
	KeyPaymentFailed    = "payment-failed"
	KeyGeneric          = "generic"
	KeySubscriptionOK   = "subscription-success"
	KeyClaimOK          = "claim-success"
	KeyContactOK        = "contact-success"
	KeyNewsletterOK     = "newsletter-success"
	KeySubmitInFlight   = "submit-in-flight"
)

var messages = map[string]map[string]string{
	LangSpanish: {
		KeyRequired:         "Este campo es obligatorio",
		KeyEmail:            "Por favor ingresa un email válido",
		KeyPhone:            "Por favor ingresa un teléfono válido",
		KeyNameLength:       "El nombre debe tener entre %d y %d caracteres",
		KeyDocumentLength:   "Documento debe tener entre %d y %d caracteres",
		KeyAgeMinimum:       "Debes ser mayor de %d años",
		KeyAgeMaximum:       "La edad máxima permitida es %d años",
		KeyTerms:            "Debes aceptar los términos y condiciones",
		KeyPrivacy:          "Debes aceptar la política de privacidad",
		KeyItemValueRange:   "Valor debe estar entre %s y %s",
		KeyDurationRange:    "Duración debe estar entre %d y %d meses",
		KeyPlanInvalid:      "Selecciona un plan válido",
		KeyLoginInvalid:     "Por favor ingresa un email válido y contraseña de al menos 4 caracteres",
		KeyProcessingFailed: "Ha ocurrido un error. Por favor intenta nuevamente",
		KeyPaymentFailed:    "Error procesando el pago. Por favor intenta nuevamente",
		KeyGeneric:          "Ha ocurrido un error. Por favor intenta nuevamente",
		KeySubscriptionOK:   "¡Suscripción exitosa! Te contactaremos pronto.",
		KeyClaimOK:          "¡Reclamo enviado! Recibirás una respuesta en 24-48 horas.",
		KeyContactOK:        "¡Mensaje enviado! Te responderemos pronto.",
		KeyNewsletterOK:     "¡Te has suscrito al newsletter!",
		KeySubmitInFlight:   "Ya hay un envío en proceso. Por favor espera.",
	},
	LangEnglish: {
		KeyRequired:         "This field is required",
		KeyEmail:            "Please enter a valid email",
		KeyPhone:            "Please enter a valid phone number",
		KeyNameLength:       "Name must have between %d and %d characters",
		KeyDocumentLength:   "Document must have between %d and %d characters",
		KeyAgeMinimum:       "You must be at least %d years old",
		KeyAgeMaximum:       "The maximum allowed age is %d years",
		KeyTerms:            "You must accept the terms and conditions",
		KeyPrivacy:          "You must accept the privacy policy",
		KeyItemValueRange:   "Value must be between %s and %s",
		KeyDurationRange:    "Duration must be between %d and %d months",
		KeyPlanInvalid:      "Select a valid plan",
		KeyLoginInvalid:     "Please enter a valid email and password of at least 4 characters",
		KeyProcessingFailed: "An error has occurred. Please try again",
		KeyPaymentFailed:    "Error processing the payment. Please try again",
		KeyGeneric:          "An error has occurred. Please try again",
		KeySubscriptionOK:   "Subscription successful! We will contact you soon.",
		KeyClaimOK:          "Claim submitted! You will receive a response in 24-48 hours.",
		KeyContactOK:        "Message sent! We will respond soon.",
		KeyNewsletterOK:     "You have subscribed to the newsletter!",
		KeySubmitInFlight:   "A submission is already in progress. Please wait.",
	},
}

// Normalize maps an arbitrary language tag to a supported language,
// falling back to the default.
func Normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if idx := strings.IndexAny(lang, "-_,;"); idx > 0 {
		lang = lang[:idx]
	}
	if _, ok := messages[lang]; ok {
		return lang
	}
	return DefaultLanguage
}

// Translate returns the message for key in lang. Unknown keys come back
// unchanged so missing entries are visible instead of silent.
func Translate(lang, key string) string {
	table, ok := messages[Normalize(lang)]
	if !ok {
		table = messages[DefaultLanguage]
	}
	if msg, ok := table[key]; ok {
		return msg
	}
	return key
}
