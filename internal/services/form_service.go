package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/resicare/resicare-api/internal/i18n"
	"github.com/resicare/resicare-api/internal/processing"
)

// Demo form types
const (
	FormTypeContact    = "contact"
	FormTypeClaim      = "claim"
	FormTypeNewsletter = "newsletter"
)

// FormResult is the receipt for a processed demo form.
type FormResult struct {
	ID        string            `json:"id"`
	Type      string            `json:"type"`
	Timestamp string            `json:"timestamp"`
	Data      map[string]string `json:"data"`
	Message   string            `json:"message"`
}

// FormService runs the generic demo forms (contact, claim, newsletter)
// through the shared simulated processing: fixed delay, 90% success.
type FormService struct {
	processor *processing.Processor
	now       func() time.Time
}

func NewFormService() *FormService {
	return &FormService{
		processor: processing.NewProcessor(processing.FormDelay),
		now:       time.Now,
	}
}

// WithProcessor replaces the simulation, for tests.
func (s *FormService) WithProcessor(p *processing.Processor) *FormService {
	s.processor = p
	return s
}

// KnownType reports whether formType is one of the demo forms.
func KnownType(formType string) bool {
	switch formType {
	case FormTypeContact, FormTypeClaim, FormTypeNewsletter:
		return true
	}
	return false
}

// Process runs one attempt. A failed attempt returns a generic retryable
// error message and commits nothing.
func (s *FormService) Process(formType string, data map[string]string, lang string) (*FormResult, error) {
	task := s.processor.Start()
	s.processor.Process(task)
	result := <-task.Done()

	if !result.Succeeded {
		return nil, fmt.Errorf("%s", i18n.Translate(lang, i18n.KeyGeneric))
	}

	if data == nil {
		data = map[string]string{}
	}

	return &FormResult{
		ID:        fmt.Sprintf("%s-%d", strings.ToUpper(formType), s.now().UnixMilli()),
		Type:      formType,
		Timestamp: s.now().Format(time.RFC3339),
		Data:      data,
		Message:   successMessage(formType, lang),
	}, nil
}

func successMessage(formType, lang string) string {
	switch formType {
	case FormTypeClaim:
		return i18n.Translate(lang, i18n.KeyClaimOK)
	case FormTypeNewsletter:
		return i18n.Translate(lang, i18n.KeyNewsletterOK)
	default:
		return i18n.Translate(lang, i18n.KeyContactOK)
	}
}
