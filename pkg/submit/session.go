// Package submit collects end-user answers against a form's field list,
// validates them, and hands the result to the persistence gateway.
package submit

import (
	"regexp"
	"strings"

	"github.com/formline/formline-terminal/pkg/models"
	"github.com/formline/formline-terminal/pkg/store"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Session holds the answers for one fill-out of a form. Errors are keyed
// by field id and refreshed on every Validate.
type Session struct {
	Form    models.Form
	Answers models.Answers
	Errors  map[string]string
}

// NewSession starts an empty fill session for a form.
func NewSession(form models.Form) *Session {
	return &Session{
		Form:    form.Clone(),
		Answers: models.Answers{},
		Errors:  map[string]string{},
	}
}

// SetAnswer records an answer and clears any stale error on that field.
func (s *Session) SetAnswer(fieldID string, value any) {
	s.Answers[fieldID] = value
	delete(s.Errors, fieldID)
}

// Answer returns the recorded answer for a field, if any.
func (s *Session) Answer(fieldID string) (any, bool) {
	v, ok := s.Answers[fieldID]
	return v, ok
}

// Reset clears all answers and errors.
func (s *Session) Reset() {
	s.Answers = models.Answers{}
	s.Errors = map[string]string{}
}

// Validate checks every field and rebuilds the error map. It returns true
// when the form is submittable.
func (s *Session) Validate() bool {
	s.Errors = map[string]string{}
	for _, f := range s.Form.Fields {
		if msg := validateField(f, s.Answers[f.ID]); msg != "" {
			s.Errors[f.ID] = msg
		}
	}
	return len(s.Errors) == 0
}

// validateField returns an error message for one field, or "".
func validateField(f models.Field, value any) string {
	if f.Required {
		if f.Type == models.FieldCheckbox {
			checked, _ := value.(bool)
			if !checked {
				return f.Label + " is required"
			}
		} else {
			text, _ := value.(string)
			if strings.TrimSpace(text) == "" {
				return f.Label + " is required"
			}
		}
	}

	// Text fields labeled as email addresses get a shape check.
	if f.Type == models.FieldText {
		text, _ := value.(string)
		if text != "" && strings.Contains(strings.ToLower(f.Label), "email") {
			if !emailPattern.MatchString(text) {
				return "Please enter a valid email address"
			}
		}
	}
	return ""
}

// Submit validates and, if clean, persists exactly one submission. A
// validation failure returns (nil, nil) with the per-field errors left on
// the session; a store failure propagates.
func (s *Session) Submit(st store.Store) (*models.Submission, error) {
	if !s.Validate() {
		return nil, nil
	}
	sub, err := st.CreateSubmission(s.Form.ID, s.Answers)
	if err != nil {
		return nil, err
	}
	s.Reset()
	return sub, nil
}
