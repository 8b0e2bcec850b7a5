package models

import "time"

// FieldType is the closed set of field kinds a form can contain.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldSelect   FieldType = "select"
	FieldCheckbox FieldType = "checkbox"
	FieldRadio    FieldType = "radio"
)

// FieldTypes lists all supported types in palette order.
func FieldTypes() []FieldType {
	return []FieldType{FieldText, FieldTextarea, FieldSelect, FieldCheckbox, FieldRadio}
}

// Valid reports whether t is one of the supported field types.
func (t FieldType) Valid() bool {
	switch t {
	case FieldText, FieldTextarea, FieldSelect, FieldCheckbox, FieldRadio:
		return true
	}
	return false
}

// Field is one placed field in a form. ID and Type are immutable after
// creation; changing the type means creating a new field.
type Field struct {
	ID          string    `json:"id" yaml:"id"`
	Type        FieldType `json:"type" yaml:"type"`
	Label       string    `json:"label" yaml:"label"`
	Placeholder string    `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Required    bool      `json:"required" yaml:"required"`
	Options     []string  `json:"options,omitempty" yaml:"options,omitempty"`
	Order       int       `json:"order" yaml:"order"`
}

// Clone returns a deep copy of the field, including its options slice.
func (f Field) Clone() Field {
	c := f
	if f.Options != nil {
		c.Options = make([]string, len(f.Options))
		copy(c.Options, f.Options)
	}
	return c
}

// FieldPatch is the set of mutable field attributes the configuration
// editor may change. ID, type and order are never part of a patch.
type FieldPatch struct {
	Label       string
	Placeholder string
	Required    bool
	Options     []string
}

// Apply returns a copy of f with exactly the patch's attributes replaced
// and everything else preserved.
func (p FieldPatch) Apply(f Field) Field {
	out := f.Clone()
	out.Label = p.Label
	out.Placeholder = p.Placeholder
	out.Required = p.Required
	if p.Options != nil {
		out.Options = make([]string, len(p.Options))
		copy(out.Options, p.Options)
	} else {
		out.Options = nil
	}
	return out
}

// Form is a saved form definition. ID and CreatedAt are assigned by the
// store and never change; UpdatedAt moves on every successful save.
type Form struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Fields      []Field   `json:"fields" yaml:"fields"`
	CreatedAt   time.Time `json:"createdAt" yaml:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" yaml:"updated_at"`
}

// FormDraft is the client-supplied part of a form, used for create and
// update calls. The store owns id and timestamps.
type FormDraft struct {
	Title       string  `json:"title" yaml:"title"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Fields      []Field `json:"fields" yaml:"fields"`
}

// Clone returns a deep copy of the form.
func (f Form) Clone() Form {
	c := f
	c.Fields = CloneFields(f.Fields)
	return c
}

// CloneFields deep-copies a field list.
func CloneFields(fields []Field) []Field {
	if fields == nil {
		return nil
	}
	out := make([]Field, len(fields))
	for i, f := range fields {
		out[i] = f.Clone()
	}
	return out
}

// SortedFields returns the form's fields ordered by their Order attribute.
// The returned slice is a copy; the form is not modified.
func (f Form) SortedFields() []Field {
	out := CloneFields(f.Fields)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Order < out[j-1].Order; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// Answers maps field ids to submitted values: strings for text, textarea,
// select and radio fields, booleans for checkboxes.
type Answers map[string]any

// Submission is one collected response for a form. Append-only.
type Submission struct {
	ID          string    `json:"id" yaml:"id"`
	FormID      string    `json:"formId" yaml:"form_id"`
	Answers     Answers   `json:"data" yaml:"data"`
	SubmittedAt time.Time `json:"submittedAt" yaml:"submitted_at"`
}
