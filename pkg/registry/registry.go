// Package registry is the static catalog of supported field types: their
// display metadata and the defaults a freshly placed field starts with.
package registry

import (
	"fmt"
	"strings"

	"github.com/formline/formline-terminal/pkg/models"
)

// Entry describes one field type in the palette.
type Entry struct {
	Type           models.FieldType
	DisplayName    string // shown in the palette and editor title
	Icon           string // short glyph for list rendering
	HasInput       bool   // text and textarea fields carry a placeholder
	NeedsOptions   bool   // select and radio fields require an option list
	DefaultOptions []string
}

var catalog = []Entry{
	{Type: models.FieldText, DisplayName: "Text Input", Icon: "◇", HasInput: true},
	{Type: models.FieldTextarea, DisplayName: "Text Area", Icon: "▤", HasInput: true},
	{Type: models.FieldSelect, DisplayName: "Select Option", Icon: "▾", NeedsOptions: true, DefaultOptions: []string{"Option 1", "Option 2"}},
	{Type: models.FieldCheckbox, DisplayName: "Checkbox", Icon: "☐"},
	{Type: models.FieldRadio, DisplayName: "Radio Group", Icon: "◉", NeedsOptions: true, DefaultOptions: []string{"Option 1", "Option 2"}},
}

// Entries returns the catalog in palette order.
func Entries() []Entry {
	out := make([]Entry, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the catalog entry for a field type. The type set is
// closed, so a miss is a programming error.
func Lookup(t models.FieldType) Entry {
	for _, e := range catalog {
		if e.Type == t {
			return e
		}
	}
	panic(fmt.Sprintf("registry: unknown field type %q", t))
}

// DisplayName returns the human-readable name for a field type.
func DisplayName(t models.FieldType) string {
	return Lookup(t).DisplayName
}

// NeedsOptions reports whether fields of this type require an option list.
func NeedsOptions(t models.FieldType) bool {
	return Lookup(t).NeedsOptions
}

// HasPlaceholder reports whether fields of this type carry a placeholder.
func HasPlaceholder(t models.FieldType) bool {
	return Lookup(t).HasInput
}

// NewField constructs a field of the given type with catalog defaults.
// The caller supplies the id and order; everything else comes from here.
func NewField(t models.FieldType, id string, order int) models.Field {
	e := Lookup(t)
	f := models.Field{
		ID:    id,
		Type:  t,
		Label: e.DisplayName,
		Order: order,
	}
	if e.HasInput {
		f.Placeholder = fmt.Sprintf("Enter %s", strings.ToLower(e.DisplayName))
	}
	if e.NeedsOptions {
		f.Options = make([]string, len(e.DefaultOptions))
		copy(f.Options, e.DefaultOptions)
	}
	return f
}
