package registry

import (
	"testing"

	"github.com/formline/formline-terminal/pkg/models"
)

func TestCatalogCoversAllFieldTypes(t *testing.T) {
	entries := Entries()
	if len(entries) != len(models.FieldTypes()) {
		t.Fatalf("Expected %d entries, got %d", len(models.FieldTypes()), len(entries))
	}
	for i, ft := range models.FieldTypes() {
		if entries[i].Type != ft {
			t.Errorf("Palette position %d: expected %q, got %q", i, ft, entries[i].Type)
		}
	}
}

func TestNeedsOptions(t *testing.T) {
	tests := []struct {
		fieldType models.FieldType
		want      bool
	}{
		{models.FieldText, false},
		{models.FieldTextarea, false},
		{models.FieldSelect, true},
		{models.FieldCheckbox, false},
		{models.FieldRadio, true},
	}

	for _, tt := range tests {
		if got := NeedsOptions(tt.fieldType); got != tt.want {
			t.Errorf("NeedsOptions(%q) = %v, want %v", tt.fieldType, got, tt.want)
		}
	}
}

func TestNewFieldDefaults(t *testing.T) {
	field := NewField(models.FieldText, "text-1", 2)

	if field.ID != "text-1" || field.Type != models.FieldText || field.Order != 2 {
		t.Errorf("Unexpected identity attributes: %+v", field)
	}
	if field.Label != "Text Input" {
		t.Errorf("Expected default label %q, got %q", "Text Input", field.Label)
	}
	if field.Placeholder != "Enter text input" {
		t.Errorf("Expected default placeholder %q, got %q", "Enter text input", field.Placeholder)
	}
	if field.Required {
		t.Error("New fields must not default to required")
	}
	if field.Options != nil {
		t.Error("Text fields must not carry options")
	}
}

func TestNewFieldOptionDefaults(t *testing.T) {
	field := NewField(models.FieldSelect, "select-1", 0)

	want := []string{"Option 1", "Option 2"}
	if len(field.Options) != len(want) {
		t.Fatalf("Expected %d default options, got %d", len(want), len(field.Options))
	}
	for i, opt := range want {
		if field.Options[i] != opt {
			t.Errorf("Option %d: expected %q, got %q", i, opt, field.Options[i])
		}
	}

	// Defaults must be copied, not shared between fields.
	field.Options[0] = "Changed"
	second := NewField(models.FieldSelect, "select-2", 1)
	if second.Options[0] != "Option 1" {
		t.Error("Default options shared between fields")
	}
}

func TestLookupPanicsOnUnknownType(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected Lookup to panic on unknown type")
		}
	}()
	Lookup(models.FieldType("date"))
}
