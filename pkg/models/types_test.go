package models

import "testing"

func TestFieldTypeValid(t *testing.T) {
	for _, ft := range FieldTypes() {
		if !ft.Valid() {
			t.Errorf("Expected %q to be valid", ft)
		}
	}
	if FieldType("date").Valid() {
		t.Error("Expected unknown type to be invalid")
	}
}

func TestFieldCloneIsIndependent(t *testing.T) {
	original := Field{
		ID:      "select-1",
		Type:    FieldSelect,
		Label:   "Color",
		Options: []string{"Red", "Blue"},
	}

	clone := original.Clone()
	clone.Options[0] = "Green"

	if original.Options[0] != "Red" {
		t.Errorf("Clone mutation leaked into original: got %q", original.Options[0])
	}
}

func TestFieldPatchApply(t *testing.T) {
	field := Field{
		ID:          "text-1",
		Type:        FieldText,
		Label:       "Name",
		Placeholder: "Enter name",
		Required:    false,
		Order:       3,
	}

	patch := FieldPatch{
		Label:       "Full Name",
		Placeholder: "Enter your full name",
		Required:    true,
	}
	updated := patch.Apply(field)

	if updated.Label != "Full Name" || updated.Placeholder != "Enter your full name" || !updated.Required {
		t.Errorf("Patch attributes not applied: %+v", updated)
	}
	if updated.ID != "text-1" || updated.Type != FieldText || updated.Order != 3 {
		t.Errorf("Patch changed immutable attributes: %+v", updated)
	}
	if field.Label != "Name" {
		t.Error("Apply mutated the input field")
	}
}

func TestFieldPatchApplyReplacesOptions(t *testing.T) {
	field := Field{
		ID:      "radio-1",
		Type:    FieldRadio,
		Label:   "Size",
		Options: []string{"S", "M"},
	}

	patch := FieldPatch{Label: "Size", Options: []string{"S", "M", "L"}}
	updated := patch.Apply(field)

	if len(updated.Options) != 3 {
		t.Fatalf("Expected 3 options, got %d", len(updated.Options))
	}

	// The patch slice must not be shared with the result.
	patch.Options[0] = "XS"
	if updated.Options[0] != "S" {
		t.Error("Applied options share backing array with patch")
	}
}

func TestSortedFields(t *testing.T) {
	form := Form{
		Fields: []Field{
			{ID: "c", Order: 2},
			{ID: "a", Order: 0},
			{ID: "b", Order: 1},
		},
	}

	sorted := form.SortedFields()
	want := []string{"a", "b", "c"}
	for i, id := range want {
		if sorted[i].ID != id {
			t.Errorf("Position %d: expected %q, got %q", i, id, sorted[i].ID)
		}
	}

	// Original order untouched.
	if form.Fields[0].ID != "c" {
		t.Error("SortedFields mutated the form")
	}
}

func TestFormCloneDeepCopiesFields(t *testing.T) {
	form := Form{
		ID:     "form-1",
		Title:  "Survey",
		Fields: []Field{{ID: "f1", Label: "Q1"}},
	}

	clone := form.Clone()
	clone.Fields[0].Label = "Changed"

	if form.Fields[0].Label != "Q1" {
		t.Error("Form clone shares field storage with original")
	}
}
