package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/formline/formline-terminal/pkg/models"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func textField() models.Field {
	return models.Field{
		ID:          "text-1",
		Type:        models.FieldText,
		Label:       "Text Input",
		Placeholder: "Enter text input",
		Order:       0,
	}
}

func selectField() models.Field {
	return models.Field{
		ID:      "select-1",
		Type:    models.FieldSelect,
		Label:   "Select Option",
		Options: []string{"Option 1", "Option 2"},
		Order:   0,
	}
}

func TestEditorOpenNilIsNoOp(t *testing.T) {
	e := NewFieldEditor()
	e.Open(nil)
	if e.Active() {
		t.Error("Opening with no field must leave the editor closed")
	}
}

func TestEditorCommitProducesPatch(t *testing.T) {
	e := NewFieldEditor()
	field := textField()
	e.Open(&field)

	// Label input is focused; typed runes append to the seeded value.
	e.Update(keyMsg("!"))

	action, _ := e.Update(keyMsg("ctrl+s"))
	if action != EditorCommit {
		t.Fatalf("Expected commit, got %v", action)
	}
	if e.Active() {
		t.Error("Commit must close the editor")
	}

	patch := e.Patch()
	if patch.Label != "Text Input!" {
		t.Errorf("Expected edited label, got %q", patch.Label)
	}
	if patch.Placeholder != "Enter text input" {
		t.Errorf("Expected seeded placeholder, got %q", patch.Placeholder)
	}
	if patch.Options != nil {
		t.Error("Text field patch must not carry options")
	}
}

func TestEditorCancelLeavesFieldUntouched(t *testing.T) {
	e := NewFieldEditor()
	field := selectField()
	e.Open(&field)

	e.AddOption()
	e.Update(keyMsg("X"))
	e.Update(keyMsg("enter"))

	action, _ := e.Update(keyMsg("esc"))
	if action != EditorCancel {
		t.Fatalf("Expected cancel, got %v", action)
	}
	if e.Active() {
		t.Error("Cancel must close the editor")
	}

	// The working copy never touched the field.
	if len(field.Options) != 2 {
		t.Errorf("Editor mutated the field: %v", field.Options)
	}
}

func TestEditorRequiredToggle(t *testing.T) {
	e := NewFieldEditor()
	field := textField()
	e.Open(&field)

	// label -> placeholder -> required
	e.Update(keyMsg("tab"))
	e.Update(keyMsg("tab"))
	e.Update(keyMsg(" "))

	e.Update(keyMsg("ctrl+s"))
	if !e.Patch().Required {
		t.Error("Expected required toggled on")
	}
}

func TestEditorCanSave(t *testing.T) {
	e := NewFieldEditor()
	field := selectField()
	e.Open(&field)

	if !e.CanSave() {
		t.Error("Seeded select field must be savable")
	}

	e.RemoveOption(0)
	e.RemoveOption(0)
	if e.CanSave() {
		t.Error("Select field without options must not be savable")
	}

	// ctrl+s with an unsavable state keeps the editor open.
	action, _ := e.Update(keyMsg("ctrl+s"))
	if action != EditorNone || !e.Active() {
		t.Error("Unsavable commit attempt must be ignored")
	}

	e.labelInput.SetValue("")
	e.AddOption()
	e.Update(keyMsg("A"))
	e.Update(keyMsg("enter"))
	if e.CanSave() {
		t.Error("Blank label must not be savable")
	}
}

func TestEditorOptionRoundTrip(t *testing.T) {
	e := NewFieldEditor()
	field := selectField()
	e.Open(&field)

	e.UpdateOption(0, "Red")
	e.UpdateOption(1, "Blue")
	e.AddOption()
	e.Update(keyMsg("G"))
	e.Update(keyMsg("enter"))

	e.Update(keyMsg("ctrl+s"))
	patch := e.Patch()
	want := []string{"Red", "Blue", "G"}
	if len(patch.Options) != len(want) {
		t.Fatalf("Expected %d options, got %d", len(want), len(patch.Options))
	}
	for i, opt := range want {
		if patch.Options[i] != opt {
			t.Errorf("Option %d: expected %q, got %q", i, opt, patch.Options[i])
		}
	}
}

func TestEditorRemoveOptionClampsCursor(t *testing.T) {
	e := NewFieldEditor()
	field := selectField()
	e.Open(&field)

	e.optionCursor = 1
	e.RemoveOption(1)

	if e.optionCursor != 0 {
		t.Errorf("Expected cursor clamped to 0, got %d", e.optionCursor)
	}
	if got := e.Options(); len(got) != 1 || got[0] != "Option 1" {
		t.Errorf("Unexpected options after removal: %v", got)
	}
}

func TestEditorFocusCycleSkipsPlaceholderForSelect(t *testing.T) {
	e := NewFieldEditor()
	field := selectField()
	e.Open(&field)

	// label -> required -> options -> label
	e.Update(keyMsg("tab"))
	if e.focus != focusRequired {
		t.Errorf("Expected focusRequired, got %v", e.focus)
	}
	e.Update(keyMsg("tab"))
	if e.focus != focusOptions {
		t.Errorf("Expected focusOptions, got %v", e.focus)
	}
	e.Update(keyMsg("tab"))
	if e.focus != focusLabel {
		t.Errorf("Expected focusLabel, got %v", e.focus)
	}
}
