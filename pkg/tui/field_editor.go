package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/formline/formline-terminal/pkg/models"
	"github.com/formline/formline-terminal/pkg/registry"
)

type editorFocus int

const (
	focusLabel editorFocus = iota
	focusPlaceholder
	focusRequired
	focusOptions
)

// EditorAction is the outcome of one key event inside the editor.
type EditorAction int

const (
	EditorNone EditorAction = iota
	EditorCommit
	EditorCancel
)

// FieldEditor is the modal session over one field's mutable attributes.
// It works on a deep copy; the field itself is only touched on commit,
// through the designer session.
type FieldEditor struct {
	active    bool
	fieldID   string
	fieldType models.FieldType

	labelInput       textinput.Model
	placeholderInput textinput.Model
	required         bool

	options       []string
	optionCursor  int
	editingOption bool
	optionInput   textinput.Model

	focus editorFocus
}

func NewFieldEditor() *FieldEditor {
	label := textinput.New()
	label.Placeholder = "Enter field label"
	label.CharLimit = 120

	placeholder := textinput.New()
	placeholder.Placeholder = "Enter placeholder text"
	placeholder.CharLimit = 120

	option := textinput.New()
	option.CharLimit = 120

	return &FieldEditor{
		labelInput:       label,
		placeholderInput: placeholder,
		optionInput:      option,
	}
}

// Open seeds the editor with a deep copy of the field's mutable
// attributes. A nil field is a no-op: the editor stays closed.
func (e *FieldEditor) Open(field *models.Field) {
	if field == nil {
		return
	}
	e.active = true
	e.fieldID = field.ID
	e.fieldType = field.Type
	e.labelInput.SetValue(field.Label)
	e.placeholderInput.SetValue(field.Placeholder)
	e.required = field.Required
	e.options = make([]string, len(field.Options))
	copy(e.options, field.Options)
	e.optionCursor = 0
	e.editingOption = false
	e.focus = focusLabel
	e.labelInput.Focus()
	e.placeholderInput.Blur()
}

// Active reports whether the editor is open.
func (e *FieldEditor) Active() bool { return e.active }

// FieldID returns the id of the field under edit.
func (e *FieldEditor) FieldID() string { return e.fieldID }

// Options returns the working copy of the option list.
func (e *FieldEditor) Options() []string {
	out := make([]string, len(e.options))
	copy(out, e.options)
	return out
}

func (e *FieldEditor) hasPlaceholder() bool { return registry.HasPlaceholder(e.fieldType) }
func (e *FieldEditor) needsOptions() bool   { return registry.NeedsOptions(e.fieldType) }

// CanSave reports whether commit is allowed: a non-empty label, and for
// option-bearing types a non-empty option list.
func (e *FieldEditor) CanSave() bool {
	if strings.TrimSpace(e.labelInput.Value()) == "" {
		return false
	}
	if e.needsOptions() && len(e.options) == 0 {
		return false
	}
	return true
}

// Patch returns the working copy as a field patch.
func (e *FieldEditor) Patch() models.FieldPatch {
	patch := models.FieldPatch{
		Label:    strings.TrimSpace(e.labelInput.Value()),
		Required: e.required,
	}
	if e.hasPlaceholder() {
		patch.Placeholder = e.placeholderInput.Value()
	}
	if e.needsOptions() {
		patch.Options = make([]string, len(e.options))
		copy(patch.Options, e.options)
	}
	return patch
}

// AddOption appends a new empty entry and starts editing it.
func (e *FieldEditor) AddOption() {
	e.options = append(e.options, "")
	e.optionCursor = len(e.options) - 1
	e.startOptionEdit()
}

// UpdateOption replaces the entry at index i.
func (e *FieldEditor) UpdateOption(i int, value string) {
	if i >= 0 && i < len(e.options) {
		e.options[i] = value
	}
}

// RemoveOption deletes the entry at index i, shifting the rest down.
func (e *FieldEditor) RemoveOption(i int) {
	if i >= 0 && i < len(e.options) {
		e.options = append(e.options[:i], e.options[i+1:]...)
		if e.optionCursor >= len(e.options) && e.optionCursor > 0 {
			e.optionCursor--
		}
	}
}

func (e *FieldEditor) startOptionEdit() {
	e.editingOption = true
	e.optionInput.SetValue(e.options[e.optionCursor])
	e.optionInput.Placeholder = fmt.Sprintf("Option %d", e.optionCursor+1)
	e.optionInput.Focus()
}

func (e *FieldEditor) close() {
	e.active = false
	e.editingOption = false
	e.labelInput.Blur()
	e.placeholderInput.Blur()
	e.optionInput.Blur()
}

// cycleFocus advances to the next editable section for this field type.
func (e *FieldEditor) cycleFocus(backward bool) {
	order := []editorFocus{focusLabel}
	if e.hasPlaceholder() {
		order = append(order, focusPlaceholder)
	}
	order = append(order, focusRequired)
	if e.needsOptions() {
		order = append(order, focusOptions)
	}

	current := 0
	for i, f := range order {
		if f == e.focus {
			current = i
			break
		}
	}
	if backward {
		current = (current - 1 + len(order)) % len(order)
	} else {
		current = (current + 1) % len(order)
	}
	e.focus = order[current]

	e.labelInput.Blur()
	e.placeholderInput.Blur()
	switch e.focus {
	case focusLabel:
		e.labelInput.Focus()
	case focusPlaceholder:
		e.placeholderInput.Focus()
	}
}

// Update handles one key event. The returned action tells the designer
// whether the session closed with a commit, a cancel, or stayed open.
func (e *FieldEditor) Update(msg tea.KeyMsg) (EditorAction, tea.Cmd) {
	if !e.active {
		return EditorNone, nil
	}

	// Option text entry captures everything except enter/esc.
	if e.editingOption {
		switch msg.String() {
		case "enter":
			e.UpdateOption(e.optionCursor, e.optionInput.Value())
			e.editingOption = false
			e.optionInput.Blur()
			return EditorNone, nil
		case "esc":
			e.editingOption = false
			e.optionInput.Blur()
			return EditorNone, nil
		default:
			var cmd tea.Cmd
			e.optionInput, cmd = e.optionInput.Update(msg)
			return EditorNone, cmd
		}
	}

	switch msg.String() {
	case "esc":
		e.close()
		return EditorCancel, nil

	case "ctrl+s":
		if !e.CanSave() {
			return EditorNone, nil
		}
		e.close()
		return EditorCommit, nil

	case "tab":
		e.cycleFocus(false)
		return EditorNone, nil

	case "shift+tab", "backtab":
		e.cycleFocus(true)
		return EditorNone, nil
	}

	switch e.focus {
	case focusRequired:
		if msg.String() == " " || msg.String() == "enter" {
			e.required = !e.required
		}
		return EditorNone, nil

	case focusOptions:
		switch msg.String() {
		case "up", "k":
			if e.optionCursor > 0 {
				e.optionCursor--
			}
		case "down", "j":
			if e.optionCursor < len(e.options)-1 {
				e.optionCursor++
			}
		case "enter":
			if len(e.options) > 0 {
				e.startOptionEdit()
			}
		case "a", "+":
			e.AddOption()
		case "d", "-":
			e.RemoveOption(e.optionCursor)
		}
		return EditorNone, nil

	case focusLabel:
		var cmd tea.Cmd
		e.labelInput, cmd = e.labelInput.Update(msg)
		return EditorNone, cmd

	case focusPlaceholder:
		var cmd tea.Cmd
		e.placeholderInput, cmd = e.placeholderInput.Update(msg)
		return EditorNone, cmd
	}

	return EditorNone, nil
}

// View renders the modal.
func (e *FieldEditor) View(width int) string {
	if !e.active {
		return ""
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("170")).
		Padding(0, 1)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("214"))

	sectionStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))

	activeSectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("170"))

	optionStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))

	selectedOptionStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("170")).
		Bold(true)

	hintStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))

	section := func(name string, focus editorFocus) string {
		if e.focus == focus {
			return activeSectionStyle.Render(name)
		}
		return sectionStyle.Render(name)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Configure %s", registry.DisplayName(e.fieldType))))
	b.WriteString("\n\n")

	b.WriteString(section("Label *", focusLabel))
	b.WriteString("\n")
	b.WriteString(e.labelInput.View())
	b.WriteString("\n\n")

	if e.hasPlaceholder() {
		b.WriteString(section("Placeholder", focusPlaceholder))
		b.WriteString("\n")
		b.WriteString(e.placeholderInput.View())
		b.WriteString("\n\n")
	}

	check := "☐"
	if e.required {
		check = "☑"
	}
	b.WriteString(section(fmt.Sprintf("%s Required field", check), focusRequired))
	b.WriteString("\n\n")

	if e.needsOptions() {
		b.WriteString(section("Options", focusOptions))
		b.WriteString("\n")
		if len(e.options) == 0 {
			b.WriteString(hintStyle.Render("No options yet. Press 'a' to add one."))
			b.WriteString("\n")
		}
		for i, opt := range e.options {
			if e.editingOption && i == e.optionCursor {
				b.WriteString("▸ " + e.optionInput.View())
			} else if i == e.optionCursor && e.focus == focusOptions {
				b.WriteString(selectedOptionStyle.Render(fmt.Sprintf("▸ %s", opt)))
			} else {
				b.WriteString(optionStyle.Render(fmt.Sprintf("  %s", opt)))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	help := "tab next • ctrl+s save • esc cancel"
	if e.focus == focusOptions {
		help = "a add • d delete • enter edit • " + help
	}
	if !e.CanSave() {
		help = "label and options must be filled to save • " + help
	}
	b.WriteString(hintStyle.Render(help))

	dialogWidth := width - 4
	if dialogWidth > 64 {
		dialogWidth = 64
	}
	return borderStyle.Width(dialogWidth).Render(b.String())
}
