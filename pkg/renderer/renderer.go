// Package renderer projects field lists into visual representations: a
// styled terminal rendering shared by the designer preview and the fill
// view, and a plain markdown rendering for show/export.
package renderer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/formline/formline-terminal/pkg/models"
	"github.com/formline/formline-terminal/pkg/registry"
)

var (
	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252"))

	requiredStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Italic(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	optionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	selectedOptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("170")).
				Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// FieldState is the per-field display state supplied by the caller: the
// current answer (if any), whether the field has input focus, and a
// validation error to show beneath it.
type FieldState struct {
	Value   any
	Focused bool
	Error   string
}

// Header renders a form's title and wrapped description.
func Header(form models.Form, width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(form.Title))
	if strings.TrimSpace(form.Description) != "" {
		b.WriteString("\n")
		b.WriteString(descStyle.Render(wordwrap.String(form.Description, max(width, 20))))
	}
	return b.String()
}

// Field renders a single field. In read-only renderings state carries no
// focus and no value; in fill mode it reflects the submission session.
func Field(f models.Field, state FieldState, width int) string {
	var b strings.Builder

	label := f.Label
	if f.Required {
		label += requiredStyle.Render(" *")
	}
	b.WriteString(labelStyle.Render(label))
	b.WriteString("\n")

	switch f.Type {
	case models.FieldText, models.FieldTextarea:
		b.WriteString(renderTextValue(f, state, width))
	case models.FieldSelect, models.FieldRadio:
		b.WriteString(renderOptions(f, state))
	case models.FieldCheckbox:
		b.WriteString(renderCheckbox(f, state))
	}

	if state.Error != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("✗ " + state.Error))
	}
	return b.String()
}

// Fields renders a full field list in order, separated by blank lines.
// states may be nil for a plain read-only projection.
func Fields(fields []models.Field, states map[string]FieldState, width int) string {
	if len(fields) == 0 {
		return hintStyle.Render("No fields yet")
	}
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		var st FieldState
		if states != nil {
			st = states[f.ID]
		}
		parts = append(parts, Field(f, st, width))
	}
	return strings.Join(parts, "\n\n")
}

func renderTextValue(f models.Field, state FieldState, width int) string {
	text, _ := state.Value.(string)
	if text == "" {
		placeholder := f.Placeholder
		if placeholder == "" {
			placeholder = "…"
		}
		return hintStyle.Render(placeholder)
	}
	if f.Type == models.FieldTextarea {
		text = wordwrap.String(text, max(width, 20))
	}
	return valueStyle.Render(text)
}

func renderOptions(f models.Field, state FieldState) string {
	if len(f.Options) == 0 {
		return hintStyle.Render("(no options configured)")
	}
	selected, _ := state.Value.(string)
	marker := func(chosen bool) string {
		if f.Type == models.FieldSelect {
			if chosen {
				return "▸"
			}
			return " "
		}
		if chosen {
			return "(•)"
		}
		return "( )"
	}
	var lines []string
	for _, opt := range f.Options {
		chosen := opt == selected && opt != ""
		line := fmt.Sprintf("%s %s", marker(chosen), opt)
		if chosen {
			lines = append(lines, selectedOptionStyle.Render(line))
		} else {
			lines = append(lines, optionStyle.Render(line))
		}
	}
	return strings.Join(lines, "\n")
}

func renderCheckbox(f models.Field, state FieldState) string {
	checked, _ := state.Value.(bool)
	box := "☐"
	if checked {
		box = "☑"
	}
	line := fmt.Sprintf("%s %s", box, f.Label)
	if checked {
		return selectedOptionStyle.Render(line)
	}
	return optionStyle.Render(line)
}

// Markdown renders a read-only markdown projection of a form, used by the
// show and export commands.
func Markdown(form models.Form) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", form.Title)
	if strings.TrimSpace(form.Description) != "" {
		fmt.Fprintf(&b, "\n%s\n", form.Description)
	}
	for _, f := range form.SortedFields() {
		required := ""
		if f.Required {
			required = " (required)"
		}
		fmt.Fprintf(&b, "\n## %s%s\n", f.Label, required)
		fmt.Fprintf(&b, "\n- Type: %s\n", registry.DisplayName(f.Type))
		if f.Placeholder != "" {
			fmt.Fprintf(&b, "- Placeholder: %s\n", f.Placeholder)
		}
		if registry.NeedsOptions(f.Type) {
			fmt.Fprintf(&b, "- Options:\n")
			for _, opt := range f.Options {
				fmt.Fprintf(&b, "  - %s\n", opt)
			}
		}
	}
	return b.String()
}
