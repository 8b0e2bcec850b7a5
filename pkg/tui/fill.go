package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/formline/formline-terminal/pkg/models"
	"github.com/formline/formline-terminal/pkg/renderer"
	"github.com/formline/formline-terminal/pkg/store"
	"github.com/formline/formline-terminal/pkg/submit"
)

// FillModel is the public-facing side: it renders a saved form and
// collects one submission against it.
type FillModel struct {
	store   store.Store
	session *submit.Session
	fields  []models.Field

	cursor    int
	editing   bool
	textInput textinput.Model
	areaInput textarea.Model

	viewport  viewport.Model
	submitted bool
	width     int
	height    int
	err       error
}

func NewFillModel(st store.Store) *FillModel {
	ti := textinput.New()
	ti.CharLimit = 240

	ta := textarea.New()
	ta.CharLimit = 2000
	ta.SetHeight(4)

	return &FillModel{
		store:     st,
		textInput: ti,
		areaInput: ta,
	}
}

func (m *FillModel) Init() tea.Cmd {
	return nil
}

func (m *FillModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width - 2
	m.viewport.Height = height - 8
	m.textInput.Width = width - 10
	m.areaInput.SetWidth(width - 10)
	m.refresh()
}

// SetForm fetches the form and starts an empty submission session.
func (m *FillModel) SetForm(id string) {
	form, err := m.store.GetForm(id)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.submitted = false
	m.session = submit.NewSession(*form)
	m.fields = form.SortedFields()
	m.cursor = 0
	m.refresh()
}

// Session exposes the submission session for tests.
func (m *FillModel) Session() *submit.Session {
	return m.session
}

func (m *FillModel) focusedField() *models.Field {
	if m.cursor >= 0 && m.cursor < len(m.fields) {
		return &m.fields[m.cursor]
	}
	return nil
}

func (m *FillModel) refresh() {
	if m.session == nil {
		return
	}
	width := m.viewport.Width
	if width < 10 {
		width = 60
	}

	states := make(map[string]renderer.FieldState, len(m.fields))
	for i, f := range m.fields {
		states[f.ID] = renderer.FieldState{
			Value:   m.session.Answers[f.ID],
			Focused: i == m.cursor,
			Error:   m.session.Errors[f.ID],
		}
	}
	content := renderer.Header(m.session.Form, width) + "\n\n" +
		renderer.Fields(m.fields, states, width)
	m.viewport.SetContent(content)
}

func (m *FillModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if m.err != nil || m.session == nil {
			switch msg.String() {
			case "esc", "q", "enter":
				return m, func() tea.Msg {
					return SwitchViewMsg{view: formListView}
				}
			}
			return m, nil
		}

		if m.submitted {
			switch msg.String() {
			case "r":
				m.submitted = false
				m.session.Reset()
				m.cursor = 0
				m.refresh()
			case "esc", "q", "enter":
				return m, func() tea.Msg {
					return SwitchViewMsg{view: formListView}
				}
			}
			return m, nil
		}

		if m.editing {
			return m, m.handleEditing(msg)
		}
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *FillModel) handleEditing(msg tea.KeyMsg) tea.Cmd {
	field := m.focusedField()
	if field == nil {
		m.editing = false
		return nil
	}

	isArea := field.Type == models.FieldTextarea
	commitKey := "enter"
	if isArea {
		// Textareas take enter as a newline; commit with ctrl+s.
		commitKey = "ctrl+s"
	}

	switch msg.String() {
	case commitKey:
		if isArea {
			m.session.SetAnswer(field.ID, m.areaInput.Value())
			m.areaInput.Blur()
		} else {
			m.session.SetAnswer(field.ID, m.textInput.Value())
			m.textInput.Blur()
		}
		m.editing = false
		m.refresh()
		return nil
	case "esc":
		m.editing = false
		m.textInput.Blur()
		m.areaInput.Blur()
		return nil
	}

	var cmd tea.Cmd
	if isArea {
		m.areaInput, cmd = m.areaInput.Update(msg)
	} else {
		m.textInput, cmd = m.textInput.Update(msg)
	}
	return cmd
}

func (m *FillModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "q":
		return func() tea.Msg {
			return SwitchViewMsg{view: formListView}
		}

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.refresh()
		}

	case "down", "j":
		if m.cursor < len(m.fields)-1 {
			m.cursor++
			m.refresh()
		}

	case "pgup":
		m.viewport.HalfViewUp()

	case "pgdown":
		m.viewport.HalfViewDown()

	case "enter", " ":
		return m.interact()

	case "ctrl+r":
		m.session.Reset()
		m.refresh()

	case "ctrl+s":
		return m.submitForm()
	}

	return nil
}

// interact engages the focused field: text fields open an input, option
// fields cycle to the next option, checkboxes toggle.
func (m *FillModel) interact() tea.Cmd {
	field := m.focusedField()
	if field == nil {
		return nil
	}

	switch field.Type {
	case models.FieldText:
		current, _ := m.session.Answers[field.ID].(string)
		m.textInput.SetValue(current)
		m.textInput.Placeholder = field.Placeholder
		m.textInput.Focus()
		m.editing = true
		return textinput.Blink

	case models.FieldTextarea:
		current, _ := m.session.Answers[field.ID].(string)
		m.areaInput.SetValue(current)
		m.areaInput.Placeholder = field.Placeholder
		m.areaInput.Focus()
		m.editing = true
		return textarea.Blink

	case models.FieldSelect, models.FieldRadio:
		if len(field.Options) == 0 {
			return nil
		}
		current, _ := m.session.Answers[field.ID].(string)
		next := 0
		for i, opt := range field.Options {
			if opt == current {
				next = (i + 1) % len(field.Options)
				break
			}
		}
		m.session.SetAnswer(field.ID, field.Options[next])
		m.refresh()

	case models.FieldCheckbox:
		checked, _ := m.session.Answers[field.ID].(bool)
		m.session.SetAnswer(field.ID, !checked)
		m.refresh()
	}
	return nil
}

func (m *FillModel) submitForm() tea.Cmd {
	if !m.session.Validate() {
		m.refresh()
		return func() tea.Msg {
			return StatusMsg("× Please fix the highlighted fields")
		}
	}
	return func() tea.Msg {
		sub, err := m.session.Submit(m.store)
		if err != nil {
			return StatusMsg(fmt.Sprintf("× Failed to submit: %v", err))
		}
		if sub == nil {
			return StatusMsg("× Please fix the highlighted fields")
		}
		m.submitted = true
		m.refresh()
		return StatusMsg(fmt.Sprintf("✓ Submission recorded: %s", sub.ID))
	}
}

func (m *FillModel) View() string {
	hintStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))

	if m.err != nil {
		return fmt.Sprintf("Error: cannot load form: %v\n\nPress 'esc' to go back", m.err)
	}
	if m.session == nil {
		return "Loading..."
	}

	if m.submitted {
		doneStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("114")).
			Padding(1, 3)
		msg := lipgloss.NewStyle().Bold(true).Render("Thank You!") +
			"\n\nYour response has been recorded." +
			"\n\n" + hintStyle.Render("r submit another • esc back to forms")
		return lipgloss.NewStyle().Padding(1, 1).Render(doneStyle.Render(msg))
	}

	var b strings.Builder
	b.WriteString(m.viewport.View())
	b.WriteString("\n\n")

	if m.editing {
		field := m.focusedField()
		label := ""
		if field != nil {
			label = field.Label
		}
		b.WriteString(lipgloss.NewStyle().Bold(true).Render(label + ": "))
		b.WriteString("\n")
		if field != nil && field.Type == models.FieldTextarea {
			b.WriteString(m.areaInput.View())
			b.WriteString("\n")
			b.WriteString(hintStyle.Render("ctrl+s done • esc cancel"))
		} else {
			b.WriteString(m.textInput.View())
			b.WriteString("\n")
			b.WriteString(hintStyle.Render("enter done • esc cancel"))
		}
	} else {
		b.WriteString(hintStyle.Render("↑/↓ move • enter answer • ctrl+s submit • ctrl+r reset • esc back"))
	}
	return b.String()
}
