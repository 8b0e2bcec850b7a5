package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/formline/formline-terminal/pkg/models"
	"github.com/formline/formline-terminal/pkg/store"
)

// FormListModel is the home view: every saved form, newest last, with
// actions to design, fill, or delete.
type FormListModel struct {
	store  store.Store
	forms  []models.Form
	cursor int
	width  int
	height int
	err    error

	deleteConfirm *ConfirmationModel
}

func NewFormListModel(st store.Store) *FormListModel {
	m := &FormListModel{
		store:         st,
		deleteConfirm: NewConfirmation(),
	}
	m.loadForms()
	return m
}

func (m *FormListModel) Init() tea.Cmd {
	return nil
}

func (m *FormListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *FormListModel) loadForms() {
	forms, err := m.store.ListForms()
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.forms = forms
	if m.cursor >= len(m.forms) {
		m.cursor = 0
	}
}

func (m *FormListModel) selected() *models.Form {
	if m.cursor >= 0 && m.cursor < len(m.forms) {
		return &m.forms[m.cursor]
	}
	return nil
}

func (m *FormListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.deleteConfirm.Active() {
			return m, m.deleteConfirm.Update(msg)
		}

		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.forms)-1 {
				m.cursor++
			}

		case "n":
			// New form: open the designer with no form id
			return m, func() tea.Msg {
				return SwitchViewMsg{view: designerView}
			}

		case "enter", "e":
			if form := m.selected(); form != nil {
				id := form.ID
				return m, func() tea.Msg {
					return SwitchViewMsg{view: designerView, formID: id}
				}
			}

		case "f":
			if form := m.selected(); form != nil {
				id := form.ID
				return m, func() tea.Msg {
					return SwitchViewMsg{view: fillView, formID: id}
				}
			}

		case "r":
			m.loadForms()
			return m, func() tea.Msg {
				return StatusMsg("✓ Reloaded forms")
			}

		case "d":
			if form := m.selected(); form != nil {
				id := form.ID
				title := form.Title
				m.deleteConfirm.ShowDialog(
					"⚠️  Delete Form",
					fmt.Sprintf("Delete '%s'?", title),
					"Collected submissions are kept but no longer listed.",
					true, // destructive
					m.width-4,
					10,
					func() tea.Cmd {
						return m.deleteForm(id, title)
					},
					nil,
				)
			}
		}
	}

	return m, nil
}

func (m *FormListModel) deleteForm(id, title string) tea.Cmd {
	return func() tea.Msg {
		if err := m.store.DeleteForm(id); err != nil {
			return StatusMsg(fmt.Sprintf("× Failed to delete form: %v", err))
		}
		m.loadForms()
		return StatusMsg(fmt.Sprintf("✓ Deleted form: %s", title))
	}
}

func (m *FormListModel) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress 'r' to retry or 'q' to quit", m.err)
	}

	if m.deleteConfirm.Active() {
		contentStyle := lipgloss.NewStyle().
			PaddingLeft(1).
			PaddingRight(1)
		return contentStyle.Render(m.deleteConfirm.View())
	}

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("214"))

	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("170")).
		Background(lipgloss.Color("236")).
		Bold(true)

	normalStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))

	metaStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))

	var b strings.Builder
	b.WriteString(headerStyle.Render("FORMS"))
	b.WriteString("\n\n")

	if len(m.forms) == 0 {
		b.WriteString(normalStyle.Render("No forms yet. Press 'n' to create one."))
		b.WriteString("\n")
	}

	for i, form := range m.forms {
		line := fmt.Sprintf("%-30s %3d fields  %s",
			truncate(form.Title, 30),
			len(form.Fields),
			form.UpdatedAt.Format("2006-01-02 15:04"),
		)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(normalStyle.Render("  " + line))
		}
		b.WriteString("\n")
		if i == m.cursor && strings.TrimSpace(form.Description) != "" {
			b.WriteString(metaStyle.Render("    " + truncate(form.Description, m.width-6)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("n new • enter design • f fill • d delete • r reload • q quit"))
	return b.String()
}

func truncate(s string, n int) string {
	if n < 1 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
