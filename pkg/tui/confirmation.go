package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationModel handles yes/no prompts rendered as a bordered dialog.
type ConfirmationModel struct {
	active      bool
	title       string
	message     string
	warning     string
	destructive bool
	width       int
	height      int
	onConfirm   func() tea.Cmd
	onCancel    func() tea.Cmd
}

// NewConfirmation creates a new confirmation model
func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// ShowDialog activates the confirmation.
func (m *ConfirmationModel) ShowDialog(title, message, warning string, destructive bool, width, height int, onConfirm, onCancel func() tea.Cmd) {
	m.active = true
	m.title = title
	m.message = message
	m.warning = warning
	m.destructive = destructive
	m.width = width
	m.height = height
	m.onConfirm = onConfirm
	m.onCancel = onCancel
}

// Hide deactivates the confirmation
func (m *ConfirmationModel) Hide() {
	m.active = false
}

// Active returns whether the confirmation is currently shown
func (m *ConfirmationModel) Active() bool {
	return m.active
}

// Update handles key events for the confirmation
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	switch msg.String() {
	case "y", "Y":
		m.active = false
		if m.onConfirm != nil {
			return m.onConfirm()
		}
		return nil

	case "n", "N", "esc":
		m.active = false
		if m.onCancel != nil {
			return m.onCancel()
		}
		return nil
	}

	return nil
}

// View renders the dialog.
func (m *ConfirmationModel) View() string {
	if !m.active {
		return ""
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("170"))

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("214"))

	warningStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("214"))

	width := m.width
	if width == 0 {
		width = 60
	}
	height := m.height
	if height == 0 {
		height = 10
	}
	contentWidth := width - 4

	center := lipgloss.NewStyle().
		Width(contentWidth - 4).
		Align(lipgloss.Center)

	var mainContent strings.Builder

	if m.title != "" {
		mainContent.WriteString(center.Render(headerStyle.Render(m.title)))
		mainContent.WriteString("\n\n")
	}

	if m.message != "" {
		mainContent.WriteString(center.Render(m.message))
		mainContent.WriteString("\n")
	}

	if m.warning != "" {
		mainContent.WriteString("\n")
		mainContent.WriteString(center.Render(warningStyle.Render(m.warning)))
		mainContent.WriteString("\n")
	}

	mainContent.WriteString("\n")
	mainContent.WriteString(center.Render(formatConfirmOptions(m.destructive)))

	return borderStyle.
		Width(width).
		Height(height).
		Render(mainContent.String())
}

// formatConfirmOptions colors the y/n choices; destructive prompts show
// yes in red.
func formatConfirmOptions(destructive bool) string {
	yesColor, noColor := "114", "203" // green yes, red no
	if destructive {
		yesColor, noColor = "203", "114"
	}
	yes := lipgloss.NewStyle().Foreground(lipgloss.Color(yesColor)).Bold(true).Render("y")
	no := lipgloss.NewStyle().Foreground(lipgloss.Color(noColor)).Bold(true).Render("n")
	return fmt.Sprintf("[%s]es / [%s]o", yes, no)
}
