package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/formline/formline-terminal/pkg/models"
	"github.com/formline/formline-terminal/pkg/registry"
)

// Fixed row layout shared by View and mouse hit-testing: title,
// description, a blank line, then column headings, then one item per row.
const (
	contentTop   = 4
	paletteWidth = 24
)

func (m *DesignerModel) previewWidth() int {
	if !m.showPreview {
		return 0
	}
	w := m.width / 3
	if w > 44 {
		w = 44
	}
	return w
}

func (m *DesignerModel) canvasWidth() int {
	w := m.width - paletteWidth - m.previewWidth()
	if w < 20 {
		w = 20
	}
	return w
}

type zoneKind int

const (
	zoneNone zoneKind = iota
	zonePaletteItem
	zoneCanvasField
	zoneCanvasSurface
)

type zone struct {
	kind      zoneKind
	index     int
	fieldType models.FieldType
	fieldID   string
}

// hitTest maps a pointer cell to the palette entry, canvas field, or
// canvas surface underneath it.
func (m *DesignerModel) hitTest(x, y int) zone {
	if y < contentTop || m.session == nil {
		return zone{}
	}
	row := y - contentTop
	contentHeight := m.height - contentTop - 2
	if contentHeight > 0 && row >= contentHeight {
		return zone{}
	}

	switch {
	case x >= 0 && x < paletteWidth:
		entries := registry.Entries()
		if row < len(entries) {
			return zone{kind: zonePaletteItem, index: row, fieldType: entries[row].Type}
		}
		return zone{}
	case x < paletteWidth+m.canvasWidth():
		fields := m.session.Form.Fields
		if row < len(fields) {
			return zone{kind: zoneCanvasField, index: row, fieldID: fields[row].ID}
		}
		return zone{kind: zoneCanvasSurface}
	}
	return zone{}
}

func (m *DesignerModel) View() string {
	if m.session == nil {
		return "Loading..."
	}

	if m.exitConfirm.Active() {
		return lipgloss.NewStyle().Padding(0, 1).Render(m.exitConfirm.View())
	}
	if m.deleteConfirm.Active() {
		return lipgloss.NewStyle().Padding(0, 1).Render(m.deleteConfirm.View())
	}
	if m.editor.Active() {
		return lipgloss.NewStyle().Padding(1, 1).Render(m.editor.View(m.width))
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("214"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))

	hintStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))

	activeHeaderStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("170"))

	inactiveHeaderStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("240"))

	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("170")).
		Background(lipgloss.Color("236")).
		Bold(true)

	normalStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))

	var b strings.Builder

	// Row 0: title
	if m.editingTitle {
		b.WriteString(m.titleInput.View())
	} else {
		title := m.session.Form.Title
		if strings.TrimSpace(title) == "" {
			title = "Untitled Form"
		}
		if m.session.Dirty() {
			title += " *"
		}
		b.WriteString(titleStyle.Render(title))
		if m.err != nil {
			b.WriteString("  ")
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Render(fmt.Sprintf("(load failed: %v, editing a new form)", m.err)))
		}
	}
	b.WriteString("\n")

	// Row 1: description
	if m.editingDescription {
		b.WriteString(m.descInput.View())
	} else if strings.TrimSpace(m.session.Form.Description) != "" {
		b.WriteString(descStyle.Render(truncate(m.session.Form.Description, m.width-2)))
	} else {
		b.WriteString(hintStyle.Render("press 'i' to add a description"))
	}
	b.WriteString("\n\n")

	// Row 3: column headings
	paletteHeader := inactiveHeaderStyle
	canvasHeader := inactiveHeaderStyle
	if m.activeColumn == paletteColumn {
		paletteHeader = activeHeaderStyle
	} else {
		canvasHeader = activeHeaderStyle
	}
	headings := lipgloss.NewStyle().Width(paletteWidth).Render(paletteHeader.Render("PALETTE")) +
		lipgloss.NewStyle().Width(m.canvasWidth()).Render(canvasHeader.Render(fmt.Sprintf("CANVAS (%d)", len(m.session.Form.Fields))))
	if m.showPreview {
		headings += inactiveHeaderStyle.Render("PREVIEW")
	}
	b.WriteString(headings)
	b.WriteString("\n")

	contentHeight := m.height - contentTop - 2
	if contentHeight < 1 {
		contentHeight = 1
	}

	// Palette rows
	paletteLines := make([]string, 0, contentHeight)
	for i, entry := range registry.Entries() {
		line := fmt.Sprintf("%s %s", entry.Icon, entry.DisplayName)
		if i == m.paletteCursor && m.activeColumn == paletteColumn {
			line = selectedStyle.Render("▸ " + line)
		} else {
			line = normalStyle.Render("  " + line)
		}
		paletteLines = append(paletteLines, line)
	}

	// Canvas rows
	canvasLines := make([]string, 0, contentHeight)
	for i, f := range m.session.Form.Fields {
		required := ""
		if f.Required {
			required = " *"
		}
		line := fmt.Sprintf("%s %s (%s)%s", registry.Lookup(f.Type).Icon, truncate(f.Label, m.canvasWidth()-14), f.Type, required)
		if m.drag.Dragging() && m.drag.Source().FieldID == f.ID {
			line = hintStyle.Render("┆ " + line)
		} else if i == m.canvasCursor && m.activeColumn == canvasColumn {
			line = selectedStyle.Render("▸ " + line)
		} else {
			line = normalStyle.Render("  " + line)
		}
		canvasLines = append(canvasLines, line)
	}
	if len(m.session.Form.Fields) == 0 {
		canvasLines = append(canvasLines, hintStyle.Render("  drop fields here"))
	}

	paletteBlock := renderColumn(paletteLines, paletteWidth, contentHeight)
	canvasBlock := renderColumn(canvasLines, m.canvasWidth(), contentHeight)

	body := lipgloss.JoinHorizontal(lipgloss.Top, paletteBlock, canvasBlock)
	if m.showPreview {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.preview.View())
	}
	b.WriteString(body)
	b.WriteString("\n")

	b.WriteString(hintStyle.Render("drag to place/reorder • enter add/edit • d delete • t title • i description • ctrl+s save • y copy • p preview • esc back"))
	return b.String()
}

// renderColumn pads lines to an exact width and height so rows across
// columns stay on the same terminal row (the hit-test depends on it).
func renderColumn(lines []string, width, height int) string {
	lineStyle := lipgloss.NewStyle().Width(width).MaxHeight(1)
	out := make([]string, height)
	for i := 0; i < height; i++ {
		if i < len(lines) {
			out[i] = lineStyle.Render(lines[i])
		} else {
			out[i] = lineStyle.Render("")
		}
	}
	return strings.Join(out, "\n")
}
