package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/formline/formline-terminal/pkg/designer"
	"github.com/formline/formline-terminal/pkg/models"
	"github.com/formline/formline-terminal/pkg/registry"
	"github.com/formline/formline-terminal/pkg/renderer"
	"github.com/formline/formline-terminal/pkg/store"
)

type designerColumn int

const (
	paletteColumn designerColumn = iota
	canvasColumn
)

// DesignerModel is the form designer: a palette of field types on the
// left, the canvas of placed fields in the middle, and a live preview on
// the right. Fields are placed by dragging palette entries onto the
// canvas (or pressing enter) and reordered by dragging them onto each
// other.
type DesignerModel struct {
	store    store.Store
	settings *models.Settings

	session *designer.Session
	drag    *designer.Coordinator

	editor        *FieldEditor
	exitConfirm   *ConfirmationModel
	deleteConfirm *ConfirmationModel

	activeColumn  designerColumn
	paletteCursor int
	canvasCursor  int

	editingTitle       bool
	editingDescription bool
	titleInput         textinput.Model
	descInput          textinput.Model

	showPreview bool
	preview     viewport.Model

	width  int
	height int
	err    error
}

func NewDesignerModel(st store.Store, settings *models.Settings) *DesignerModel {
	if settings == nil {
		settings = models.DefaultSettings()
	}

	title := textinput.New()
	title.Placeholder = "Form Title"
	title.CharLimit = 120

	desc := textinput.New()
	desc.Placeholder = "Form description (optional)"
	desc.CharLimit = 240

	return &DesignerModel{
		store:         st,
		settings:      settings,
		drag:          designer.NewCoordinator(settings.Designer.DragThreshold),
		editor:        NewFieldEditor(),
		exitConfirm:   NewConfirmation(),
		deleteConfirm: NewConfirmation(),
		activeColumn:  paletteColumn,
		showPreview:   settings.UI.ShowPreview,
		titleInput:    title,
		descInput:     desc,
	}
}

func (m *DesignerModel) Init() tea.Cmd {
	return nil
}

func (m *DesignerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.preview.Width = m.previewWidth() - 2
	m.preview.Height = height - contentTop - 2
	m.updatePreview()
}

// SetForm loads the form with the given id into a fresh session; an empty
// id starts a new form.
func (m *DesignerModel) SetForm(id string) {
	ids := store.NewIDSource(m.settings.Storage.IDFormat)
	if id == "" {
		m.session = designer.NewSession(ids)
		m.err = nil
		m.updatePreview()
		return
	}
	form, err := m.store.GetForm(id)
	if err != nil {
		// Cannot load: fall back to a new-form session and surface it.
		m.session = designer.NewSession(ids)
		m.err = err
		m.updatePreview()
		return
	}
	m.session = designer.LoadSession(*form, ids)
	m.err = nil
	m.updatePreview()
}

// Session exposes the designer session for tests.
func (m *DesignerModel) Session() *designer.Session {
	return m.session
}

func (m *DesignerModel) updatePreview() {
	if m.session == nil {
		return
	}
	width := m.preview.Width
	if width < 10 {
		width = 40
	}
	content := renderer.Header(m.session.Form, width) + "\n\n" +
		renderer.Fields(m.session.Form.SortedFields(), nil, width)
	m.preview.SetContent(content)
}

func (m *DesignerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.MouseMsg:
		// Pointer input never reaches through a modal.
		if m.editor.Active() || m.exitConfirm.Active() || m.deleteConfirm.Active() ||
			m.editingTitle || m.editingDescription {
			return m, nil
		}
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		if m.exitConfirm.Active() {
			return m, m.exitConfirm.Update(msg)
		}
		if m.deleteConfirm.Active() {
			return m, m.deleteConfirm.Update(msg)
		}
		if m.editor.Active() {
			action, cmd := m.editor.Update(msg)
			switch action {
			case EditorCommit:
				m.session.UpdateField(m.editor.FieldID(), m.editor.Patch())
				m.updatePreview()
			case EditorCancel:
				// Working copy discarded; the field is untouched.
			}
			return m, cmd
		}
		if m.editingTitle {
			return m, m.handleTitleEditing(msg)
		}
		if m.editingDescription {
			return m, m.handleDescriptionEditing(msg)
		}
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *DesignerModel) handleTitleEditing(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter", "esc":
		if msg.String() == "enter" {
			m.session.Form.Title = m.titleInput.Value()
			m.updatePreview()
		}
		m.editingTitle = false
		m.titleInput.Blur()
		return nil
	}
	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	return cmd
}

func (m *DesignerModel) handleDescriptionEditing(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter", "esc":
		if msg.String() == "enter" {
			m.session.Form.Description = m.descInput.Value()
			m.updatePreview()
		}
		m.editingDescription = false
		m.descInput.Blur()
		return nil
	}
	var cmd tea.Cmd
	m.descInput, cmd = m.descInput.Update(msg)
	return cmd
}

func (m *DesignerModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		if m.session.Dirty() {
			m.exitConfirm.ShowDialog(
				"⚠️  Unsaved Changes",
				"You have unsaved changes in this form.",
				"Exit without saving?",
				true, // destructive
				m.width-4,
				10,
				func() tea.Cmd {
					return func() tea.Msg {
						return SwitchViewMsg{view: formListView}
					}
				},
				nil,
			)
			return nil
		}
		return func() tea.Msg {
			return SwitchViewMsg{view: formListView}
		}

	case "tab":
		if m.activeColumn == paletteColumn {
			m.activeColumn = canvasColumn
		} else {
			m.activeColumn = paletteColumn
		}

	case "up", "k":
		m.moveCursor(-1)

	case "down", "j":
		m.moveCursor(1)

	case "shift+up", "K":
		m.moveField(-1)

	case "shift+down", "J":
		m.moveField(1)

	case "enter":
		if m.activeColumn == paletteColumn {
			m.insertFromPalette(m.paletteCursor)
		} else if f := m.canvasField(m.canvasCursor); f != nil {
			m.editor.Open(f)
		}

	case "d", "delete":
		if m.activeColumn == canvasColumn {
			if f := m.canvasField(m.canvasCursor); f != nil {
				m.session.DeleteField(f.ID)
				if m.canvasCursor >= len(m.session.Form.Fields) && m.canvasCursor > 0 {
					m.canvasCursor--
				}
				m.updatePreview()
			}
		}

	case "t":
		m.editingTitle = true
		m.titleInput.SetValue(m.session.Form.Title)
		m.titleInput.Focus()

	case "i":
		m.editingDescription = true
		m.descInput.SetValue(m.session.Form.Description)
		m.descInput.Focus()

	case "p":
		m.showPreview = !m.showPreview
		m.SetSize(m.width, m.height)

	case "y":
		if err := clipboard.WriteAll(renderer.Markdown(m.session.Form)); err != nil {
			return func() tea.Msg {
				return StatusMsg(fmt.Sprintf("× Failed to copy to clipboard: %v", err))
			}
		}
		return func() tea.Msg {
			return StatusMsg("✓ Copied form to clipboard")
		}

	case "ctrl+s":
		return m.saveForm()

	case "pgup":
		m.preview.HalfViewUp()

	case "pgdown":
		m.preview.HalfViewDown()
	}

	return nil
}

func (m *DesignerModel) moveCursor(delta int) {
	switch m.activeColumn {
	case paletteColumn:
		next := m.paletteCursor + delta
		if next >= 0 && next < len(registry.Entries()) {
			m.paletteCursor = next
		}
	case canvasColumn:
		next := m.canvasCursor + delta
		if next >= 0 && next < len(m.session.Form.Fields) {
			m.canvasCursor = next
		}
	}
}

// moveField swaps the selected canvas field with its neighbor, expressed
// as a reorder onto the neighbor's position.
func (m *DesignerModel) moveField(delta int) {
	if m.activeColumn != canvasColumn {
		return
	}
	fields := m.session.Form.Fields
	target := m.canvasCursor + delta
	if m.canvasCursor < 0 || m.canvasCursor >= len(fields) || target < 0 || target >= len(fields) {
		return
	}
	m.session.Reorder(fields[m.canvasCursor].ID, fields[target].ID)
	m.canvasCursor = target
	m.updatePreview()
}

func (m *DesignerModel) canvasField(i int) *models.Field {
	if i >= 0 && i < len(m.session.Form.Fields) {
		f := m.session.Form.Fields[i].Clone()
		return &f
	}
	return nil
}

// insertFromPalette places a new field of the palette entry's type at the
// end of the canvas and opens the configuration editor on it.
func (m *DesignerModel) insertFromPalette(i int) {
	entries := registry.Entries()
	if i < 0 || i >= len(entries) {
		return
	}
	field := m.session.InsertField(entries[i].Type)
	m.canvasCursor = len(m.session.Form.Fields) - 1
	m.updatePreview()
	m.editor.Open(&field)
}

func (m *DesignerModel) saveForm() tea.Cmd {
	return func() tea.Msg {
		saved, err := m.session.Save(m.store)
		if err != nil {
			return StatusMsg(fmt.Sprintf("× Failed to save form: %v", err))
		}
		return StatusMsg(fmt.Sprintf("✓ Form saved: %s", saved.Title))
	}
}

// Mouse handling: presses begin a drag gesture on palette entries and
// canvas fields, releases classify the drop and apply at most one
// designer operation.

func (m *DesignerModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		return m.handleMousePress(msg.X, msg.Y)

	case tea.MouseActionMotion:
		m.drag.Move(msg.X, msg.Y)

	case tea.MouseActionRelease:
		return m.handleMouseRelease(msg.X, msg.Y)
	}
	return nil
}

func (m *DesignerModel) handleMousePress(x, y int) tea.Cmd {
	zone := m.hitTest(x, y)
	switch zone.kind {
	case zonePaletteItem:
		m.activeColumn = paletteColumn
		m.paletteCursor = zone.index
		if err := m.drag.Begin(designer.DragSource{
			Kind:      designer.SourcePalette,
			FieldType: zone.fieldType,
		}, x, y); err != nil {
			// A lost release event left a stale gesture; recover.
			m.drag.Cancel()
		}
	case zoneCanvasField:
		m.activeColumn = canvasColumn
		m.canvasCursor = zone.index
		if err := m.drag.Begin(designer.DragSource{
			Kind:    designer.SourceCanvasField,
			FieldID: zone.fieldID,
		}, x, y); err != nil {
			m.drag.Cancel()
		}
	}
	return nil
}

func (m *DesignerModel) handleMouseRelease(x, y int) tea.Cmd {
	if !m.drag.Dragging() {
		return nil
	}
	zone := m.hitTest(x, y)

	var target designer.DropTarget
	switch zone.kind {
	case zoneCanvasField:
		target = designer.DropTarget{Kind: designer.TargetField, FieldID: zone.fieldID}
	case zoneCanvasSurface:
		target = designer.DropTarget{Kind: designer.TargetCanvas}
	default:
		target = designer.DropTarget{Kind: designer.TargetNone}
	}

	op, ok := m.drag.Drop(target)
	if !ok {
		return nil
	}

	switch op := op.(type) {
	case designer.InsertOp:
		field := m.session.InsertField(op.Type)
		m.canvasCursor = len(m.session.Form.Fields) - 1
		m.updatePreview()
		m.editor.Open(&field)
	case designer.ReorderOp:
		m.session.Reorder(op.MovedID, op.TargetID)
		for i, f := range m.session.Form.Fields {
			if f.ID == op.MovedID {
				m.canvasCursor = i
				break
			}
		}
		m.updatePreview()
	}
	return nil
}
