package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/formline/formline-terminal/pkg/models"
	"github.com/formline/formline-terminal/pkg/store"
)

type sessionState int

const (
	formListView sessionState = iota
	designerView
	fillView
)

type App struct {
	state     sessionState
	store     store.Store
	settings  *models.Settings
	formList  *FormListModel
	designer  *DesignerModel
	fill      *FillModel
	width     int
	height    int
	statusMsg string
}

func NewApp(st store.Store, settings *models.Settings) *App {
	if settings == nil {
		settings = models.DefaultSettings()
	}
	return &App{
		state:    formListView,
		store:    st,
		settings: settings,
		formList: NewFormListModel(st),
	}
}

func (a *App) Init() tea.Cmd {
	return a.formList.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Pass window size to all sub-models
		if a.formList != nil {
			a.formList.SetSize(msg.Width, msg.Height)
		}
		if a.designer != nil {
			a.designer.SetSize(msg.Width, msg.Height)
		}
		if a.fill != nil {
			a.fill.SetSize(msg.Width, msg.Height)
		}

	case tea.KeyMsg:
		// Global keybindings
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, nil

	case SwitchViewMsg:
		a.statusMsg = ""
		switch msg.view {
		case formListView:
			a.state = formListView
			if a.formList == nil {
				a.formList = NewFormListModel(a.store)
			} else {
				// Reload forms when returning to the list
				a.formList.loadForms()
			}
			a.formList.SetSize(a.width, a.height)
			return a, a.formList.Init()
		case designerView:
			a.state = designerView
			a.designer = NewDesignerModel(a.store, a.settings)
			a.designer.SetSize(a.width, a.height)
			a.designer.SetForm(msg.formID)
			return a, a.designer.Init()
		case fillView:
			a.state = fillView
			a.fill = NewFillModel(a.store)
			a.fill.SetSize(a.width, a.height)
			a.fill.SetForm(msg.formID)
			return a, a.fill.Init()
		}
	}

	// Route updates to the active view
	var cmd tea.Cmd
	switch a.state {
	case formListView:
		var m tea.Model
		m, cmd = a.formList.Update(msg)
		if fl, ok := m.(*FormListModel); ok {
			a.formList = fl
		}
	case designerView:
		var m tea.Model
		m, cmd = a.designer.Update(msg)
		if d, ok := m.(*DesignerModel); ok {
			a.designer = d
		}
	case fillView:
		var m tea.Model
		m, cmd = a.fill.Update(msg)
		if f, ok := m.(*FillModel); ok {
			a.fill = f
		}
	}

	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	var content string
	switch a.state {
	case formListView:
		content = a.formList.View()
	case designerView:
		content = a.designer.View()
	case fillView:
		content = a.fill.View()
	default:
		content = "Unknown view"
	}

	// Add status bar if there's a message
	if a.statusMsg != "" {
		statusStyle := lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)

		statusBar := statusStyle.Render(a.statusMsg)
		content = lipgloss.JoinVertical(lipgloss.Top, content, statusBar)
	}

	return content
}

// Messages for communication between views

type StatusMsg string

type SwitchViewMsg struct {
	view   sessionState
	formID string // empty means a brand-new form for the designer
}
