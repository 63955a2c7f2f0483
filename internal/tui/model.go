package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/summon/internal/calendar"
	"github.com/julianstephens/summon/internal/store"
	"github.com/julianstephens/summon/internal/tui/components/monthcal"
	"github.com/julianstephens/summon/internal/tui/components/projectlist"
	"github.com/julianstephens/summon/internal/validation"
)

type SessionState int

const (
	StateProjects SessionState = iota
	StateAddProject
	StateCalendar
	StateConfirmDelete
)

type Model struct {
	store             *store.ProjectStore
	state             SessionState
	keys              KeyMap
	help              help.Model
	projectList       projectlist.Model
	calModel          monthcal.Model
	form              *huh.Form
	projectForm       *ProjectFormModel
	selectedID        int64 // project open in the calendar
	projectToDeleteID int64
	validationWarning string
	quitting          bool
	width             int
	height            int
}

func NewModel(s *store.ProjectStore) Model {
	m := Model{
		store:       s,
		state:       StateProjects,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		projectList: projectlist.New(s.Projects(), 0, 0),
	}

	m.updateValidationStatus()

	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateProjects:
		keys = append(keys, m.keys.Add, m.keys.Delete, m.keys.Open)
	case StateCalendar:
		ck := m.calModel.Keys()
		keys = append(keys, ck.Toggle, ck.PrevMonth, ck.NextMonth, m.keys.Back)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Quit, m.keys.Back, m.keys.Help}

	var actions []key.Binding
	switch m.state {
	case StateProjects:
		actions = []key.Binding{m.keys.Add, m.keys.Delete, m.keys.Open}
	case StateCalendar:
		ck := m.calModel.Keys()
		actions = []key.Binding{ck.Up, ck.Down, ck.Left, ck.Right, ck.Toggle, ck.PrevMonth, ck.NextMonth}
	}

	return [][]key.Binding{global, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// openCalendar switches to the calendar view for the given project.
func (m *Model) openCalendar(id int64) {
	p, ok := m.store.Get(id)
	if !ok {
		return
	}
	m.selectedID = id
	m.calModel = monthcal.New(p, calendar.CurrentMonth())
	m.state = StateCalendar
}

// refresh re-reads the store snapshot into the visible components.
func (m *Model) refresh() {
	m.projectList.SetProjects(m.store.Projects())
	if p, ok := m.store.Get(m.selectedID); ok {
		m.calModel.SetProject(p)
	}
	m.updateValidationStatus()
}

// updateValidationStatus runs validation and updates the warning line
func (m *Model) updateValidationStatus() {
	result := validation.New().ValidateProjects(m.store.Projects())
	if result.HasConflicts() {
		m.validationWarning = fmt.Sprintf("⚠ %d data warning(s), run 'summon doctor'", len(result.Conflicts))
	} else {
		m.validationWarning = ""
	}
}
