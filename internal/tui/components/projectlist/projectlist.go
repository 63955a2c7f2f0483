package projectlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/summon/internal/models"
)

type AddProjectMsg struct{}

type DeleteProjectMsg struct {
	ID int64
}

type OpenCalendarMsg struct {
	ID int64
}

type Item struct {
	Project models.Project
}

func (i Item) Title() string { return i.Project.Name }

func (i Item) Description() string {
	return fmt.Sprintf("%s | $%s | %d days (%d paid)",
		i.Project.Type, i.Project.Rate, i.Project.TotalDays(), i.Project.PaidDays())
}

func (i Item) FilterValue() string { return i.Project.Name }

type KeyMap struct {
	Add    key.Binding
	Delete key.Binding
	Open   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "calendar"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(projects []models.Project, width, height int) Model {
	l := list.New(toItems(projects), list.NewDefaultDelegate(), width, height)
	l.Title = "Projects"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // help is handled globally in the main model

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Delete, keys.Open}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Delete, keys.Open}
	}

	return Model{list: l, keys: keys}
}

func toItems(projects []models.Project) []list.Item {
	items := make([]list.Item, len(projects))
	for i, p := range projects {
		items[i] = Item{Project: p}
	}
	return items
}

func (m *Model) SetProjects(projects []models.Project) {
	m.list.SetItems(toItems(projects))
}

func (m Model) Init() tea.Cmd {
	return nil
}

// FilterActive reports whether the list is capturing keys for its
// filter input.
func (m Model) FilterActive() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddProjectMsg{} }
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteProjectMsg{ID: i.Project.ID} }
			}
		case key.Matches(msg, m.keys.Open):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return OpenCalendarMsg{ID: i.Project.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No projects yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
