// Package monthcal renders one month of a project's calendar as a
// Sunday-first grid and lets a cursor walk the days. It never mutates
// project state: toggles are emitted as messages for the caller.
package monthcal

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/summon/internal/calendar"
	"github.com/julianstephens/summon/internal/models"
)

// ToggleDayMsg asks the caller to cycle the status of one day.
type ToggleDayMsg struct {
	Day time.Time
}

var (
	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	weekdayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(4).
			Align(lipgloss.Center)

	dayStyle = lipgloss.NewStyle().
			Width(4).
			Align(lipgloss.Center)

	bookedStyle = dayStyle.
			Foreground(lipgloss.Color("196")).
			Bold(true)

	paidStyle = dayStyle.
			Foreground(lipgloss.Color("40")).
			Bold(true)

	cursorStyle = lipgloss.NewStyle().
			Reverse(true)

	legendStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Toggle    key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up a week"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down a week"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev day"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next day"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle day"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("[", "p"),
			key.WithHelp("[", "prev month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("]", "n"),
			key.WithHelp("]", "next month"),
		),
	}
}

type Model struct {
	project models.Project
	month   calendar.Month
	cursor  int // day under the cursor, 1-based
	keys    KeyMap
}

func New(project models.Project, month calendar.Month) Model {
	cursor := 1
	if now := time.Now(); calendar.MonthOf(now) == month {
		cursor = now.Day()
	}
	return Model{
		project: project,
		month:   month,
		cursor:  cursor,
		keys:    DefaultKeyMap(),
	}
}

// SetProject swaps in a fresh snapshot after the caller mutated it.
func (m *Model) SetProject(p models.Project) {
	m.project = p
}

func (m Model) Keys() KeyMap {
	return m.keys
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Left):
			m.cursor = clamp(m.cursor-1, 1, m.month.Days())
		case key.Matches(msg, m.keys.Right):
			m.cursor = clamp(m.cursor+1, 1, m.month.Days())
		case key.Matches(msg, m.keys.Up):
			m.cursor = clamp(m.cursor-7, 1, m.month.Days())
		case key.Matches(msg, m.keys.Down):
			m.cursor = clamp(m.cursor+7, 1, m.month.Days())
		case key.Matches(msg, m.keys.PrevMonth):
			m.month = m.month.Prev()
			m.cursor = clamp(m.cursor, 1, m.month.Days())
		case key.Matches(msg, m.keys.NextMonth):
			m.month = m.month.Next()
			m.cursor = clamp(m.cursor, 1, m.month.Days())
		case key.Matches(msg, m.keys.Toggle):
			day := time.Date(m.month.Year, m.month.Month, m.cursor, 0, 0, 0, 0, time.Local)
			return m, func() tea.Msg { return ToggleDayMsg{Day: day} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	header := labelStyle.Render(m.project.Name + " — " + m.month.Label())

	var weekdays []string
	for _, name := range calendar.WeekdayNames {
		weekdays = append(weekdays, weekdayStyle.Render(name))
	}

	rows := []string{header, lipgloss.JoinHorizontal(lipgloss.Top, weekdays...)}

	var week []string
	for i, cell := range calendar.Cells(m.month, m.project) {
		week = append(week, m.renderCell(cell))
		if (i+1)%7 == 0 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, week...))
			week = nil
		}
	}
	if len(week) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, week...))
	}

	rows = append(rows, "",
		legendStyle.Render("enter: not booked → booked → paid    [/]: change month"))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderCell(cell calendar.Cell) string {
	if cell.Day == 0 {
		return dayStyle.Render("")
	}

	style := dayStyle
	switch cell.Status {
	case models.StatusBooked:
		style = bookedStyle
	case models.StatusPaid:
		style = paidStyle
	}

	s := style.Render(strconv.Itoa(cell.Day))
	if cell.Day == m.cursor {
		return cursorStyle.Render(s)
	}
	return s
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
