package tui

import (
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateProjects:
		content = m.projectList.View()
	case StateAddProject:
		content = m.form.View()
	case StateCalendar:
		content = m.calModel.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	sections := []string{
		titleStyle.Render("Summon"),
		content,
	}
	if m.validationWarning != "" {
		sections = append(sections, warningStyle.Render(m.validationWarning))
	}
	sections = append(sections, m.help.View(m))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) viewConfirmDelete() string {
	name := "this project"
	if p, ok := m.store.Get(m.projectToDeleteID); ok {
		name = "\"" + p.Name + "\""
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		dangerStyle.Render("Delete "+name+" and all its booked days?"),
		"",
		"[y] Yes",
		"[n] No",
	)
}
