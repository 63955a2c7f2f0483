package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/summon/internal/models"
	"github.com/julianstephens/summon/internal/store"
	"github.com/julianstephens/summon/internal/tui/components/monthcal"
	"github.com/julianstephens/summon/internal/tui/components/projectlist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.projectList.SetSize(msg.Width-4, msg.Height-6)
		return m, nil
	}

	// The add-project form owns input while open. Esc discards the
	// draft; an incomplete submit keeps the form open.
	if m.state == StateAddProject {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.projectForm = nil
			m.state = StateProjects
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			_, ok := m.store.Add(store.Draft{
				Name: m.projectForm.Name,
				Type: string(m.projectForm.Type),
				Rate: m.projectForm.Rate,
			})
			if ok {
				m.projectForm = nil
				m.refresh()
				m.state = StateProjects
			} else {
				// Rejected draft: reopen the form with the same values.
				m.form = newProjectForm(m.projectForm)
				cmds = append(cmds, m.form.Init())
			}
		case huh.StateAborted:
			m.projectForm = nil
			m.state = StateProjects
		}
		return m, tea.Batch(cmds...)
	}

	if m.state == StateConfirmDelete {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				m.store.Remove(m.projectToDeleteID)
				m.projectToDeleteID = 0
				m.refresh()
				m.state = StateProjects
			case "n", "N", "esc":
				m.projectToDeleteID = 0
				m.state = StateProjects
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			if m.state == StateProjects && m.projectList.FilterActive() {
				break
			}
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Back):
			if m.state == StateCalendar {
				m.state = StateProjects
				return m, nil
			}
		}

	case projectlist.AddProjectMsg:
		m.projectForm = &ProjectFormModel{Type: models.BillingPerDay}
		m.form = newProjectForm(m.projectForm)
		m.state = StateAddProject
		return m, m.form.Init()

	case projectlist.DeleteProjectMsg:
		m.projectToDeleteID = msg.ID
		m.state = StateConfirmDelete
		return m, nil

	case projectlist.OpenCalendarMsg:
		m.openCalendar(msg.ID)
		return m, nil

	case monthcal.ToggleDayMsg:
		m.store.ToggleDate(m.selectedID, msg.Day)
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.state {
	case StateProjects:
		m.projectList, cmd = m.projectList.Update(msg)
	case StateCalendar:
		m.calModel, cmd = m.calModel.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}
