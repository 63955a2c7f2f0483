// Package store holds the authoritative in-memory project list. All
// mutations go through ProjectStore, which mirrors the full list to
// its storage provider after every change.
package store

import (
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/julianstephens/summon/internal/calendar"
	"github.com/julianstephens/summon/internal/models"
	"github.com/julianstephens/summon/internal/storage"
)

// Draft is uncommitted add-project form input. It is discarded on
// cancel and cleared on a successful add.
type Draft struct {
	Name string
	Type string
	Rate string
}

// Valid reports whether all required fields are filled and the
// billing type is one of the known values.
func (d Draft) Valid() bool {
	if strings.TrimSpace(d.Name) == "" || strings.TrimSpace(d.Rate) == "" {
		return false
	}
	_, err := models.ParseBillingType(d.Type)
	return err == nil
}

// ProjectStore is the single source of truth for the project list.
// Mutations are copy-on-write: slices handed out by Projects are
// never changed afterwards, so a rendered snapshot stays stable.
//
// Not safe for concurrent use; everything runs on the one event loop.
type ProjectStore struct {
	provider storage.Provider
	projects []models.Project
	lastID   int64
}

func New(provider storage.Provider) *ProjectStore {
	return &ProjectStore{
		provider: provider,
		projects: []models.Project{},
	}
}

// Initialize loads the persisted list once. Unreadable or malformed
// storage resets to an empty list and logs the failure; startup never
// blocks on bad data.
func (s *ProjectStore) Initialize() error {
	projects, err := s.provider.Load()
	if err != nil {
		lgr.Printf("[WARN] resetting to empty project list: %v", err)
		s.projects = []models.Project{}
		return nil
	}

	s.projects = projects
	for _, p := range projects {
		if p.ID > s.lastID {
			s.lastID = p.ID
		}
	}
	return nil
}

// Projects returns the current snapshot. Callers may hold it across
// mutations; it will not change underneath them.
func (s *ProjectStore) Projects() []models.Project {
	return s.projects
}

func (s *ProjectStore) Get(id int64) (models.Project, bool) {
	for _, p := range s.projects {
		if p.ID == id {
			return p, true
		}
	}
	return models.Project{}, false
}

// Add appends a new project from the draft. An incomplete draft is a
// silent no-op: ok is false, nothing is saved, and the caller keeps
// the form open.
func (s *ProjectStore) Add(d Draft) (models.Project, bool) {
	if !d.Valid() {
		return models.Project{}, false
	}

	billingType, _ := models.ParseBillingType(d.Type)
	p := models.Project{
		ID:    s.nextID(),
		Name:  strings.TrimSpace(d.Name),
		Type:  billingType,
		Rate:  models.Rate(strings.TrimSpace(d.Rate)),
		Dates: []models.DateMark{},
	}

	next := make([]models.Project, 0, len(s.projects)+1)
	next = append(next, s.projects...)
	next = append(next, p)
	s.commit(next)

	return p, true
}

// Remove drops the project with the given id. Unknown ids are
// ignored.
func (s *ProjectStore) Remove(id int64) {
	idx := s.indexOf(id)
	if idx < 0 {
		return
	}

	next := make([]models.Project, 0, len(s.projects)-1)
	next = append(next, s.projects[:idx]...)
	next = append(next, s.projects[idx+1:]...)
	s.commit(next)
}

// ToggleDate cycles the day's status for the project:
// not booked -> booked -> paid -> not booked. The time-of-day is
// dropped before lookup. Unknown ids are ignored.
func (s *ProjectStore) ToggleDate(id int64, day time.Time) {
	idx := s.indexOf(id)
	if idx < 0 {
		return
	}

	date := calendar.Normalize(day)
	p := s.projects[idx]

	var dates []models.DateMark
	switch p.Status(date) {
	case models.StatusNotBooked:
		dates = make([]models.DateMark, 0, len(p.Dates)+1)
		dates = append(dates, p.Dates...)
		dates = append(dates, models.DateMark{Date: date, Paid: false})
	case models.StatusBooked:
		dates = make([]models.DateMark, len(p.Dates))
		copy(dates, p.Dates)
		for i := range dates {
			if dates[i].Date == date {
				dates[i].Paid = true
			}
		}
	case models.StatusPaid:
		dates = make([]models.DateMark, 0, len(p.Dates)-1)
		for _, d := range p.Dates {
			if d.Date != date {
				dates = append(dates, d)
			}
		}
	}

	next := make([]models.Project, len(s.projects))
	copy(next, s.projects)
	p.Dates = dates
	next[idx] = p
	s.commit(next)
}

func (s *ProjectStore) indexOf(id int64) int {
	for i, p := range s.projects {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// nextID hands out unix-millisecond ids, bumped when two adds land in
// the same millisecond so ids stay pairwise distinct.
func (s *ProjectStore) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// commit swaps in the new snapshot and writes it through. Persistence
// is fire-and-forget: a failed save is logged and the in-memory list
// stays authoritative.
func (s *ProjectStore) commit(next []models.Project) {
	s.projects = next
	if err := s.provider.Save(next); err != nil {
		lgr.Printf("[WARN] failed to persist project list: %v", err)
	}
}
