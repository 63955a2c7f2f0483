package store

import (
	"errors"
	"testing"
	"time"

	"github.com/julianstephens/summon/internal/models"
	"github.com/julianstephens/summon/internal/storage"
)

func setupTestStore(t *testing.T) (*ProjectStore, *storage.MemoryStore) {
	mem := storage.NewMemoryStore()
	s := New(mem)
	if err := s.Initialize(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	return s, mem
}

func mustAdd(t *testing.T, s *ProjectStore, d Draft) models.Project {
	t.Helper()
	p, ok := s.Add(d)
	if !ok {
		t.Fatalf("expected draft %+v to be accepted", d)
	}
	return p
}

func TestAdd_AssignsUniqueIDs(t *testing.T) {
	s, _ := setupTestStore(t)

	seen := make(map[int64]bool)
	for i := 0; i < 50; i++ {
		p := mustAdd(t, s, Draft{Name: "Acme", Type: "per_day", Rate: "500"})
		if seen[p.ID] {
			t.Fatalf("duplicate project id: %d", p.ID)
		}
		seen[p.ID] = true
		if len(p.Dates) != 0 {
			t.Errorf("new project should start with no dates, got %d", len(p.Dates))
		}
	}
}

func TestAdd_RejectsIncompleteDraft(t *testing.T) {
	s, mem := setupTestStore(t)

	drafts := []Draft{
		{Name: "", Type: "per_day", Rate: "500"},
		{Name: "   ", Type: "per_day", Rate: "500"},
		{Name: "Acme", Type: "", Rate: "500"},
		{Name: "Acme", Type: "hourly", Rate: "500"},
		{Name: "Acme", Type: "per_day", Rate: ""},
	}

	for _, d := range drafts {
		if _, ok := s.Add(d); ok {
			t.Errorf("expected draft %+v to be rejected", d)
		}
	}

	if len(s.Projects()) != 0 {
		t.Errorf("rejected drafts must not mutate the list, got %d projects", len(s.Projects()))
	}
	if mem.Saves != 0 {
		t.Errorf("rejected drafts must not be persisted, got %d saves", mem.Saves)
	}
}

func TestToggleDate_CyclesThroughStatuses(t *testing.T) {
	s, _ := setupTestStore(t)
	p := mustAdd(t, s, Draft{Name: "Acme", Type: "per_day", Rate: "500"})

	day := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)

	s.ToggleDate(p.ID, day)
	got, _ := s.Get(p.ID)
	if len(got.Dates) != 1 || got.Dates[0].Date != "2024-03-15" || got.Dates[0].Paid {
		t.Fatalf("after first toggle, want [{2024-03-15 false}], got %v", got.Dates)
	}

	s.ToggleDate(p.ID, day)
	got, _ = s.Get(p.ID)
	if len(got.Dates) != 1 || !got.Dates[0].Paid {
		t.Fatalf("after second toggle, want paid mark, got %v", got.Dates)
	}

	s.ToggleDate(p.ID, day)
	got, _ = s.Get(p.ID)
	if len(got.Dates) != 0 {
		t.Fatalf("after third toggle, want no dates, got %v", got.Dates)
	}
}

func TestToggleDate_StatusSequence(t *testing.T) {
	s, _ := setupTestStore(t)
	p := mustAdd(t, s, Draft{Name: "Acme", Type: "per_day", Rate: "500"})

	day := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)
	want := []models.DayStatus{models.StatusBooked, models.StatusPaid, models.StatusNotBooked}

	for i, expected := range want {
		s.ToggleDate(p.ID, day)
		got, _ := s.Get(p.ID)
		if status := got.Status("2024-03-15"); status != expected {
			t.Errorf("toggle %d: want %v, got %v", i+1, expected, status)
		}
	}
}

func TestToggleDate_NormalizesTimeOfDay(t *testing.T) {
	s, _ := setupTestStore(t)
	p := mustAdd(t, s, Draft{Name: "Acme", Type: "per_day", Rate: "500"})

	morning := time.Date(2024, time.March, 15, 8, 30, 0, 0, time.Local)
	evening := time.Date(2024, time.March, 15, 23, 45, 12, 0, time.Local)

	s.ToggleDate(p.ID, morning)
	s.ToggleDate(p.ID, evening)

	got, _ := s.Get(p.ID)
	if len(got.Dates) != 1 {
		t.Fatalf("two toggles on the same day must hit one mark, got %v", got.Dates)
	}
	if !got.Dates[0].Paid {
		t.Errorf("second toggle on the same day should mark it paid")
	}
}

func TestToggleDate_UnknownProjectIsNoop(t *testing.T) {
	s, mem := setupTestStore(t)
	mustAdd(t, s, Draft{Name: "Acme", Type: "per_day", Rate: "500"})
	savesBefore := mem.Saves

	s.ToggleDate(999, time.Now())

	if mem.Saves != savesBefore {
		t.Errorf("toggling an unknown project must not persist anything")
	}
}

func TestRemove(t *testing.T) {
	s, _ := setupTestStore(t)
	p1 := mustAdd(t, s, Draft{Name: "Acme", Type: "per_day", Rate: "500"})
	p2 := mustAdd(t, s, Draft{Name: "Globex", Type: "per_week", Rate: "2000"})

	s.Remove(p1.ID)

	projects := s.Projects()
	if len(projects) != 1 || projects[0].ID != p2.ID {
		t.Fatalf("want only %d left, got %v", p2.ID, projects)
	}

	// Unknown ids are ignored
	s.Remove(p1.ID)
	s.Remove(12345)
	if len(s.Projects()) != 1 {
		t.Errorf("removing unknown ids must not change the list")
	}
}

func TestToggleThenRemove_LeavesNoResidualState(t *testing.T) {
	s, mem := setupTestStore(t)
	p := mustAdd(t, s, Draft{Name: "Acme", Type: "per_day", Rate: "500"})

	s.ToggleDate(p.ID, time.Now())
	s.Remove(p.ID)

	if len(s.Projects()) != 0 {
		t.Errorf("store should be empty, got %v", s.Projects())
	}
	if len(mem.Projects) != 0 {
		t.Errorf("persisted list should be empty, got %v", mem.Projects)
	}
}

func TestInitialize_ResetsOnLoadError(t *testing.T) {
	mem := storage.NewMemoryStore()
	mem.LoadErr = errors.New("failed to parse storage")

	s := New(mem)
	if err := s.Initialize(); err != nil {
		t.Fatalf("load failures must not surface at startup, got %v", err)
	}
	if len(s.Projects()) != 0 {
		t.Errorf("want empty list after load failure, got %v", s.Projects())
	}
}

func TestInitialize_RestoresPersistedList(t *testing.T) {
	mem := storage.NewMemoryStore()
	mem.Projects = []models.Project{
		{ID: 7, Name: "Acme", Type: models.BillingPerDay, Rate: "500",
			Dates: []models.DateMark{{Date: "2024-03-15", Paid: true}}},
	}

	s := New(mem)
	if err := s.Initialize(); err != nil {
		t.Fatalf("failed to initialize: %v", err)
	}

	got, ok := s.Get(7)
	if !ok {
		t.Fatalf("persisted project not loaded")
	}
	if got.Status("2024-03-15") != models.StatusPaid {
		t.Errorf("want paid status from persisted mark, got %v", got.Status("2024-03-15"))
	}

	// New ids must not collide with loaded ones.
	p := mustAdd(t, s, Draft{Name: "Globex", Type: "per_week", Rate: "2000"})
	if p.ID == 7 {
		t.Errorf("fresh id collided with a loaded one")
	}
}

func TestMutationsWriteThrough(t *testing.T) {
	s, mem := setupTestStore(t)

	p := mustAdd(t, s, Draft{Name: "Acme", Type: "per_day", Rate: "500"})
	if mem.Saves != 1 {
		t.Errorf("add should save once, got %d", mem.Saves)
	}

	s.ToggleDate(p.ID, time.Now())
	if mem.Saves != 2 {
		t.Errorf("toggle should save, got %d saves", mem.Saves)
	}

	s.Remove(p.ID)
	if mem.Saves != 3 {
		t.Errorf("remove should save, got %d saves", mem.Saves)
	}
}

func TestSaveFailureKeepsMemoryAuthoritative(t *testing.T) {
	s, mem := setupTestStore(t)
	mem.SaveErr = errors.New("disk full")

	p, ok := s.Add(Draft{Name: "Acme", Type: "per_day", Rate: "500"})
	if !ok {
		t.Fatalf("add should succeed even when the save fails")
	}
	if _, ok := s.Get(p.ID); !ok {
		t.Errorf("project missing from the in-memory list after failed save")
	}
}

func TestSnapshotsAreImmutable(t *testing.T) {
	s, _ := setupTestStore(t)
	p := mustAdd(t, s, Draft{Name: "Acme", Type: "per_day", Rate: "500"})

	before := s.Projects()
	s.ToggleDate(p.ID, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local))

	if len(before[0].Dates) != 0 {
		t.Errorf("earlier snapshot was mutated: %v", before[0].Dates)
	}
	after, _ := s.Get(p.ID)
	if len(after.Dates) != 1 {
		t.Errorf("current snapshot missing the toggle: %v", after.Dates)
	}
}
