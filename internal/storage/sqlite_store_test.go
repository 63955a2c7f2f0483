package storage

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/julianstephens/summon/internal/models"
)

func setupTestSQLiteStore(t *testing.T) *SQLiteStore {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store := NewSQLiteStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	store := setupTestSQLiteStore(t)

	want := testProjects()
	if err := store.Save(want); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\nwant %+v\ngot  %+v", want, got)
	}
}

func TestSQLiteStore_SaveReplacesFullList(t *testing.T) {
	store := setupTestSQLiteStore(t)

	if err := store.Save(testProjects()); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	// Second save with one project must not leave traces of the first
	want := []models.Project{
		{ID: 3, Name: "Initech", Type: models.BillingPerWeek, Rate: "3000",
			Dates: []models.DateMark{{Date: "2024-04-01", Paid: true}}},
	}
	if err := store.Save(want); err != nil {
		t.Fatalf("failed to save replacement: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("replacement mismatch:\nwant %+v\ngot  %+v", want, got)
	}
}

func TestSQLiteStore_LoadMissingFile(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "missing.db"))

	got, err := store.Load()
	if err != nil {
		t.Fatalf("missing storage should load as empty, got error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("want empty list, got %v", got)
	}
}

func TestSQLiteStore_LoadOrdersByID(t *testing.T) {
	store := setupTestSQLiteStore(t)

	projects := []models.Project{
		{ID: 20, Name: "B", Type: models.BillingPerDay, Rate: "2", Dates: []models.DateMark{}},
		{ID: 10, Name: "A", Type: models.BillingPerDay, Rate: "1", Dates: []models.DateMark{}},
	}
	if err := store.Save(projects); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if got[0].ID != 10 || got[1].ID != 20 {
		t.Errorf("want ids ordered 10, 20; got %d, %d", got[0].ID, got[1].ID)
	}
}
