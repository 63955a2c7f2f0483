package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/summon/internal/models"
)

// schemaVersion is stored in the user_version pragma. The schema is a
// single fixed shape; a higher version on disk means the file was
// written by a newer summon.
const schemaVersion = 1

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := s.open(); err != nil {
		return err
	}

	return s.ensureSchema()
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLiteStore) ensureSchema() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version > schemaVersion {
		return fmt.Errorf("storage schema version %d is newer than supported version %d", version, schemaVersion)
	}

	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS projects (
			id   INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			type TEXT NOT NULL,
			rate TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS project_dates (
			project_id INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
			date       TEXT NOT NULL,
			paid       INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (project_id, date)
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	if _, err := s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("failed to set schema version: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() ([]models.Project, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return []models.Project{}, nil
	}

	if err := s.open(); err != nil {
		return nil, err
	}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query("SELECT id, name, type, rate FROM projects ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to read projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		var billingType, rate string
		if err := rows.Scan(&p.ID, &p.Name, &billingType, &rate); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		p.Type = models.BillingType(billingType)
		p.Rate = models.Rate(rate)
		p.Dates = []models.DateMark{}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read projects: %w", err)
	}

	for i := range projects {
		dates, err := s.loadDates(projects[i].ID)
		if err != nil {
			return nil, err
		}
		projects[i].Dates = dates
	}

	if projects == nil {
		projects = []models.Project{}
	}

	return projects, nil
}

func (s *SQLiteStore) loadDates(projectID int64) ([]models.DateMark, error) {
	rows, err := s.db.Query(
		"SELECT date, paid FROM project_dates WHERE project_id = ? ORDER BY date",
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to read dates for project %d: %w", projectID, err)
	}
	defer rows.Close()

	dates := []models.DateMark{}
	for rows.Next() {
		var d models.DateMark
		if err := rows.Scan(&d.Date, &d.Paid); err != nil {
			return nil, fmt.Errorf("failed to scan date mark: %w", err)
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

// Save replaces the stored list with the given one in a single
// transaction, matching the write-the-whole-list contract.
func (s *SQLiteStore) Save(projects []models.Project) error {
	if err := s.open(); err != nil {
		return err
	}
	if err := s.ensureSchema(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM project_dates"); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM projects"); err != nil {
		return err
	}

	projStmt, err := tx.Prepare("INSERT INTO projects (id, name, type, rate) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer projStmt.Close()

	dateStmt, err := tx.Prepare("INSERT INTO project_dates (project_id, date, paid) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	defer dateStmt.Close()

	for _, p := range projects {
		if _, err := projStmt.Exec(p.ID, p.Name, string(p.Type), string(p.Rate)); err != nil {
			return err
		}
		for _, d := range p.Dates {
			if _, err := dateStmt.Exec(p.ID, d.Date, d.Paid); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) ConfigPath() string {
	return s.path
}
