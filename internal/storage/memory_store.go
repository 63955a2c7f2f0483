package storage

import "github.com/julianstephens/summon/internal/models"

// MemoryStore is an in-process Provider for tests and throwaway
// sessions. LoadErr and SaveErr let tests force failures.
type MemoryStore struct {
	Projects []models.Project
	LoadErr  error
	SaveErr  error
	Saves    int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init() error {
	return nil
}

func (s *MemoryStore) Load() ([]models.Project, error) {
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	out := make([]models.Project, len(s.Projects))
	copy(out, s.Projects)
	return out, nil
}

func (s *MemoryStore) Save(projects []models.Project) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Projects = make([]models.Project, len(projects))
	copy(s.Projects, projects)
	s.Saves++
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) ConfigPath() string {
	return ":memory:"
}
