// Package memory holds the process-lifetime entity store. All state lives in
// one Store guarded by a single RWMutex, which is what makes the project
// delete cascade atomic: both collections change under one write lock, so no
// reader observes a project gone with its tasks still present.
package memory

import (
	"sync"

	"github.com/sprintdesk/taskboard/internal/core/domain"
)

// Store owns every entity collection. Slices keep insertion order (the board
// relies on it); the maps are id indexes into the same records.
type Store struct {
	mu sync.RWMutex

	users        []*domain.User
	usersByID    map[string]*domain.User
	projects     []*domain.Project
	projectsByID map[string]*domain.Project
	tasks        []*domain.Task
	tasksByID    map[string]*domain.Task
}

func NewStore() *Store {
	return &Store{
		usersByID:    make(map[string]*domain.User),
		projectsByID: make(map[string]*domain.Project),
		tasksByID:    make(map[string]*domain.Task),
	}
}

// Repositories returns the port implementations sharing this store.
func (s *Store) Repositories() (*UserRepository, *ProjectRepository, *TaskRepository) {
	return &UserRepository{store: s}, &ProjectRepository{store: s}, &TaskRepository{store: s}
}
