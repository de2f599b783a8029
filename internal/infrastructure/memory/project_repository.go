package memory

import (
	"context"

	"github.com/sprintdesk/taskboard/internal/core/domain"
)

// ProjectRepository is the in-memory ports.ProjectRepository.
type ProjectRepository struct {
	store *Store
}

func NewProjectRepository(store *Store) *ProjectRepository {
	return &ProjectRepository{store: store}
}

func (r *ProjectRepository) Insert(_ context.Context, p *domain.Project) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	clone := cloneProject(p)
	r.store.projects = append(r.store.projects, clone)
	r.store.projectsByID[clone.ID] = clone
	return nil
}

func (r *ProjectRepository) Replace(_ context.Context, p *domain.Project) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.projectsByID[p.ID]; !ok {
		return domain.ErrProjectNotFound
	}

	clone := cloneProject(p)
	for i, existing := range r.store.projects {
		if existing.ID == p.ID {
			r.store.projects[i] = clone
			break
		}
	}
	r.store.projectsByID[p.ID] = clone
	return nil
}

// Delete removes the project and every task referencing it, all under one
// write lock. Returns the number of cascaded task deletions.
func (r *ProjectRepository) Delete(_ context.Context, id string) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.projectsByID[id]; !ok {
		return 0, domain.ErrProjectNotFound
	}

	kept := r.store.projects[:0]
	for _, p := range r.store.projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	r.store.projects = kept
	delete(r.store.projectsByID, id)

	removed := 0
	keptTasks := r.store.tasks[:0]
	for _, t := range r.store.tasks {
		if t.ProjectID == id {
			delete(r.store.tasksByID, t.ID)
			removed++
			continue
		}
		keptTasks = append(keptTasks, t)
	}
	r.store.tasks = keptTasks

	return removed, nil
}

func (r *ProjectRepository) FindByID(_ context.Context, id string) (*domain.Project, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.projectsByID[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	return cloneProject(p), nil
}

func (r *ProjectRepository) List(_ context.Context) ([]*domain.Project, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*domain.Project, 0, len(r.store.projects))
	for _, p := range r.store.projects {
		out = append(out, cloneProject(p))
	}
	return out, nil
}

// cloneProject copies the record including its slices so callers never alias
// stored state.
func cloneProject(p *domain.Project) *domain.Project {
	clone := *p
	clone.Members = append([]string(nil), p.Members...)
	clone.Attachments = append([]domain.Attachment(nil), p.Attachments...)
	return &clone
}
