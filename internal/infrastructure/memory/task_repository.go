package memory

import (
	"context"

	"github.com/sprintdesk/taskboard/internal/core/domain"
	"github.com/sprintdesk/taskboard/internal/core/ports"
)

// TaskRepository is the in-memory ports.TaskRepository.
type TaskRepository struct {
	store *Store
}

func NewTaskRepository(store *Store) *TaskRepository {
	return &TaskRepository{store: store}
}

func (r *TaskRepository) Insert(_ context.Context, t *domain.Task) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	clone := cloneTask(t)
	r.store.tasks = append(r.store.tasks, clone)
	r.store.tasksByID[clone.ID] = clone
	return nil
}

func (r *TaskRepository) Replace(_ context.Context, t *domain.Task) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.tasksByID[t.ID]; !ok {
		return domain.ErrTaskNotFound
	}

	clone := cloneTask(t)
	for i, existing := range r.store.tasks {
		if existing.ID == t.ID {
			r.store.tasks[i] = clone
			break
		}
	}
	r.store.tasksByID[t.ID] = clone
	return nil
}

// Delete removes the task together with its embedded subtasks and
// attachments (they have no existence outside the record).
func (r *TaskRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.tasksByID[id]; !ok {
		return domain.ErrTaskNotFound
	}

	kept := r.store.tasks[:0]
	for _, t := range r.store.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	r.store.tasks = kept
	delete(r.store.tasksByID, id)
	return nil
}

func (r *TaskRepository) FindByID(_ context.Context, id string) (*domain.Task, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	t, ok := r.store.tasksByID[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return cloneTask(t), nil
}

// List returns matching tasks in insertion order.
func (r *TaskRepository) List(_ context.Context, filter ports.TaskFilter) ([]*domain.Task, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []*domain.Task
	for _, t := range r.store.tasks {
		if !matches(t, filter) {
			continue
		}
		out = append(out, cloneTask(t))
	}
	return out, nil
}

func matches(t *domain.Task, f ports.TaskFilter) bool {
	switch f.ProjectID {
	case "":
		// no project filter
	case ports.GeneralProject:
		if t.ProjectID != "" {
			return false
		}
	default:
		if t.ProjectID != f.ProjectID {
			return false
		}
	}
	if f.Assignee != "" && t.Assignee != f.Assignee {
		return false
	}
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	return true
}

func cloneTask(t *domain.Task) *domain.Task {
	clone := *t
	clone.Subtasks = append([]domain.Subtask(nil), t.Subtasks...)
	clone.Attachments = append([]domain.Attachment(nil), t.Attachments...)
	return &clone
}
