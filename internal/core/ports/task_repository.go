package ports

import (
	"context"

	"github.com/sprintdesk/taskboard/internal/core/domain"
)

// TaskFilter narrows a task listing. The zero value matches everything.
type TaskFilter struct {
	// ProjectID filters by project: "" = no filter, GeneralProject = tasks
	// with no project, anything else = exact match.
	ProjectID string
	Assignee  string
	Status    domain.TaskStatus
}

// GeneralProject is the filter value selecting tasks that belong to no project.
const GeneralProject = "general"

// TaskRepository defines persistence operations for tasks.
type TaskRepository interface {
	Insert(ctx context.Context, t *domain.Task) error
	// Replace overwrites the stored task with the same id.
	// Returns domain.ErrTaskNotFound when the id is unknown.
	Replace(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	// List returns matching tasks in insertion order.
	List(ctx context.Context, filter TaskFilter) ([]*domain.Task, error)
}
