package ports

import (
	"context"

	"github.com/sprintdesk/taskboard/internal/core/domain"
)

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	Insert(ctx context.Context, p *domain.Project) error
	// Replace overwrites the stored project with the same id.
	// Returns domain.ErrProjectNotFound when the id is unknown.
	Replace(ctx context.Context, p *domain.Project) error
	// Delete removes the project and every task whose ProjectID matches.
	// Both collections are mutated atomically: no reader observes the
	// project gone with its tasks still present, or the reverse.
	// Returns the number of cascaded task deletions.
	Delete(ctx context.Context, id string) (int, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	// List returns all projects in insertion order.
	List(ctx context.Context) ([]*domain.Project, error)
}
